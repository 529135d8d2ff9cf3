package salarystructure

import (
	"context"
	"errors"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/audit"
	"github.com/madhavny/mavi-hrms-sub002/internal/employee"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarycomponent"
	structureerrors "github.com/madhavny/mavi-hrms-sub002/internal/salarystructure/errors"
	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	Assign(ctx context.Context, companyID, actorID string, req AssignSalaryStructureRequest) (SalaryStructureResponse, error)
	GetAll(ctx context.Context, companyID, employeeID string) ([]SalaryStructureResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SalaryStructureResponse, error)
	Update(ctx context.Context, companyID, actorID, id string, req UpdateSalaryStructureRequest) (SalaryStructureResponse, error)
	Delete(ctx context.Context, companyID, actorID, id string) error
	Preview(ctx context.Context, companyID string, req PreviewCalculationRequest) (PreviewCalculationResponse, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	componentRepo salarycomponent.Repository
	employeeRepo  employee.Repository
	recorder      audit.Recorder
}

func NewService(
	db *gorm.DB,
	repo Repository,
	componentRepo salarycomponent.Repository,
	employeeRepo employee.Repository,
	recorder audit.Recorder,
) Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &service{
		db:            db,
		repo:          repo,
		componentRepo: componentRepo,
		employeeRepo:  employeeRepo,
		recorder:      recorder,
	}
}

func (s *service) Assign(
	ctx context.Context,
	companyID, actorID string,
	req AssignSalaryStructureRequest,
) (SalaryStructureResponse, error) {
	companyUUID, actorUUID, err := parseClaims(companyID, actorID)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryStructureResponse{}, structureerrors.ErrInvalidEmployeeID
	}

	exists, err := s.employeeRepo.ExistsInCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	if !exists {
		return SalaryStructureResponse{}, structureerrors.ErrEmployeeNotInCompany
	}

	ctc, err := parseMoney(req.CTC)
	if err != nil {
		return SalaryStructureResponse{}, structureerrors.ErrInvalidMoneyValue
	}
	basicSalary, err := parseMoney(req.BasicSalary)
	if err != nil {
		return SalaryStructureResponse{}, structureerrors.ErrInvalidMoneyValue
	}
	effectiveFrom, err := parseDate(req.EffectiveFrom)
	if err != nil {
		return SalaryStructureResponse{}, structureerrors.ErrInvalidDateFormat
	}

	resolved, err := s.resolveComponents(ctx, companyID, basicSalary, req.Components)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	gross, _, net, err := ComputeTotals(basicSalary, resolved)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	structure := &SalaryStructure{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeUUID,
		CTC:           ctc,
		BasicSalary:   basicSalary,
		GrossSalary:   gross,
		NetSalary:     net,
		EffectiveFrom: effectiveFrom,
		IsActive:      true,
		Remarks:       req.Remarks,
		CreatedBy:     actorUUID,
		Components:    toEntityComponents(uuid.Nil, resolved),
	}
	for i := range structure.Components {
		structure.Components[i].SalaryStructureID = structure.ID
	}

	// Tutup versi aktif sebelumnya dan buat versi baru dalam satu
	// transaksi: tidak boleh ada momen dengan nol atau dua struktur
	// aktif untuk satu karyawan.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if _, err := qtx.DeactivateActive(ctx, companyID, req.EmployeeID, effectiveFrom); err != nil {
			return err
		}
		return qtx.Create(ctx, structure)
	})
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	resp := mapToResponse(*structure)
	s.recorder.Record(ctx, audit.Event{
		Action:    "SALARY_STRUCTURE_ASSIGNED",
		Entity:    "salary_structure",
		EntityID:  resp.ID,
		CompanyID: companyID,
		ActorID:   actorID,
		NewValue:  resp,
	})

	return resp, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, employeeID string,
) ([]SalaryStructureResponse, error) {
	structures, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]SalaryStructureResponse, len(structures))
	for i, structure := range structures {
		resp[i] = mapToResponse(structure)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (SalaryStructureResponse, error) {
	structure, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SalaryStructureResponse{}, structureerrors.ErrStructureNotFound
	}
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	return mapToResponse(*structure), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, actorID, id string,
	req UpdateSalaryStructureRequest,
) (SalaryStructureResponse, error) {
	ctc, err := parseMoney(req.CTC)
	if err != nil {
		return SalaryStructureResponse{}, structureerrors.ErrInvalidMoneyValue
	}
	basicSalary, err := parseMoney(req.BasicSalary)
	if err != nil {
		return SalaryStructureResponse{}, structureerrors.ErrInvalidMoneyValue
	}

	resolved, err := s.resolveComponents(ctx, companyID, basicSalary, req.Components)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	gross, _, net, err := ComputeTotals(basicSalary, resolved)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	var structure *SalaryStructure
	var oldValue SalaryStructureResponse

	// Full replace: komponen lama dihapus lalu dibuat ulang dari request
	// dalam transaksi yang sama.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		structure, err = qtx.FindByIDAndCompany(ctx, companyID, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return structureerrors.ErrStructureNotFound
		}
		if err != nil {
			return err
		}
		oldValue = mapToResponse(*structure)

		structure.CTC = ctc
		structure.BasicSalary = basicSalary
		structure.GrossSalary = gross
		structure.NetSalary = net
		if req.Remarks != nil {
			structure.Remarks = req.Remarks
		}

		components := toEntityComponents(structure.ID, resolved)
		if err := qtx.ReplaceComponents(ctx, id, components); err != nil {
			return err
		}

		structure.Components = components
		return qtx.Update(ctx, structure)
	})
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	resp := mapToResponse(*structure)
	s.recorder.Record(ctx, audit.Event{
		Action:    "SALARY_STRUCTURE_UPDATED",
		Entity:    "salary_structure",
		EntityID:  resp.ID,
		CompanyID: companyID,
		ActorID:   actorID,
		OldValue:  oldValue,
		NewValue:  resp,
	})

	return resp, nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, actorID, id string,
) error {
	var structure *SalaryStructure

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		structure, err = qtx.FindByIDAndCompany(ctx, companyID, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return structureerrors.ErrStructureNotFound
		}
		if err != nil {
			return err
		}

		// Struktur yang pernah dipakai generate payslip bersifat immutable.
		count, err := qtx.CountPayslipsInWindow(
			ctx,
			companyID,
			structure.EmployeeID.String(),
			structure.EffectiveFrom,
			structure.EffectiveTo,
		)
		if err != nil {
			return err
		}
		if count > 0 {
			return structureerrors.ErrStructureInUse
		}

		return qtx.Delete(ctx, companyID, id)
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Event{
		Action:    "SALARY_STRUCTURE_DELETED",
		Entity:    "salary_structure",
		EntityID:  id,
		CompanyID: companyID,
		ActorID:   actorID,
		OldValue:  mapToResponse(*structure),
	})

	return nil
}

// Preview runs the same arithmetic as Assign without touching storage.
func (s *service) Preview(
	ctx context.Context,
	companyID string,
	req PreviewCalculationRequest,
) (PreviewCalculationResponse, error) {
	basicSalary, err := parseMoney(req.BasicSalary)
	if err != nil {
		return PreviewCalculationResponse{}, structureerrors.ErrInvalidMoneyValue
	}

	resolved, err := s.resolveComponents(ctx, companyID, basicSalary, req.Components)
	if err != nil {
		return PreviewCalculationResponse{}, err
	}

	gross, deductions, net, err := ComputeTotals(basicSalary, resolved)
	if err != nil {
		return PreviewCalculationResponse{}, err
	}

	componentResp := make([]StructureComponentResponse, len(resolved))
	for i, comp := range resolved {
		componentResp[i] = mapResolvedToResponse(comp)
	}

	return PreviewCalculationResponse{
		BasicSalary:     basicSalary.StringFixed(2),
		GrossSalary:     gross.StringFixed(2),
		TotalDeductions: deductions.StringFixed(2),
		NetSalary:       net.StringFixed(2),
		Components:      componentResp,
	}, nil
}

func (s *service) resolveComponents(
	ctx context.Context,
	companyID string,
	basicSalary decimal.Decimal,
	inputs []StructureComponentInput,
) ([]ResolvedComponent, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(inputs))
	for i, input := range inputs {
		ids[i] = input.SalaryComponentID
	}

	defs, err := s.componentRepo.FindByIDsAndCompany(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}

	defByID := make(map[string]salarycomponent.SalaryComponent, len(defs))
	for _, def := range defs {
		defByID[def.ID.String()] = def
	}

	resolved := make([]ResolvedComponent, 0, len(inputs))
	for _, input := range inputs {
		def, ok := defByID[input.SalaryComponentID]
		if !ok {
			return nil, structureerrors.ErrComponentNotInCatalog.WithDetail(input.SalaryComponentID)
		}

		var amount, percentage *decimal.Decimal

		switch def.CalculationType {
		case salarycomponent.CalculationFixed:
			if input.Amount != nil {
				v, err := parseMoney(*input.Amount)
				if err != nil {
					return nil, structureerrors.ErrInvalidMoneyValue
				}
				amount = &v
			}
		case salarycomponent.CalculationPercentage:
			if input.Percentage != nil {
				v, err := parsePercentage(*input.Percentage)
				if err != nil {
					return nil, structureerrors.ErrInvalidPercentage
				}
				percentage = &v
			}
		}

		comp, err := Resolve(def, basicSalary, amount, percentage)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, comp)
	}

	return resolved, nil
}

// parseClaims validates the tenant and actor ids taken from the token.
// A signed token with malformed claims must fail the request, not crash
// it.
func parseClaims(companyID, actorID string) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.ErrUnauthorized.WithDetail("malformed company_id claim")
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.ErrUnauthorized.WithDetail("malformed employee_id claim")
	}
	return companyUUID, actorUUID, nil
}

func parseMoney(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, structureerrors.ErrInvalidMoneyValue
	}
	return d, nil
}

func parsePercentage(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() || d.GreaterThan(hundred) {
		return decimal.Decimal{}, structureerrors.ErrInvalidPercentage
	}
	return d, nil
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

func toEntityComponents(structureID uuid.UUID, resolved []ResolvedComponent) []SalaryStructureComponent {
	components := make([]SalaryStructureComponent, len(resolved))
	for i, comp := range resolved {
		components[i] = SalaryStructureComponent{
			ID:                uuid.New(),
			SalaryStructureID: structureID,
			SalaryComponentID: comp.SalaryComponentID,
			ComponentName:     comp.ComponentName,
			ComponentType:     comp.ComponentType,
			CalculationType:   comp.CalculationType,
			Amount:            comp.Amount,
			Percentage:        comp.Percentage,
			CalculatedAmount:  comp.CalculatedAmount,
		}
	}
	return components
}

func mapResolvedToResponse(comp ResolvedComponent) StructureComponentResponse {
	resp := StructureComponentResponse{
		SalaryComponentID: comp.SalaryComponentID.String(),
		ComponentName:     comp.ComponentName,
		ComponentType:     comp.ComponentType,
		CalculationType:   comp.CalculationType,
		CalculatedAmount:  comp.CalculatedAmount.StringFixed(2),
	}
	if comp.Amount != nil {
		v := comp.Amount.StringFixed(2)
		resp.Amount = &v
	}
	if comp.Percentage != nil {
		v := comp.Percentage.String()
		resp.Percentage = &v
	}
	return resp
}

func mapToResponse(structure SalaryStructure) SalaryStructureResponse {
	resp := SalaryStructureResponse{
		ID:            structure.ID.String(),
		CompanyID:     structure.CompanyID.String(),
		EmployeeID:    structure.EmployeeID.String(),
		CTC:           structure.CTC.StringFixed(2),
		BasicSalary:   structure.BasicSalary.StringFixed(2),
		GrossSalary:   structure.GrossSalary.StringFixed(2),
		NetSalary:     structure.NetSalary.StringFixed(2),
		EffectiveFrom: structure.EffectiveFrom.Format("2006-01-02"),
		IsActive:      structure.IsActive,
		Remarks:       structure.Remarks,
	}

	if structure.EffectiveTo != nil {
		v := structure.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &v
	}

	for _, comp := range structure.Components {
		compResp := StructureComponentResponse{
			SalaryComponentID: comp.SalaryComponentID.String(),
			ComponentName:     comp.ComponentName,
			ComponentType:     comp.ComponentType,
			CalculationType:   comp.CalculationType,
			CalculatedAmount:  comp.CalculatedAmount.StringFixed(2),
		}
		if comp.Amount != nil {
			v := comp.Amount.StringFixed(2)
			compResp.Amount = &v
		}
		if comp.Percentage != nil {
			v := comp.Percentage.String()
			compResp.Percentage = &v
		}
		resp.Components = append(resp.Components, compResp)
	}

	return resp
}
