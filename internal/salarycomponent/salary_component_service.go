package salarycomponent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/madhavny/mavi-hrms-sub002/internal/audit"
	componenterrors "github.com/madhavny/mavi-hrms-sub002/internal/salarycomponent/errors"
	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateSalaryComponentRequest) (SalaryComponentResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetSalaryComponentsFilterRequest) ([]SalaryComponentResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SalaryComponentResponse, error)
	Update(ctx context.Context, companyID, actorID, id string, req UpdateSalaryComponentRequest) (SalaryComponentResponse, error)
	Delete(ctx context.Context, companyID, actorID, id string) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	recorder audit.Recorder
}

func NewService(db *gorm.DB, repo Repository, recorder audit.Recorder) Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreateSalaryComponentRequest,
) (SalaryComponentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SalaryComponentResponse{}, apperror.ErrUnauthorized.WithDetail("malformed company_id claim")
	}

	if !ValidComponentType(req.ComponentType) {
		return SalaryComponentResponse{}, componenterrors.ErrInvalidComponentType
	}
	if !ValidCalculationType(req.CalculationType) {
		return SalaryComponentResponse{}, componenterrors.ErrInvalidCalculationType
	}

	defaultValue, err := parseNonNegativeDecimal(req.DefaultValue)
	if err != nil {
		return SalaryComponentResponse{}, componenterrors.ErrInvalidDefaultValue
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	component := &SalaryComponent{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		Name:            req.Name,
		Code:            code,
		ComponentType:   req.ComponentType,
		CalculationType: req.CalculationType,
		DefaultValue:    defaultValue,
		IsTaxable:       req.IsTaxable,
		IsStatutory:     req.IsStatutory,
		IsActive:        true,
		SortOrder:       req.SortOrder,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.ExistsByCode(ctx, companyID, code, nil)
		if err != nil {
			return err
		}
		if exists {
			return componenterrors.ErrDuplicateCode
		}

		return qtx.Create(ctx, component)
	})
	if err != nil {
		return SalaryComponentResponse{}, err
	}

	resp := mapToResponse(*component)
	s.recorder.Record(ctx, audit.Event{
		Action:    "SALARY_COMPONENT_CREATED",
		Entity:    "salary_component",
		EntityID:  resp.ID,
		CompanyID: companyID,
		ActorID:   actorID,
		NewValue:  resp,
	})

	return resp, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter GetSalaryComponentsFilterRequest,
) ([]SalaryComponentResponse, error) {
	components, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(components), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (SalaryComponentResponse, error) {
	component, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SalaryComponentResponse{}, componenterrors.ErrComponentNotFound
	}
	if err != nil {
		return SalaryComponentResponse{}, err
	}

	return mapToResponse(*component), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, actorID, id string,
	req UpdateSalaryComponentRequest,
) (SalaryComponentResponse, error) {
	if !ValidComponentType(req.ComponentType) {
		return SalaryComponentResponse{}, componenterrors.ErrInvalidComponentType
	}
	if !ValidCalculationType(req.CalculationType) {
		return SalaryComponentResponse{}, componenterrors.ErrInvalidCalculationType
	}

	defaultValue, err := parseNonNegativeDecimal(req.DefaultValue)
	if err != nil {
		return SalaryComponentResponse{}, componenterrors.ErrInvalidDefaultValue
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var component *SalaryComponent
	var oldValue SalaryComponentResponse

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		component, err = qtx.FindByIDAndCompany(ctx, companyID, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return componenterrors.ErrComponentNotFound
		}
		if err != nil {
			return err
		}
		oldValue = mapToResponse(*component)

		exists, err := qtx.ExistsByCode(ctx, companyID, code, &id)
		if err != nil {
			return err
		}
		if exists {
			return componenterrors.ErrDuplicateCode
		}

		component.Name = req.Name
		component.Code = code
		component.ComponentType = req.ComponentType
		component.CalculationType = req.CalculationType
		component.DefaultValue = defaultValue
		component.IsTaxable = req.IsTaxable
		component.IsStatutory = req.IsStatutory
		if req.IsActive != nil {
			component.IsActive = *req.IsActive
		}
		if req.SortOrder != nil {
			component.SortOrder = *req.SortOrder
		}

		return qtx.Update(ctx, component)
	})
	if err != nil {
		return SalaryComponentResponse{}, err
	}

	resp := mapToResponse(*component)
	s.recorder.Record(ctx, audit.Event{
		Action:    "SALARY_COMPONENT_UPDATED",
		Entity:    "salary_component",
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
	var component *SalaryComponent

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		component, err = qtx.FindByIDAndCompany(ctx, companyID, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return componenterrors.ErrComponentNotFound
		}
		if err != nil {
			return err
		}

		if component.IsStatutory {
			return componenterrors.ErrStatutoryDelete
		}

		structures, payslips, err := qtx.CountReferences(ctx, companyID, id)
		if err != nil {
			return err
		}
		if structures > 0 || payslips > 0 {
			return componenterrors.ErrComponentInUse.WithDetail(
				fmt.Sprintf("%d structure rows, %d payslip rows", structures, payslips),
			)
		}

		return qtx.Delete(ctx, companyID, id)
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Event{
		Action:    "SALARY_COMPONENT_DELETED",
		Entity:    "salary_component",
		EntityID:  id,
		CompanyID: companyID,
		ActorID:   actorID,
		OldValue:  mapToResponse(*component),
	})

	return nil
}

func parseNonNegativeDecimal(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative value")
	}
	return d, nil
}

func mapToResponse(component SalaryComponent) SalaryComponentResponse {
	return SalaryComponentResponse{
		ID:              component.ID.String(),
		CompanyID:       component.CompanyID.String(),
		Name:            component.Name,
		Code:            component.Code,
		ComponentType:   component.ComponentType,
		CalculationType: component.CalculationType,
		DefaultValue:    component.DefaultValue.StringFixed(2),
		IsTaxable:       component.IsTaxable,
		IsStatutory:     component.IsStatutory,
		IsActive:        component.IsActive,
		SortOrder:       component.SortOrder,
	}
}

func mapToListResponse(components []SalaryComponent) []SalaryComponentResponse {
	resp := make([]SalaryComponentResponse, len(components))
	for i, component := range components {
		resp[i] = mapToResponse(component)
	}
	return resp
}
