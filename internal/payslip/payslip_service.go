package payslip

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/attendance"
	"github.com/madhavny/mavi-hrms-sub002/internal/audit"
	"github.com/madhavny/mavi-hrms-sub002/internal/employee"
	"github.com/madhavny/mavi-hrms-sub002/internal/events"
	"github.com/madhavny/mavi-hrms-sub002/internal/leave"
	"github.com/madhavny/mavi-hrms-sub002/internal/messaging/kafka"
	"github.com/madhavny/mavi-hrms-sub002/internal/payperiod"
	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarycomponent"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarystructure"
	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"
	"github.com/madhavny/mavi-hrms-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type Service interface {
	Generate(ctx context.Context, companyID, actorID string, req GeneratePayslipRequest) (PayslipResponse, error)
	BulkGenerate(ctx context.Context, companyID, actorID string, req BulkGeneratePayslipsRequest) (BulkGeneratePayslipsResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetPayslipsFilterRequest) ([]PayslipResponse, int64, error)
	GetByID(ctx context.Context, companyID, id string) (PayslipResponse, error)
	GetEmployeePayslip(ctx context.Context, companyID, employeeID string, month, year int) (PayslipResponse, error)
	UpdateStatus(ctx context.Context, companyID, actorID, id string, req UpdatePayslipStatusRequest) (PayslipResponse, error)
	BulkUpdateStatus(ctx context.Context, companyID, actorID string, req BulkUpdatePayslipStatusRequest) (BulkUpdatePayslipStatusResponse, error)
	Delete(ctx context.Context, companyID, actorID, id string) error
	Summary(ctx context.Context, companyID string, month, year int) (PayrollSummaryResponse, error)
}

type service struct {
	db             *gorm.DB
	repo           Repository
	structureRepo  salarystructure.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	outboxRepo     kafka.OutboxRepository
	resolver       payperiod.Resolver
	recorder       audit.Recorder
	redisClient    *redis.Client
	summaryGroup   singleflight.Group
	now            func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	structureRepo salarystructure.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	outboxRepo kafka.OutboxRepository,
	resolver payperiod.Resolver,
	recorder audit.Recorder,
	redisClient *redis.Client,
) Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &service{
		db:             db,
		repo:           repo,
		structureRepo:  structureRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		outboxRepo:     outboxRepo,
		resolver:       resolver,
		recorder:       recorder,
		redisClient:    redisClient,
		now:            time.Now,
	}
}

// Generate builds one employee's payslip for a period. The pre-check and
// the unique index both guard the same invariant; under concurrent calls
// the index is the authority and its violation is reported exactly like
// the pre-check.
func (s *service) Generate(
	ctx context.Context,
	companyID, actorID string,
	req GeneratePayslipRequest,
) (PayslipResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return PayslipResponse{}, paysliperrors.ErrInvalidPeriod
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayslipResponse{}, apperror.ErrUnauthorized.WithDetail("malformed employee_id claim")
	}

	exists, err := s.employeeRepo.ExistsInCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, err
	}
	if !exists {
		return PayslipResponse{}, paysliperrors.ErrEmployeeNotInCompany
	}

	if existingID, found, err := s.repo.ExistsForPeriod(ctx, companyID, req.EmployeeID, req.Month, req.Year); err != nil {
		return PayslipResponse{}, err
	} else if found {
		return PayslipResponse{}, paysliperrors.ErrPayslipExists.WithDetail(existingID)
	}

	structure, err := s.structureRepo.FindActiveByEmployee(ctx, companyID, req.EmployeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, paysliperrors.ErrNoActiveStructure
	}
	if err != nil {
		return PayslipResponse{}, err
	}

	periodStart, periodEnd := s.resolver.MonthBounds(req.Year, req.Month)
	workingDays := s.resolver.WorkingDays(req.Year, req.Month)

	attendances, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return PayslipResponse{}, err
	}
	presentDays := 0
	for _, row := range attendances {
		if attendance.CountsAsWorked(row.Status) {
			presentDays++
		}
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return PayslipResponse{}, err
	}
	paidLeaveDays, unpaidLeaveDays := 0, 0
	for _, lv := range leaves {
		clipped, ok := payperiod.ClipRange(lv.StartDate, lv.EndDate, periodStart, periodEnd)
		if !ok {
			continue
		}
		days := payperiod.InclusiveDays(clipped.Start, clipped.End)
		if lv.IsPaid {
			paidLeaveDays += days
		} else {
			unpaidLeaveDays += days
		}
	}

	daysWorked := presentDays + paidLeaveDays
	lopDays, lopDeduction := lossOfPay(structure.GrossSalary, workingDays, daysWorked)

	grossEarnings := structure.BasicSalary
	componentDeductions := decimal.Zero
	components := make([]PayslipComponent, 0, len(structure.Components))
	for _, comp := range structure.Components {
		switch comp.ComponentType {
		case salarycomponent.TypeEarning, salarycomponent.TypeReimbursement:
			grossEarnings = grossEarnings.Add(comp.CalculatedAmount)
		case salarycomponent.TypeDeduction:
			componentDeductions = componentDeductions.Add(comp.CalculatedAmount)
		default:
			return PayslipResponse{}, apperror.New(
				apperror.CodeInternalError,
				"unknown component type "+comp.ComponentType,
				500,
			)
		}
		components = append(components, PayslipComponent{
			ID:                uuid.New(),
			CompanyID:         structure.CompanyID,
			SalaryComponentID: comp.SalaryComponentID,
			ComponentName:     comp.ComponentName,
			ComponentType:     comp.ComponentType,
			Amount:            comp.CalculatedAmount,
		})
	}

	totalDeductions := componentDeductions.Add(lopDeduction)
	netSalary := grossEarnings.Sub(totalDeductions)

	payslip := &Payslip{
		ID:               uuid.New(),
		CompanyID:        structure.CompanyID,
		EmployeeID:       structure.EmployeeID,
		Month:            req.Month,
		Year:             req.Year,
		BasicSalary:      structure.BasicSalary,
		GrossEarnings:    grossEarnings,
		TotalDeductions:  totalDeductions,
		NetSalary:        netSalary,
		TotalWorkingDays: workingDays,
		DaysWorked:       daysWorked,
		LeaveDays:        paidLeaveDays + unpaidLeaveDays,
		LOPDays:          lopDays,
		Status:           StatusDraft,
		GeneratedAt:      s.now(),
		GeneratedBy:      actorUUID,
	}
	for i := range components {
		components[i].PayslipID = payslip.ID
	}
	payslip.Components = components

	// Payslip, komponen, dan baris outbox ditulis dalam satu transaksi.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, payslip); err != nil {
			return err
		}
		return s.enqueueGeneratedEvent(ctx, tx, payslip, actorID)
	})
	if err != nil {
		if errors.Is(err, paysliperrors.ErrPayslipExists) {
			// Balapan dengan generate lain: index unik yang menang.
			if existingID, found, lookupErr := s.repo.ExistsForPeriod(ctx, companyID, req.EmployeeID, req.Month, req.Year); lookupErr == nil && found {
				return PayslipResponse{}, paysliperrors.ErrPayslipExists.WithDetail(existingID)
			}
		}
		return PayslipResponse{}, err
	}

	resp := mapPayslipToResponse(*payslip)
	s.recorder.Record(ctx, audit.Event{
		Action:    "PAYSLIP_GENERATED",
		Entity:    "payslip",
		EntityID:  resp.ID,
		CompanyID: companyID,
		ActorID:   actorID,
		NewValue:  resp,
	})

	return resp, nil
}

// lossOfPay returns the LOP day count and the deduction it carries.
// A period without working days pays gross in full and skips LOP
// entirely: there is nothing to prorate against.
func lossOfPay(gross decimal.Decimal, workingDays, daysWorked int) (int, decimal.Decimal) {
	if workingDays == 0 {
		return 0, decimal.Zero
	}
	lopDays := workingDays - daysWorked
	if lopDays < 0 {
		lopDays = 0
	}
	perDay := gross.Div(decimal.NewFromInt(int64(workingDays))).Round(2)
	return lopDays, perDay.Mul(decimal.NewFromInt(int64(lopDays))).Round(2)
}

func (s *service) enqueueGeneratedEvent(
	ctx context.Context,
	tx *gorm.DB,
	payslip *Payslip,
	actorID string,
) error {
	event := events.PayslipGeneratedEvent{
		EventType:   "payslip.generated",
		PayslipID:   payslip.ID.String(),
		CompanyID:   payslip.CompanyID.String(),
		EmployeeID:  payslip.EmployeeID.String(),
		Month:       payslip.Month,
		Year:        payslip.Year,
		GeneratedBy: actorID,
		OccurredAt:  s.now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Statement.ConnPool adalah koneksi transaksi yang sama dengan
	// insert payslip di atas.
	return s.outboxRepo.WithTx(tx.Statement.ConnPool).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payslip",
		AggregateID:   payslip.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayslipGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter GetPayslipsFilterRequest,
) ([]PayslipResponse, int64, error) {
	payslips, total, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapPayslipToResponse(p)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayslipResponse, error) {
	payslip, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
	}
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapPayslipToResponse(*payslip), nil
}

func (s *service) GetEmployeePayslip(
	ctx context.Context,
	companyID, employeeID string,
	month, year int,
) (PayslipResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return PayslipResponse{}, paysliperrors.ErrInvalidPeriod
	}

	payslip, err := s.repo.FindByEmployeeAndPeriod(ctx, companyID, employeeID, month, year)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
	}
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapPayslipToResponse(*payslip), nil
}

func (s *service) logger(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, zap.L()).Named("payslip")
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:               p.ID.String(),
		CompanyID:        p.CompanyID.String(),
		EmployeeID:       p.EmployeeID.String(),
		Month:            p.Month,
		Year:             p.Year,
		BasicSalary:      p.BasicSalary.StringFixed(2),
		GrossEarnings:    p.GrossEarnings.StringFixed(2),
		TotalDeductions:  p.TotalDeductions.StringFixed(2),
		NetSalary:        p.NetSalary.StringFixed(2),
		TotalWorkingDays: p.TotalWorkingDays,
		DaysWorked:       p.DaysWorked,
		LeaveDays:        p.LeaveDays,
		LOPDays:          p.LOPDays,
		Status:           p.Status,
		GeneratedAt:      p.GeneratedAt.Format(time.RFC3339),
	}

	if p.ProcessedAt != nil {
		v := p.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	if p.PaidBy != nil {
		v := p.PaidBy.String()
		resp.PaidBy = &v
	}

	for _, comp := range p.Components {
		resp.Components = append(resp.Components, PayslipComponentResponse{
			SalaryComponentID: comp.SalaryComponentID.String(),
			ComponentName:     comp.ComponentName,
			ComponentType:     comp.ComponentType,
			Amount:            comp.Amount.StringFixed(2),
		})
	}

	return resp
}
