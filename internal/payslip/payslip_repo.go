package payslip

import (
	"context"
	"errors"

	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"
	"github.com/madhavny/mavi-hrms-sub002/internal/tenant"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

type SummaryRow struct {
	PayslipCount    int64
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

type StatusCount struct {
	Status string
	Count  int
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	// Create persists a payslip with its components. A unique index
	// violation on (company, employee, month, year) comes back as
	// ErrPayslipExists so concurrent generation and the pre-check
	// surface the same failure.
	Create(ctx context.Context, payslip *Payslip) error
	ExistsForPeriod(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error)
	FindAll(ctx context.Context, companyID string, filter GetPayslipsFilterRequest) ([]Payslip, int64, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payslip, error)
	FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, month, year int) (*Payslip, error)
	Update(ctx context.Context, payslip *Payslip) error
	Delete(ctx context.Context, companyID, id string) error
	SummaryByPeriod(ctx context.Context, companyID string, month, year int) (SummaryRow, []StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, payslip *Payslip) error {
	err := r.db.WithContext(ctx).Create(payslip).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return paysliperrors.ErrPayslipExists
		}
		return err
	}
	return nil
}

func (r *repository) ExistsForPeriod(
	ctx context.Context,
	companyID, employeeID string,
	month, year int,
) (string, bool, error) {
	var existing Payslip
	err := r.db.WithContext(ctx).
		Select("id").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("month = ? AND year = ?", month, year).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return existing.ID.String(), true, nil
}

func (r *repository) FindAll(
	ctx context.Context,
	companyID string,
	filter GetPayslipsFilterRequest,
) ([]Payslip, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Scopes(tenant.Scope(companyID))

	if filter.Month != 0 {
		db = db.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var payslips []Payslip
	err := db.
		Order("year DESC, month DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payslips).Error
	return payslips, total, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Components").
		First(&payslip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) FindByEmployeeAndPeriod(
	ctx context.Context,
	companyID, employeeID string,
	month, year int,
) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("month = ? AND year = ?", month, year).
		Preload("Components").
		First(&payslip).Error
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) Update(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).
		Omit("Components").
		Save(payslip).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	if err := r.db.WithContext(ctx).
		Where("payslip_id = ?", id).
		Delete(&PayslipComponent{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Payslip{}, "id = ?", id).Error
}

func (r *repository) SummaryByPeriod(
	ctx context.Context,
	companyID string,
	month, year int,
) (SummaryRow, []StatusCount, error) {
	var row SummaryRow
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Select(
			"COUNT(*) AS payslip_count",
			"COALESCE(SUM(gross_earnings), 0) AS gross_earnings",
			"COALESCE(SUM(total_deductions), 0) AS total_deductions",
			"COALESCE(SUM(net_salary), 0) AS net_salary",
		).
		Scopes(tenant.Scope(companyID)).
		Where("month = ? AND year = ?", month, year).
		Scan(&row).Error
	if err != nil {
		return SummaryRow{}, nil, err
	}

	var statuses []StatusCount
	err = r.db.WithContext(ctx).
		Model(&Payslip{}).
		Select("status", "COUNT(*) AS count").
		Scopes(tenant.Scope(companyID)).
		Where("month = ? AND year = ?", month, year).
		Group("status").
		Scan(&statuses).Error
	if err != nil {
		return SummaryRow{}, nil, err
	}

	return row, statuses, nil
}
