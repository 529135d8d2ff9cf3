package salarystructure

import (
	"context"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	// WithTx returns a repository bound to the given transaction; every
	// statement it issues runs on tx, not the pool.
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, structure *SalaryStructure) error
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]SalaryStructure, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryStructure, error)
	FindActiveByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructure, error)
	// DeactivateActive closes the currently active structure of the
	// employee: is_active=false, effective_to=effectiveTo. Returns the
	// number of rows closed (0 when the employee had none).
	DeactivateActive(ctx context.Context, companyID, employeeID string, effectiveTo time.Time) (int64, error)
	ReplaceComponents(ctx context.Context, structureID string, components []SalaryStructureComponent) error
	Update(ctx context.Context, structure *SalaryStructure) error
	Delete(ctx context.Context, companyID, id string) error
	// CountPayslipsInWindow counts payslips generated for the employee
	// while the structure was in force.
	CountPayslipsInWindow(ctx context.Context, companyID, employeeID string, from time.Time, to *time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Preload("Components").
		Order("effective_from DESC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Components").
		First(&structure, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *repository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("is_active = TRUE").
		Preload("Components").
		First(&structure).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *repository) DeactivateActive(ctx context.Context, companyID, employeeID string, effectiveTo time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("is_active = TRUE").
		Updates(map[string]any{
			"is_active":    false,
			"effective_to": effectiveTo,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) ReplaceComponents(ctx context.Context, structureID string, components []SalaryStructureComponent) error {
	if err := r.db.WithContext(ctx).
		Where("salary_structure_id = ?", structureID).
		Delete(&SalaryStructureComponent{}).Error; err != nil {
		return err
	}
	if len(components) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&components).Error
}

func (r *repository) Update(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Save(structure).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	if err := r.db.WithContext(ctx).
		Where("salary_structure_id = ?", id).
		Delete(&SalaryStructureComponent{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&SalaryStructure{}, "id = ?", id).Error
}

func (r *repository) CountPayslipsInWindow(ctx context.Context, companyID, employeeID string, from time.Time, to *time.Time) (int64, error) {
	db := r.db.WithContext(ctx).
		Table("payslips").
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("generated_at >= ?", from)

	if to != nil {
		db = db.Where("generated_at <= ?", *to)
	}

	var count int64
	err := db.Count(&count).Error
	return count, err
}
