package salarycomponent

import (
	"context"
	"strings"

	"github.com/madhavny/mavi-hrms-sub002/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, component *SalaryComponent) error
	FindAllByCompany(ctx context.Context, companyID string, filter GetSalaryComponentsFilterRequest) ([]SalaryComponent, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryComponent, error)
	FindByIDsAndCompany(ctx context.Context, companyID string, ids []string) ([]SalaryComponent, error)
	ExistsByCode(ctx context.Context, companyID, code string, excludeID *string) (bool, error)
	Update(ctx context.Context, component *SalaryComponent) error
	Delete(ctx context.Context, companyID, id string) error
	CountReferences(ctx context.Context, companyID, id string) (structures int64, payslips int64, err error)
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

func (r *repository) Create(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter GetSalaryComponentsFilterRequest) ([]SalaryComponent, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID))

	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	var components []SalaryComponent
	err := db.Order("sort_order, code").Find(&components).Error
	return components, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryComponent, error) {
	var component SalaryComponent
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

func (r *repository) FindByIDsAndCompany(ctx context.Context, companyID string, ids []string) ([]SalaryComponent, error) {
	var components []SalaryComponent
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Find(&components).Error
	return components, err
}

func (r *repository) ExistsByCode(ctx context.Context, companyID, code string, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&SalaryComponent{}).
		Scopes(tenant.Scope(companyID)).
		Where("UPPER(code) = ?", strings.ToUpper(code))

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&SalaryComponent{}, "id = ?", id).Error
}

func (r *repository) CountReferences(ctx context.Context, companyID, id string) (int64, int64, error) {
	var structures int64
	err := r.db.WithContext(ctx).
		Table("salary_structure_components").
		Joins("JOIN salary_structures ON salary_structures.id = salary_structure_components.salary_structure_id").
		Where("salary_structures.company_id = ?", companyID).
		Where("salary_structure_components.salary_component_id = ?", id).
		Count(&structures).Error
	if err != nil {
		return 0, 0, err
	}

	var payslips int64
	err = r.db.WithContext(ctx).
		Table("payslip_components").
		Where("company_id = ?", companyID).
		Where("salary_component_id = ?", id).
		Count(&payslips).Error
	if err != nil {
		return 0, 0, err
	}

	return structures, payslips, nil
}
