package employee

import (
	"context"

	"github.com/madhavny/mavi-hrms-sub002/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	ExistsInCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	FindByIDAndCompany(ctx context.Context, companyID, employeeID string) (*Employee, error)
	// ListWithActiveStructure returns the employees eligible for payroll
	// generation, optionally narrowed to employeeIDs. Order is stable
	// (full_name, id) so bulk results aggregate deterministically.
	ListWithActiveStructure(ctx context.Context, companyID string, employeeIDs []string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ExistsInCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		Where("is_active = TRUE").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, employeeID string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&emp, "id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) ListWithActiveStructure(ctx context.Context, companyID string, employeeIDs []string) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("employees.*").
		Joins("JOIN salary_structures ON salary_structures.employee_id = employees.id AND salary_structures.is_active = TRUE").
		Where("employees.company_id = ?", companyID).
		Where("employees.is_active = TRUE")

	if len(employeeIDs) > 0 {
		db = db.Where("employees.id IN ?", employeeIDs)
	}

	var emps []Employee
	err := db.Order("employees.full_name, employees.id").Find(&emps).Error
	return emps, err
}
