package attendance

import (
	"context"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	ListByEmployeeAndRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByEmployeeAndRange(
	ctx context.Context,
	companyID, employeeID string,
	from, to time.Time,
) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from, to).
		Where("deleted_at IS NULL").
		Order("attendance_date").
		Find(&rows).Error
	return rows, err
}
