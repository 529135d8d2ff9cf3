package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// ListApprovedOverlapping returns approved leave requests that touch
	// the [from, to] range. Ranges are clipped by the caller.
	ListApprovedOverlapping(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Leave, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListApprovedOverlapping(
	ctx context.Context,
	companyID, employeeID string,
	from, to time.Time,
) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("leaves.id, leaves.company_id, leaves.employee_id, leaves.start_date, leaves.end_date, leaves.status, leave_types.is_paid").
		Joins("JOIN leave_types ON leave_types.id = leaves.leave_type_id").
		Where("leaves.company_id = ?", companyID).
		Where("leaves.employee_id = ?", employeeID).
		Where("leaves.status = ?", StatusApproved).
		Where("NOT (leaves.end_date < ? OR leaves.start_date > ?)", from, to).
		Where("leaves.deleted_at IS NULL").
		Order("leaves.start_date").
		Scan(&rows).Error
	return rows, err
}
