package leave

import (
	"time"

	"github.com/google/uuid"
)

const StatusApproved = "APPROVED"

// Leave is a read-only projection of the leave module's tables, joined
// with the leave type so the payroll engine can tell paid leave apart
// from unpaid.
type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid"`
	EmployeeID uuid.UUID `gorm:"type:uuid"`
	StartDate  time.Time `gorm:"type:date"`
	EndDate    time.Time `gorm:"type:date"`
	Status     string    `gorm:"type:varchar(20)"`
	IsPaid     bool      `gorm:"column:is_paid"`
}

func (Leave) TableName() string {
	return "leaves"
}
