package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a read-only projection of the directory's employees table.
// The payroll engine never writes to it.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	FullName  string    `gorm:"column:full_name"`
	Email     string
	IsActive  bool `gorm:"column:is_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}
