package payslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

type Payslip struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_payslips_employee_period,unique"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_payslips_employee_period,unique"`
	Month            int             `gorm:"not null;index:idx_payslips_employee_period,unique"`
	Year             int             `gorm:"not null;index:idx_payslips_employee_period,unique"`
	BasicSalary      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	GrossEarnings    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalDeductions  decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NetSalary        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalWorkingDays int             `gorm:"not null"`
	DaysWorked       int             `gorm:"not null"`
	LeaveDays        int             `gorm:"not null"`
	LOPDays          int             `gorm:"column:lop_days;not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	GeneratedAt      time.Time       `gorm:"not null"`
	GeneratedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	ProcessedAt      *time.Time
	PaidAt           *time.Time
	PaidBy           *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Components []PayslipComponent `gorm:"foreignKey:PayslipID"`
}

func (Payslip) TableName() string {
	return "payslips"
}

// PayslipComponent is a frozen snapshot of a structure line at
// generation time; later catalog or structure edits never touch it.
type PayslipComponent struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	SalaryComponentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentName     string          `gorm:"type:varchar(120);not null"`
	ComponentType     string          `gorm:"type:varchar(20);not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	CreatedAt         time.Time
}

func (PayslipComponent) TableName() string {
	return "payslip_components"
}

// ValidStatus reports whether s is one of the lifecycle states.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusProcessed, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransition encodes the lifecycle state machine. PAID and CANCELLED
// are terminal; a same-status transition is not a valid move either.
func CanTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusProcessed || to == StatusCancelled
	case StatusProcessed:
		return to == StatusPaid || to == StatusCancelled
	default:
		return false
	}
}
