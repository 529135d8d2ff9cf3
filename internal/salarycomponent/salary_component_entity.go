package salarycomponent

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeEarning       = "EARNING"
	TypeDeduction     = "DEDUCTION"
	TypeReimbursement = "REIMBURSEMENT"

	CalculationFixed      = "FIXED"
	CalculationPercentage = "PERCENTAGE"
)

type SalaryComponent struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_components_company_code,unique"`
	Name            string          `gorm:"type:varchar(120);not null"`
	Code            string          `gorm:"type:varchar(40);not null;index:idx_components_company_code,unique"`
	ComponentType   string          `gorm:"type:varchar(20);not null"`
	CalculationType string          `gorm:"type:varchar(20);not null"`
	DefaultValue    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	IsTaxable       bool            `gorm:"not null;default:false"`
	IsStatutory     bool            `gorm:"not null;default:false"`
	IsActive        bool            `gorm:"not null;default:true"`
	SortOrder       int             `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SalaryComponent) TableName() string {
	return "salary_components"
}

func ValidComponentType(t string) bool {
	switch t {
	case TypeEarning, TypeDeduction, TypeReimbursement:
		return true
	default:
		return false
	}
}

func ValidCalculationType(t string) bool {
	switch t {
	case CalculationFixed, CalculationPercentage:
		return true
	default:
		return false
	}
}
