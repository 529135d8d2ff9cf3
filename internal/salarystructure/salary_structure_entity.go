package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryStructure struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_structures_company_employee"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_structures_company_employee"`
	CTC           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	BasicSalary   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	GrossSalary   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NetSalary     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	EffectiveFrom time.Time       `gorm:"type:date;not null"`
	EffectiveTo   *time.Time      `gorm:"type:date"`
	IsActive      bool            `gorm:"not null;default:true"`
	Remarks       *string         `gorm:"type:text"`
	CreatedBy     uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Components []SalaryStructureComponent `gorm:"foreignKey:SalaryStructureID"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

type SalaryStructureComponent struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalaryStructureID uuid.UUID        `gorm:"type:uuid;not null;index"`
	SalaryComponentID uuid.UUID        `gorm:"type:uuid;not null;index"`
	ComponentName     string           `gorm:"type:varchar(120);not null"`
	ComponentType     string           `gorm:"type:varchar(20);not null"`
	CalculationType   string           `gorm:"type:varchar(20);not null"`
	Amount            *decimal.Decimal `gorm:"type:numeric(18,2)"`
	Percentage        *decimal.Decimal `gorm:"type:numeric(7,4)"`
	CalculatedAmount  decimal.Decimal  `gorm:"type:numeric(18,2);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (SalaryStructureComponent) TableName() string {
	return "salary_structure_components"
}
