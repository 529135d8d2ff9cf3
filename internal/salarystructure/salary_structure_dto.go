package salarystructure

type StructureComponentInput struct {
	SalaryComponentID string  `json:"salary_component_id" binding:"required,uuid"`
	Amount            *string `json:"amount"`
	Percentage        *string `json:"percentage"`
}

type AssignSalaryStructureRequest struct {
	EmployeeID    string                    `json:"employee_id" binding:"required,uuid"`
	CTC           string                    `json:"ctc" binding:"required"`
	BasicSalary   string                    `json:"basic_salary" binding:"required"`
	EffectiveFrom string                    `json:"effective_from" binding:"required"`
	Remarks       *string                   `json:"remarks"`
	Components    []StructureComponentInput `json:"components"`
}

type UpdateSalaryStructureRequest struct {
	CTC         string                    `json:"ctc" binding:"required"`
	BasicSalary string                    `json:"basic_salary" binding:"required"`
	Remarks     *string                   `json:"remarks"`
	Components  []StructureComponentInput `json:"components"`
}

type PreviewCalculationRequest struct {
	BasicSalary string                    `json:"basic_salary" binding:"required"`
	Components  []StructureComponentInput `json:"components"`
}

type StructureComponentResponse struct {
	SalaryComponentID string  `json:"salary_component_id"`
	ComponentName     string  `json:"component_name"`
	ComponentType     string  `json:"component_type"`
	CalculationType   string  `json:"calculation_type"`
	Amount            *string `json:"amount,omitempty"`
	Percentage        *string `json:"percentage,omitempty"`
	CalculatedAmount  string  `json:"calculated_amount"`
}

type SalaryStructureResponse struct {
	ID            string                       `json:"id"`
	CompanyID     string                       `json:"company_id"`
	EmployeeID    string                       `json:"employee_id"`
	CTC           string                       `json:"ctc"`
	BasicSalary   string                       `json:"basic_salary"`
	GrossSalary   string                       `json:"gross_salary"`
	NetSalary     string                       `json:"net_salary"`
	EffectiveFrom string                       `json:"effective_from"`
	EffectiveTo   *string                      `json:"effective_to,omitempty"`
	IsActive      bool                         `json:"is_active"`
	Remarks       *string                      `json:"remarks,omitempty"`
	Components    []StructureComponentResponse `json:"components,omitempty"`
}

type PreviewCalculationResponse struct {
	BasicSalary     string                       `json:"basic_salary"`
	GrossSalary     string                       `json:"gross_salary"`
	TotalDeductions string                       `json:"total_deductions"`
	NetSalary       string                       `json:"net_salary"`
	Components      []StructureComponentResponse `json:"components"`
}
