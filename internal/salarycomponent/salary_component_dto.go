package salarycomponent

type CreateSalaryComponentRequest struct {
	Name            string `json:"name" binding:"required"`
	Code            string `json:"code" binding:"required"`
	ComponentType   string `json:"component_type" binding:"required"`
	CalculationType string `json:"calculation_type" binding:"required"`
	DefaultValue    string `json:"default_value"`
	IsTaxable       bool   `json:"is_taxable"`
	IsStatutory     bool   `json:"is_statutory"`
	SortOrder       int    `json:"sort_order"`
}

type UpdateSalaryComponentRequest struct {
	Name            string  `json:"name" binding:"required"`
	Code            string  `json:"code" binding:"required"`
	ComponentType   string  `json:"component_type" binding:"required"`
	CalculationType string  `json:"calculation_type" binding:"required"`
	DefaultValue    string  `json:"default_value"`
	IsTaxable       bool    `json:"is_taxable"`
	IsStatutory     bool    `json:"is_statutory"`
	IsActive        *bool   `json:"is_active"`
	SortOrder       *int    `json:"sort_order"`
	Remarks         *string `json:"remarks"`
}

type GetSalaryComponentsFilterRequest struct {
	Active *bool `form:"active"`
}

type SalaryComponentResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	ComponentType   string `json:"component_type"`
	CalculationType string `json:"calculation_type"`
	DefaultValue    string `json:"default_value"`
	IsTaxable       bool   `json:"is_taxable"`
	IsStatutory     bool   `json:"is_statutory"`
	IsActive        bool   `json:"is_active"`
	SortOrder       int    `json:"sort_order"`
}
