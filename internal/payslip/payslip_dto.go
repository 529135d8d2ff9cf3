package payslip

type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
}

type BulkGeneratePayslipsRequest struct {
	Month       int      `json:"month" binding:"required,min=1,max=12"`
	Year        int      `json:"year" binding:"required,min=2000,max=2100"`
	EmployeeIDs []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
}

type UpdatePayslipStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkUpdatePayslipStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,dive,uuid"`
	Status string   `json:"status" binding:"required"`
}

type GetPayslipsFilterRequest struct {
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

type PayslipComponentResponse struct {
	SalaryComponentID string `json:"salary_component_id"`
	ComponentName     string `json:"component_name"`
	ComponentType     string `json:"component_type"`
	Amount            string `json:"amount"`
}

type PayslipResponse struct {
	ID               string                     `json:"id"`
	CompanyID        string                     `json:"company_id"`
	EmployeeID       string                     `json:"employee_id"`
	Month            int                        `json:"month"`
	Year             int                        `json:"year"`
	BasicSalary      string                     `json:"basic_salary"`
	GrossEarnings    string                     `json:"gross_earnings"`
	TotalDeductions  string                     `json:"total_deductions"`
	NetSalary        string                     `json:"net_salary"`
	TotalWorkingDays int                        `json:"total_working_days"`
	DaysWorked       int                        `json:"days_worked"`
	LeaveDays        int                        `json:"leave_days"`
	LOPDays          int                        `json:"lop_days"`
	Status           string                     `json:"status"`
	GeneratedAt      string                     `json:"generated_at"`
	ProcessedAt      *string                    `json:"processed_at,omitempty"`
	PaidAt           *string                    `json:"paid_at,omitempty"`
	PaidBy           *string                    `json:"paid_by,omitempty"`
	Components       []PayslipComponentResponse `json:"components,omitempty"`
}

type BulkGenerateSuccess struct {
	EmployeeID string `json:"employee_id"`
	PayslipID  string `json:"payslip_id"`
}

type BulkGenerateSkipped struct {
	EmployeeID string `json:"employee_id"`
	PayslipID  string `json:"payslip_id"`
	Reason     string `json:"reason"`
}

type BulkGenerateFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type BulkGeneratePayslipsResponse struct {
	Month           int                   `json:"month"`
	Year            int                   `json:"year"`
	SuccessfulCount int                   `json:"successful_count"`
	SkippedCount    int                   `json:"skipped_count"`
	FailedCount     int                   `json:"failed_count"`
	Successful      []BulkGenerateSuccess `json:"successful"`
	Skipped         []BulkGenerateSkipped `json:"skipped"`
	Failed          []BulkGenerateFailure `json:"failed"`
}

type BulkUpdateStatusFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type BulkUpdatePayslipStatusResponse struct {
	UpdatedCount int                       `json:"updated_count"`
	Failed       []BulkUpdateStatusFailure `json:"failed"`
}

type PayrollSummaryResponse struct {
	Month           int            `json:"month"`
	Year            int            `json:"year"`
	PayslipCount    int64          `json:"payslip_count"`
	GrossEarnings   string         `json:"gross_earnings"`
	TotalDeductions string         `json:"total_deductions"`
	NetSalary       string         `json:"net_salary"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
}
