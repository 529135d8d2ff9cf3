package salarycomponenterrors

import (
	"net/http"

	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"
)

var (
	ErrInvalidComponentType = apperror.New(
		apperror.CodeInvalidInput,
		"component_type must be EARNING, DEDUCTION or REIMBURSEMENT",
		http.StatusBadRequest,
	)
	ErrInvalidCalculationType = apperror.New(
		apperror.CodeInvalidInput,
		"calculation_type must be FIXED or PERCENTAGE",
		http.StatusBadRequest,
	)
	ErrInvalidDefaultValue = apperror.New(
		apperror.CodeInvalidInput,
		"default_value must be a non-negative decimal",
		http.StatusBadRequest,
	)
	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"a salary component with this code already exists",
		http.StatusConflict,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary component not found",
		http.StatusNotFound,
	)
	ErrStatutoryDelete = apperror.New(
		apperror.CodeBusinessRule,
		"statutory component cannot be deleted, deactivate it instead",
		http.StatusUnprocessableEntity,
	)
	ErrComponentInUse = apperror.New(
		apperror.CodeConflict,
		"component is referenced by salary structures or payslips and cannot be deleted",
		http.StatusConflict,
	)
)
