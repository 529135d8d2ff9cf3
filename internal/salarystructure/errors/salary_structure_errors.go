package salarystructureerrors

import (
	"net/http"

	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"employee not found in this company",
		http.StatusNotFound,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"monetary values must be non-negative decimals",
		http.StatusBadRequest,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"percentage must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrComponentNotInCatalog = apperror.New(
		apperror.CodeNotFound,
		"salary component not found in this company",
		http.StatusNotFound,
	)
	ErrComponentValueMissing = apperror.New(
		apperror.CodeInvalidInput,
		"component requires amount (FIXED) or percentage (PERCENTAGE)",
		http.StatusBadRequest,
	)
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary structure not found",
		http.StatusNotFound,
	)
	ErrStructureInUse = apperror.New(
		apperror.CodeBusinessRule,
		"structure was used to generate payslips and cannot be deleted",
		http.StatusUnprocessableEntity,
	)
)
