package paysliperrors

import (
	"net/http"

	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year a plausible payroll year",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeNotFound,
		"employee not found in this company",
		http.StatusNotFound,
	)
	// ErrPayslipExists is returned by both the pre-check and the unique
	// index violation path; callers get the existing payslip id as detail.
	ErrPayslipExists = apperror.New(
		apperror.CodeConflict,
		"payslip already exists for this employee and period",
		http.StatusConflict,
	)
	ErrNoActiveStructure = apperror.New(
		apperror.CodeNotFound,
		"no active salary structure for this employee",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of DRAFT, PROCESSED, PAID, CANCELLED",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"status transition is not allowed",
		http.StatusBadRequest,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeBusinessRule,
		"only DRAFT payslips can be deleted",
		http.StatusUnprocessableEntity,
	)
)
