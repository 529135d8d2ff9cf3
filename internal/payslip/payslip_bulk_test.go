package payslip

import (
	"context"
	"testing"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/attendance"
	"github.com/madhavny/mavi-hrms-sub002/internal/employee"
	"github.com/madhavny/mavi-hrms-sub002/internal/leave"
	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarystructure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three employees, one of whom already has a payslip: the batch reports
// 2 successful, 1 skipped, 0 failed.
func TestBulkGenerateClassifiesOutcomes(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	companyID := uuid.New()
	employees := []employee.Employee{
		{ID: uuid.New(), CompanyID: companyID, FullName: "Alice"},
		{ID: uuid.New(), CompanyID: companyID, FullName: "Bob"},
		{ID: uuid.New(), CompanyID: companyID, FullName: "Carol"},
	}
	existingEmployee := employees[1].ID.String()
	existingPayslipID := uuid.New().String()

	repo := &fakePayslipRepo{
		ExistsForPeriodFunc: func(ctx context.Context, gotCompany, employeeID string, month, year int) (string, bool, error) {
			if employeeID == existingEmployee {
				return existingPayslipID, true, nil
			}
			return "", false, nil
		},
		CreateFunc: func(ctx context.Context, payslip *Payslip) error {
			return nil
		},
	}
	structureRepo := &fakeStructureRepo{
		FindActiveByEmployeeFunc: func(ctx context.Context, gotCompany, employeeID string) (*salarystructure.SalaryStructure, error) {
			return activeStructure(companyID, uuid.MustParse(employeeID)), nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		ExistsInCompanyFunc: func(ctx context.Context, gotCompany, employeeID string) (bool, error) {
			return true, nil
		},
		ListWithActiveStructureFunc: func(ctx context.Context, gotCompany string, employeeIDs []string) ([]employee.Employee, error) {
			return employees, nil
		},
	}
	attendanceRepo := &fakeAttendanceRepo{
		ListByEmployeeAndRangeFunc: func(ctx context.Context, gotCompany, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
			return presentRows(uuid.MustParse(employeeID), 2025, time.April, 22), nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		ListApprovedOverlappingFunc: func(ctx context.Context, gotCompany, employeeID string, from, to time.Time) ([]leave.Leave, error) {
			return nil, nil
		},
	}

	svc := NewService(db, repo, structureRepo, employeeRepo, attendanceRepo, leaveRepo, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
	result, err := svc.BulkGenerate(context.Background(), companyID.String(), uuid.New().String(), BulkGeneratePayslipsRequest{
		Month: 4,
		Year:  2025,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessfulCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 0, result.FailedCount)

	// outcomes keep the employee selection order regardless of which
	// goroutine finished first
	require.Len(t, result.Successful, 2)
	assert.Equal(t, employees[0].ID.String(), result.Successful[0].EmployeeID)
	assert.Equal(t, employees[2].ID.String(), result.Successful[1].EmployeeID)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, existingEmployee, result.Skipped[0].EmployeeID)
	assert.Equal(t, existingPayslipID, result.Skipped[0].PayslipID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// One employee's failure must not abort the rest of the batch.
func TestBulkGenerateIsolatesFailures(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectCommit()

	companyID := uuid.New()
	employees := []employee.Employee{
		{ID: uuid.New(), CompanyID: companyID, FullName: "Alice"},
		{ID: uuid.New(), CompanyID: companyID, FullName: "Bob"},
	}
	brokenEmployee := employees[0].ID.String()

	repo := &fakePayslipRepo{
		ExistsForPeriodFunc: func(ctx context.Context, gotCompany, employeeID string, month, year int) (string, bool, error) {
			return "", false, nil
		},
		CreateFunc: func(ctx context.Context, payslip *Payslip) error {
			return nil
		},
	}
	structureRepo := &fakeStructureRepo{
		FindActiveByEmployeeFunc: func(ctx context.Context, gotCompany, employeeID string) (*salarystructure.SalaryStructure, error) {
			if employeeID == brokenEmployee {
				return nil, paysliperrors.ErrNoActiveStructure
			}
			return activeStructure(companyID, uuid.MustParse(employeeID)), nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		ExistsInCompanyFunc: func(ctx context.Context, gotCompany, employeeID string) (bool, error) {
			return true, nil
		},
		ListWithActiveStructureFunc: func(ctx context.Context, gotCompany string, employeeIDs []string) ([]employee.Employee, error) {
			return employees, nil
		},
	}
	attendanceRepo := &fakeAttendanceRepo{
		ListByEmployeeAndRangeFunc: func(ctx context.Context, gotCompany, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
			return presentRows(uuid.MustParse(employeeID), 2025, time.April, 22), nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		ListApprovedOverlappingFunc: func(ctx context.Context, gotCompany, employeeID string, from, to time.Time) ([]leave.Leave, error) {
			return nil, nil
		},
	}

	svc := NewService(db, repo, structureRepo, employeeRepo, attendanceRepo, leaveRepo, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
	result, err := svc.BulkGenerate(context.Background(), companyID.String(), uuid.New().String(), BulkGeneratePayslipsRequest{
		Month: 4,
		Year:  2025,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessfulCount)
	assert.Equal(t, 0, result.SkippedCount)
	require.Equal(t, 1, result.FailedCount)
	assert.Equal(t, brokenEmployee, result.Failed[0].EmployeeID)
	assert.NotEmpty(t, result.Failed[0].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkGenerateRejectsInvalidPeriod(t *testing.T) {
	svc := NewService(nil, &fakePayslipRepo{}, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
	_, err := svc.BulkGenerate(context.Background(), uuid.New().String(), uuid.New().String(), BulkGeneratePayslipsRequest{
		Month: 0,
		Year:  2025,
	})
	assert.ErrorIs(t, err, paysliperrors.ErrInvalidPeriod)
}
