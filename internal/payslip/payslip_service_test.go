package payslip

import (
	"context"
	"testing"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/attendance"
	"github.com/madhavny/mavi-hrms-sub002/internal/employee"
	"github.com/madhavny/mavi-hrms-sub002/internal/leave"
	"github.com/madhavny/mavi-hrms-sub002/internal/messaging/kafka"
	"github.com/madhavny/mavi-hrms-sub002/internal/payperiod"
	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarycomponent"
	"github.com/madhavny/mavi-hrms-sub002/internal/salarystructure"
	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakePayslipRepo struct {
	CreateFunc                  func(ctx context.Context, payslip *Payslip) error
	ExistsForPeriodFunc         func(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error)
	FindAllFunc                 func(ctx context.Context, companyID string, filter GetPayslipsFilterRequest) ([]Payslip, int64, error)
	FindByIDAndCompanyFunc      func(ctx context.Context, companyID, id string) (*Payslip, error)
	FindByEmployeeAndPeriodFunc func(ctx context.Context, companyID, employeeID string, month, year int) (*Payslip, error)
	UpdateFunc                  func(ctx context.Context, payslip *Payslip) error
	DeleteFunc                  func(ctx context.Context, companyID, id string) error
	SummaryByPeriodFunc         func(ctx context.Context, companyID string, month, year int) (SummaryRow, []StatusCount, error)
}

func (f *fakePayslipRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakePayslipRepo) Create(ctx context.Context, payslip *Payslip) error {
	return f.CreateFunc(ctx, payslip)
}

func (f *fakePayslipRepo) ExistsForPeriod(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error) {
	return f.ExistsForPeriodFunc(ctx, companyID, employeeID, month, year)
}

func (f *fakePayslipRepo) FindAll(ctx context.Context, companyID string, filter GetPayslipsFilterRequest) ([]Payslip, int64, error) {
	return f.FindAllFunc(ctx, companyID, filter)
}

func (f *fakePayslipRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payslip, error) {
	return f.FindByIDAndCompanyFunc(ctx, companyID, id)
}

func (f *fakePayslipRepo) FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, month, year int) (*Payslip, error) {
	return f.FindByEmployeeAndPeriodFunc(ctx, companyID, employeeID, month, year)
}

func (f *fakePayslipRepo) Update(ctx context.Context, payslip *Payslip) error {
	return f.UpdateFunc(ctx, payslip)
}

func (f *fakePayslipRepo) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFunc(ctx, companyID, id)
}

func (f *fakePayslipRepo) SummaryByPeriod(ctx context.Context, companyID string, month, year int) (SummaryRow, []StatusCount, error) {
	return f.SummaryByPeriodFunc(ctx, companyID, month, year)
}

type fakeStructureRepo struct {
	salarystructure.Repository
	FindActiveByEmployeeFunc func(ctx context.Context, companyID, employeeID string) (*salarystructure.SalaryStructure, error)
}

func (f *fakeStructureRepo) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) (*salarystructure.SalaryStructure, error) {
	return f.FindActiveByEmployeeFunc(ctx, companyID, employeeID)
}

type fakeEmployeeRepo struct {
	employee.Repository
	ExistsInCompanyFunc         func(ctx context.Context, companyID, employeeID string) (bool, error)
	ListWithActiveStructureFunc func(ctx context.Context, companyID string, employeeIDs []string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) ExistsInCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	return f.ExistsInCompanyFunc(ctx, companyID, employeeID)
}

func (f *fakeEmployeeRepo) ListWithActiveStructure(ctx context.Context, companyID string, employeeIDs []string) ([]employee.Employee, error) {
	return f.ListWithActiveStructureFunc(ctx, companyID, employeeIDs)
}

type fakeAttendanceRepo struct {
	ListByEmployeeAndRangeFunc func(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return f.ListByEmployeeAndRangeFunc(ctx, companyID, employeeID, from, to)
}

type fakeLeaveRepo struct {
	ListApprovedOverlappingFunc func(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]leave.Leave, error)
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return f.ListApprovedOverlappingFunc(ctx, companyID, employeeID, from, to)
}

type fakeOutboxRepo struct {
	CreateFunc func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepo) WithTx(tx kafka.Execer) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func newTestResolver() payperiod.Resolver {
	return payperiod.NewResolver(time.UTC)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// activeStructure: basic 30000, fixed HRA 12000 earning,
// 12% PF deduction (3600 against basic).
func activeStructure(companyID, employeeID uuid.UUID) *salarystructure.SalaryStructure {
	hraAmount := decimal.NewFromInt(12000)
	pfRate := decimal.NewFromInt(12)
	return &salarystructure.SalaryStructure{
		ID:          uuid.New(),
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		CTC:         decimal.NewFromInt(600000),
		BasicSalary: decimal.NewFromInt(30000),
		GrossSalary: decimal.NewFromInt(42000),
		NetSalary:   decimal.NewFromInt(38400),
		IsActive:    true,
		Components: []salarystructure.SalaryStructureComponent{
			{
				SalaryComponentID: uuid.New(),
				ComponentName:     "House Rent Allowance",
				ComponentType:     salarycomponent.TypeEarning,
				CalculationType:   salarycomponent.CalculationFixed,
				Amount:            &hraAmount,
				CalculatedAmount:  decimal.NewFromInt(12000),
			},
			{
				SalaryComponentID: uuid.New(),
				ComponentName:     "Provident Fund",
				ComponentType:     salarycomponent.TypeDeduction,
				CalculationType:   salarycomponent.CalculationPercentage,
				Percentage:        &pfRate,
				CalculatedAmount:  decimal.NewFromInt(3600),
			},
		},
	}
}

func presentRows(employeeID uuid.UUID, year int, month time.Month, days int) []attendance.Attendance {
	rows := make([]attendance.Attendance, 0, days)
	day := 1
	for len(rows) < days {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Weekday() != time.Saturday && date.Weekday() != time.Sunday {
			rows = append(rows, attendance.Attendance{
				EmployeeID:     employeeID,
				AttendanceDate: date,
				Status:         attendance.StatusPresent,
			})
		}
		day++
	}
	return rows
}

type generateFixture struct {
	companyID  uuid.UUID
	employeeID uuid.UUID
	actorID    uuid.UUID
	repo       *fakePayslipRepo
	outbox     *fakeOutboxRepo
	svc        Service
	mock       sqlmock.Sqlmock
}

func newGenerateFixture(t *testing.T, attendanceRows []attendance.Attendance, leaves []leave.Leave) *generateFixture {
	t.Helper()
	db, mock := newMockDB(t)

	f := &generateFixture{
		companyID:  uuid.New(),
		employeeID: uuid.New(),
		actorID:    uuid.New(),
		mock:       mock,
	}

	f.repo = &fakePayslipRepo{
		ExistsForPeriodFunc: func(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error) {
			return "", false, nil
		},
		CreateFunc: func(ctx context.Context, payslip *Payslip) error {
			return nil
		},
	}

	structureRepo := &fakeStructureRepo{
		FindActiveByEmployeeFunc: func(ctx context.Context, companyID, employeeID string) (*salarystructure.SalaryStructure, error) {
			return activeStructure(f.companyID, f.employeeID), nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		ExistsInCompanyFunc: func(ctx context.Context, companyID, employeeID string) (bool, error) {
			return true, nil
		},
	}
	attendanceRepo := &fakeAttendanceRepo{
		ListByEmployeeAndRangeFunc: func(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
			return attendanceRows, nil
		},
	}
	leaveRepo := &fakeLeaveRepo{
		ListApprovedOverlappingFunc: func(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
			return leaves, nil
		},
	}

	f.outbox = &fakeOutboxRepo{}
	f.svc = NewService(
		db,
		f.repo,
		structureRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		f.outbox,
		payperiod.NewResolver(time.UTC),
		nil,
		nil,
	)
	return f
}

// April 2025 has 22 working days; with 20 days present and no leave the
// documented example applies: per-day 1909.09, LOP deduction 3818.18.
func TestGenerateWorkedExample(t *testing.T) {
	f := newGenerateFixture(t, presentRows(uuid.New(), 2025, time.April, 20), nil)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	var created *Payslip
	create := f.repo.CreateFunc
	f.repo.CreateFunc = func(ctx context.Context, payslip *Payslip) error {
		created = payslip
		return create(ctx, payslip)
	}

	resp, err := f.svc.Generate(context.Background(), f.companyID.String(), f.actorID.String(), GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	require.NoError(t, err)
	assert.Equal(t, "42000.00", resp.GrossEarnings)
	assert.Equal(t, "7418.18", resp.TotalDeductions)
	assert.Equal(t, "34581.82", resp.NetSalary)
	assert.Equal(t, 22, resp.TotalWorkingDays)
	assert.Equal(t, 20, resp.DaysWorked)
	assert.Equal(t, 2, resp.LOPDays)
	assert.Equal(t, StatusDraft, resp.Status)

	require.NotNil(t, created)
	require.Len(t, created.Components, 2)
	assert.Equal(t, "12000.00", created.Components[0].Amount.StringFixed(2))
	assert.Equal(t, "3600.00", created.Components[1].Amount.StringFixed(2))

	// net == gross - deductions, exactly
	assert.True(t, created.NetSalary.Equal(created.GrossEarnings.Sub(created.TotalDeductions)))
	// daysWorked + lopDays == totalWorkingDays
	assert.Equal(t, created.TotalWorkingDays, created.DaysWorked+created.LOPDays)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestGeneratePaidLeaveCountsAsWorked(t *testing.T) {
	leaves := []leave.Leave{
		{
			// 3 working-week days inside April, paid
			StartDate: time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
			IsPaid:    true,
		},
		{
			// 2 days unpaid
			StartDate: time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
			IsPaid:    false,
		},
	}
	f := newGenerateFixture(t, presentRows(uuid.New(), 2025, time.April, 15), leaves)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.Generate(context.Background(), f.companyID.String(), f.actorID.String(), GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	require.NoError(t, err)
	assert.Equal(t, 18, resp.DaysWorked, "15 present + 3 paid leave")
	assert.Equal(t, 5, resp.LeaveDays)
	assert.Equal(t, 4, resp.LOPDays, "22 working - 18 worked")
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestGenerateLeaveClippedToMonth(t *testing.T) {
	leaves := []leave.Leave{
		{
			// spills out of April on both sides; only 28-30 Apr count
			StartDate: time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC),
			IsPaid:    true,
		},
		{
			StartDate: time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
			IsPaid:    true,
		},
	}
	f := newGenerateFixture(t, presentRows(uuid.New(), 2025, time.April, 10), leaves)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.Generate(context.Background(), f.companyID.String(), f.actorID.String(), GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	require.NoError(t, err)
	// first leave is wholly in March (no overlap), second clips to 3 days
	assert.Equal(t, 13, resp.DaysWorked)
	assert.Equal(t, 3, resp.LeaveDays)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestGenerateFailsWhenPayslipExists(t *testing.T) {
	f := newGenerateFixture(t, nil, nil)

	existingID := uuid.New().String()
	f.repo.ExistsForPeriodFunc = func(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error) {
		return existingID, true, nil
	}
	f.repo.CreateFunc = func(ctx context.Context, payslip *Payslip) error {
		t.Fatal("create must not be called")
		return nil
	}

	_, err := f.svc.Generate(context.Background(), f.companyID.String(), f.actorID.String(), GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipExists)
	assert.Contains(t, err.Error(), existingID)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

// A concurrent generate can slip between the pre-check and the insert;
// the unique index violation must surface as the same error, with the
// winner's id attached.
func TestGenerateUniqueViolationTreatedAsExists(t *testing.T) {
	f := newGenerateFixture(t, presentRows(uuid.New(), 2025, time.April, 20), nil)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	winnerID := uuid.New().String()
	firstCheck := true
	f.repo.ExistsForPeriodFunc = func(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error) {
		if firstCheck {
			firstCheck = false
			return "", false, nil
		}
		return winnerID, true, nil
	}
	f.repo.CreateFunc = func(ctx context.Context, payslip *Payslip) error {
		return paysliperrors.ErrPayslipExists
	}

	_, err := f.svc.Generate(context.Background(), f.companyID.String(), f.actorID.String(), GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipExists)
	assert.Contains(t, err.Error(), winnerID)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestGenerateFailsWithoutActiveStructure(t *testing.T) {
	db, _ := newMockDB(t)

	repo := &fakePayslipRepo{
		ExistsForPeriodFunc: func(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error) {
			return "", false, nil
		},
	}
	structureRepo := &fakeStructureRepo{
		FindActiveByEmployeeFunc: func(ctx context.Context, companyID, employeeID string) (*salarystructure.SalaryStructure, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		ExistsInCompanyFunc: func(ctx context.Context, companyID, employeeID string) (bool, error) {
			return true, nil
		},
	}

	svc := NewService(db, repo, structureRepo, employeeRepo, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, payperiod.NewResolver(time.UTC), nil, nil)
	_, err := svc.Generate(context.Background(), uuid.New().String(), uuid.New().String(), GeneratePayslipRequest{
		EmployeeID: uuid.New().String(),
		Month:      4,
		Year:       2025,
	})

	assert.ErrorIs(t, err, paysliperrors.ErrNoActiveStructure)
}

func TestGenerateRejectsInvalidPeriod(t *testing.T) {
	svc := NewService(nil, &fakePayslipRepo{}, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, payperiod.NewResolver(time.UTC), nil, nil)

	for _, tc := range []struct{ month, year int }{
		{0, 2025},
		{13, 2025},
		{6, 1999},
	} {
		_, err := svc.Generate(context.Background(), uuid.New().String(), uuid.New().String(), GeneratePayslipRequest{
			EmployeeID: uuid.New().String(),
			Month:      tc.month,
			Year:       tc.year,
		})
		assert.ErrorIs(t, err, paysliperrors.ErrInvalidPeriod)
	}
}

// Overlapping approved paid leaves are summed without dedup: a day
// covered by two approved rows counts twice.
func TestGenerateOverlappingPaidLeavesDoubleCounted(t *testing.T) {
	leaves := []leave.Leave{
		{
			// Mon 7 - Wed 9 April
			StartDate: time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
			IsPaid:    true,
		},
		{
			// Tue 8 - Thu 10 April, overlapping the first on 8 and 9
			StartDate: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			IsPaid:    true,
		},
	}
	f := newGenerateFixture(t, presentRows(uuid.New(), 2025, time.April, 14), leaves)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.Generate(context.Background(), f.companyID.String(), f.actorID.String(), GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.LeaveDays, "3 + 3, the shared days 8 and 9 count twice")
	assert.Equal(t, 20, resp.DaysWorked, "14 present + 6 paid leave")
	assert.Equal(t, 2, resp.LOPDays)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

// The payslip insert and the outbox row share one transaction; an
// outbox failure must roll the payslip back and surface the error.
func TestGenerateRollsBackWhenOutboxWriteFails(t *testing.T) {
	f := newGenerateFixture(t, presentRows(uuid.New(), 2025, time.April, 20), nil)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	f.outbox.CreateFunc = func(ctx context.Context, event kafka.OutboxEvent) error {
		return assert.AnError
	}

	_, err := f.svc.Generate(context.Background(), f.companyID.String(), f.actorID.String(), GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

// A signed token with a non-UUID employee_id claim must fail the
// request, never panic it.
func TestGenerateRejectsMalformedActor(t *testing.T) {
	f := newGenerateFixture(t, nil, nil)

	_, err := f.svc.Generate(context.Background(), f.companyID.String(), "admin", GeneratePayslipRequest{
		EmployeeID: f.employeeID.String(),
		Month:      4,
		Year:       2025,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

// Transient storage failures on the structure lookup must not be
// reported as a missing structure.
func TestGenerateSurfacesStructureLookupFailure(t *testing.T) {
	db, _ := newMockDB(t)

	repo := &fakePayslipRepo{
		ExistsForPeriodFunc: func(ctx context.Context, companyID, employeeID string, month, year int) (string, bool, error) {
			return "", false, nil
		},
	}
	structureRepo := &fakeStructureRepo{
		FindActiveByEmployeeFunc: func(ctx context.Context, companyID, employeeID string) (*salarystructure.SalaryStructure, error) {
			return nil, assert.AnError
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		ExistsInCompanyFunc: func(ctx context.Context, companyID, employeeID string) (bool, error) {
			return true, nil
		},
	}

	svc := NewService(db, repo, structureRepo, employeeRepo, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, payperiod.NewResolver(time.UTC), nil, nil)
	_, err := svc.Generate(context.Background(), uuid.New().String(), uuid.New().String(), GeneratePayslipRequest{
		EmployeeID: uuid.New().String(),
		Month:      4,
		Year:       2025,
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, paysliperrors.ErrNoActiveStructure)
}

func TestLossOfPay(t *testing.T) {
	tests := []struct {
		name        string
		gross       int64
		workingDays int
		daysWorked  int
		wantDays    int
		wantAmount  string
	}{
		{"two days lost", 42000, 22, 20, 2, "3818.18"},
		{"full attendance", 42000, 22, 22, 0, "0.00"},
		{"overworked clamps to zero", 42000, 22, 25, 0, "0.00"},
		{"no working days skips lop", 42000, 0, 0, 0, "0.00"},
		{"nobody worked", 42000, 22, 0, 22, "41999.98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, amount := lossOfPay(decimal.NewFromInt(tt.gross), tt.workingDays, tt.daysWorked)
			assert.Equal(t, tt.wantDays, days)
			assert.Equal(t, tt.wantAmount, amount.StringFixed(2))
		})
	}
}

func TestSummaryMapsAggregates(t *testing.T) {
	repo := &fakePayslipRepo{
		SummaryByPeriodFunc: func(ctx context.Context, companyID string, month, year int) (SummaryRow, []StatusCount, error) {
			return SummaryRow{
					PayslipCount:    3,
					GrossEarnings:   decimal.NewFromInt(126000),
					TotalDeductions: decimal.NewFromInt(22254),
					NetSalary:       decimal.NewFromInt(103746),
				}, []StatusCount{
					{Status: StatusDraft, Count: 2},
					{Status: StatusPaid, Count: 1},
				}, nil
		},
	}

	svc := NewService(nil, repo, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, payperiod.NewResolver(time.UTC), nil, nil)
	resp, err := svc.Summary(context.Background(), uuid.New().String(), 4, 2025)

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.PayslipCount)
	assert.Equal(t, "126000.00", resp.GrossEarnings)
	assert.Equal(t, "103746.00", resp.NetSalary)
	assert.Equal(t, map[string]int{StatusDraft: 2, StatusPaid: 1}, resp.StatusBreakdown)
}
