package payslip

import (
	"context"
	"testing"

	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func draftPayslip(status string) *Payslip {
	return &Payslip{
		ID:              uuid.New(),
		CompanyID:       uuid.New(),
		EmployeeID:      uuid.New(),
		Month:           4,
		Year:            2025,
		BasicSalary:     decimal.NewFromInt(30000),
		GrossEarnings:   decimal.NewFromInt(42000),
		TotalDeductions: decimal.NewFromInt(7418),
		NetSalary:       decimal.NewFromInt(34582),
		Status:          status,
	}
}

func newLifecycleService(t *testing.T, repo *fakePayslipRepo) (Service, interface{ ExpectationsWereMet() error }) {
	t.Helper()
	db, mock := newMockDB(t)
	svc := NewService(db, repo, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
	return svc, mock
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"draft to processed", StatusDraft, StatusProcessed, false},
		{"draft to cancelled", StatusDraft, StatusCancelled, false},
		{"processed to paid", StatusProcessed, StatusPaid, false},
		{"processed to cancelled", StatusProcessed, StatusCancelled, false},
		{"draft to paid skips processed", StatusDraft, StatusPaid, true},
		{"paid is terminal", StatusPaid, StatusCancelled, true},
		{"cancelled is terminal", StatusCancelled, StatusProcessed, true},
		{"same status rejected", StatusProcessed, StatusProcessed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectBegin()
			if tt.wantErr {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit()
			}

			var updated *Payslip
			repo := &fakePayslipRepo{
				FindByIDAndCompanyFunc: func(ctx context.Context, companyID, id string) (*Payslip, error) {
					return draftPayslip(tt.from), nil
				},
				UpdateFunc: func(ctx context.Context, payslip *Payslip) error {
					updated = payslip
					return nil
				},
			}

			svc := NewService(db, repo, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
			actorID := uuid.New().String()
			resp, err := svc.UpdateStatus(context.Background(), uuid.New().String(), actorID, uuid.New().String(), UpdatePayslipStatusRequest{Status: tt.to})

			if tt.wantErr {
				assert.ErrorIs(t, err, paysliperrors.ErrInvalidStatusTransition)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, resp.Status)
				require.NotNil(t, updated)
				switch tt.to {
				case StatusProcessed:
					assert.NotNil(t, updated.ProcessedAt)
				case StatusPaid:
					assert.NotNil(t, updated.PaidAt)
					require.NotNil(t, updated.PaidBy)
					assert.Equal(t, actorID, updated.PaidBy.String())
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newLifecycleService(t, &fakePayslipRepo{})
	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), uuid.New().String(), uuid.New().String(), UpdatePayslipStatusRequest{Status: "ARCHIVED"})
	assert.ErrorIs(t, err, paysliperrors.ErrInvalidStatus)
}

func TestBulkUpdateStatusReportsPerIDFailures(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}
	mock.ExpectBegin()
	mock.ExpectRollback()

	paidID := uuid.New().String()
	repo := &fakePayslipRepo{
		FindByIDAndCompanyFunc: func(ctx context.Context, companyID, id string) (*Payslip, error) {
			if id == paidID {
				return draftPayslip(StatusPaid), nil
			}
			return draftPayslip(StatusDraft), nil
		},
		UpdateFunc: func(ctx context.Context, payslip *Payslip) error {
			return nil
		},
	}

	svc := NewService(db, repo, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
	resp, err := svc.BulkUpdateStatus(context.Background(), uuid.New().String(), uuid.New().String(), BulkUpdatePayslipStatusRequest{
		IDs:    []string{uuid.New().String(), paidID, uuid.New().String()},
		Status: StatusProcessed,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.UpdatedCount)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, paidID, resp.Failed[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOnlyDraft(t *testing.T) {
	for _, status := range []string{StatusProcessed, StatusPaid, StatusCancelled} {
		t.Run(status, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectBegin()
			mock.ExpectRollback()

			repo := &fakePayslipRepo{
				FindByIDAndCompanyFunc: func(ctx context.Context, companyID, id string) (*Payslip, error) {
					return draftPayslip(status), nil
				},
				DeleteFunc: func(ctx context.Context, companyID, id string) error {
					t.Fatal("delete must not be called")
					return nil
				},
			}

			svc := NewService(db, repo, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
			err := svc.Delete(context.Background(), uuid.New().String(), uuid.New().String(), uuid.New().String())

			assert.ErrorIs(t, err, paysliperrors.ErrDeleteOnlyDraft)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteDraftSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	deleted := false
	repo := &fakePayslipRepo{
		FindByIDAndCompanyFunc: func(ctx context.Context, companyID, id string) (*Payslip, error) {
			return draftPayslip(StatusDraft), nil
		},
		DeleteFunc: func(ctx context.Context, companyID, id string) error {
			deleted = true
			return nil
		},
	}

	svc := NewService(db, repo, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
	err := svc.Delete(context.Background(), uuid.New().String(), uuid.New().String(), uuid.New().String())

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFoundMapped(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakePayslipRepo{
		FindByIDAndCompanyFunc: func(ctx context.Context, companyID, id string) (*Payslip, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeOutboxRepo{}, newTestResolver(), nil, nil)
	err := svc.Delete(context.Background(), uuid.New().String(), uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
