package payslip

import (
	"context"
	"errors"

	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"

	"github.com/madhavny/mavi-hrms-sub002/internal/audit"
	"github.com/madhavny/mavi-hrms-sub002/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateStatus moves a payslip through the lifecycle state machine.
// PROCESSED stamps processed_at, PAID stamps paid_at and paid_by. PAID
// and CANCELLED are terminal.
func (s *service) UpdateStatus(
	ctx context.Context,
	companyID, actorID, id string,
	req UpdatePayslipStatusRequest,
) (PayslipResponse, error) {
	if !ValidStatus(req.Status) {
		return PayslipResponse{}, paysliperrors.ErrInvalidStatus
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayslipResponse{}, apperror.ErrUnauthorized.WithDetail("malformed employee_id claim")
	}

	var payslip *Payslip
	var oldValue PayslipResponse

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		payslip, err = qtx.FindByIDAndCompany(ctx, companyID, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return paysliperrors.ErrPayslipNotFound
		}
		if err != nil {
			return err
		}
		oldValue = mapPayslipToResponse(*payslip)

		if !CanTransition(payslip.Status, req.Status) {
			return paysliperrors.ErrInvalidStatusTransition.WithDetail(
				payslip.Status + " -> " + req.Status,
			)
		}

		now := s.now()
		payslip.Status = req.Status
		switch req.Status {
		case StatusProcessed:
			payslip.ProcessedAt = &now
		case StatusPaid:
			payslip.PaidAt = &now
			payslip.PaidBy = &actorUUID
		}

		return qtx.Update(ctx, payslip)
	})
	if err != nil {
		return PayslipResponse{}, err
	}

	resp := mapPayslipToResponse(*payslip)
	s.recorder.Record(ctx, audit.Event{
		Action:    "PAYSLIP_STATUS_UPDATED",
		Entity:    "payslip",
		EntityID:  resp.ID,
		CompanyID: companyID,
		ActorID:   actorID,
		OldValue:  oldValue,
		NewValue:  resp,
	})

	return resp, nil
}

// BulkUpdateStatus applies the single-transition rule per id. Failures
// are reported per payslip; the rest of the batch proceeds.
func (s *service) BulkUpdateStatus(
	ctx context.Context,
	companyID, actorID string,
	req BulkUpdatePayslipStatusRequest,
) (BulkUpdatePayslipStatusResponse, error) {
	if !ValidStatus(req.Status) {
		return BulkUpdatePayslipStatusResponse{}, paysliperrors.ErrInvalidStatus
	}

	result := BulkUpdatePayslipStatusResponse{
		Failed: []BulkUpdateStatusFailure{},
	}
	for _, id := range req.IDs {
		if _, err := s.UpdateStatus(ctx, companyID, actorID, id, UpdatePayslipStatusRequest{Status: req.Status}); err != nil {
			result.Failed = append(result.Failed, BulkUpdateStatusFailure{
				ID:    id,
				Error: err.Error(),
			})
			continue
		}
		result.UpdatedCount++
	}

	return result, nil
}

// Delete removes a payslip and its component snapshot. Only DRAFT
// payslips can go; anything further along is payroll history.
func (s *service) Delete(
	ctx context.Context,
	companyID, actorID, id string,
) error {
	var payslip *Payslip

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		payslip, err = qtx.FindByIDAndCompany(ctx, companyID, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return paysliperrors.ErrPayslipNotFound
		}
		if err != nil {
			return err
		}

		if payslip.Status != StatusDraft {
			return paysliperrors.ErrDeleteOnlyDraft.WithDetail("status is " + payslip.Status)
		}

		return qtx.Delete(ctx, companyID, id)
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Event{
		Action:    "PAYSLIP_DELETED",
		Entity:    "payslip",
		EntityID:  id,
		CompanyID: companyID,
		ActorID:   actorID,
		OldValue:  mapPayslipToResponse(*payslip),
	})

	return nil
}
