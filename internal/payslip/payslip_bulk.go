package payslip

import (
	"context"
	"errors"
	"strings"
	"sync"

	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const bulkGenerateConcurrency = 8

type bulkOutcome struct {
	index   int
	success *BulkGenerateSuccess
	skipped *BulkGenerateSkipped
	failed  *BulkGenerateFailure
}

// BulkGenerate fans Generate out over every employee with an active
// structure. A single employee failing never aborts the batch; outcomes
// are aggregated in the employee selection order so concurrent runs
// produce identical reports.
func (s *service) BulkGenerate(
	ctx context.Context,
	companyID, actorID string,
	req BulkGeneratePayslipsRequest,
) (BulkGeneratePayslipsResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return BulkGeneratePayslipsResponse{}, paysliperrors.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.ListWithActiveStructure(ctx, companyID, req.EmployeeIDs)
	if err != nil {
		return BulkGeneratePayslipsResponse{}, err
	}

	log := s.logger(ctx)
	log.Info("bulk payslip generation started",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("employees", len(employees)),
	)

	outcomes := make([]bulkOutcome, len(employees))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkGenerateConcurrency)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			employeeID := emp.ID.String()
			resp, genErr := s.Generate(gctx, companyID, actorID, GeneratePayslipRequest{
				EmployeeID: employeeID,
				Month:      req.Month,
				Year:       req.Year,
			})

			outcome := bulkOutcome{index: i}
			switch {
			case genErr == nil:
				outcome.success = &BulkGenerateSuccess{
					EmployeeID: employeeID,
					PayslipID:  resp.ID,
				}
			case errors.Is(genErr, paysliperrors.ErrPayslipExists):
				outcome.skipped = &BulkGenerateSkipped{
					EmployeeID: employeeID,
					PayslipID:  existingIDFromDetail(genErr),
					Reason:     "payslip already exists",
				}
			default:
				log.Warn("bulk payslip generation: employee failed",
					zap.String("employee_id", employeeID),
					zap.Error(genErr),
				)
				outcome.failed = &BulkGenerateFailure{
					EmployeeID: employeeID,
					Error:      genErr.Error(),
				}
			}

			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()
			return nil
		})
	}

	// Go funcs always return nil; the group is only used for SetLimit
	// and context plumbing.
	_ = g.Wait()

	result := BulkGeneratePayslipsResponse{
		Month:      req.Month,
		Year:       req.Year,
		Successful: []BulkGenerateSuccess{},
		Skipped:    []BulkGenerateSkipped{},
		Failed:     []BulkGenerateFailure{},
	}
	for _, outcome := range outcomes {
		switch {
		case outcome.success != nil:
			result.Successful = append(result.Successful, *outcome.success)
		case outcome.skipped != nil:
			result.Skipped = append(result.Skipped, *outcome.skipped)
		case outcome.failed != nil:
			result.Failed = append(result.Failed, *outcome.failed)
		}
	}
	result.SuccessfulCount = len(result.Successful)
	result.SkippedCount = len(result.Skipped)
	result.FailedCount = len(result.Failed)

	log.Info("bulk payslip generation finished",
		zap.Int("successful", result.SuccessfulCount),
		zap.Int("skipped", result.SkippedCount),
		zap.Int("failed", result.FailedCount),
	)

	return result, nil
}

// existingIDFromDetail pulls the existing payslip id out of the detail
// suffix that Generate attaches to ErrPayslipExists.
func existingIDFromDetail(err error) string {
	msg := err.Error()
	idx := strings.LastIndex(msg, ": ")
	if idx < 0 {
		return ""
	}
	detail := msg[idx+2:]
	if _, parseErr := uuid.Parse(detail); parseErr != nil {
		return ""
	}
	return detail
}
