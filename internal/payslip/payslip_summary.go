package payslip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paysliperrors "github.com/madhavny/mavi-hrms-sub002/internal/payslip/errors"

	"go.uber.org/zap"
)

const summaryCacheTTL = 60 * time.Second

// Summary aggregates a period's payslips: count, totals, and a status
// histogram. The result is cached briefly in Redis and concurrent cache
// misses are collapsed through singleflight.
func (s *service) Summary(
	ctx context.Context,
	companyID string,
	month, year int,
) (PayrollSummaryResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return PayrollSummaryResponse{}, paysliperrors.ErrInvalidPeriod
	}

	cacheKey := fmt.Sprintf("payroll_summary:%s:%d:%d", companyID, year, month)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp PayrollSummaryResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &resp); unmarshalErr == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.summaryGroup.Do(cacheKey, func() (any, error) {
		row, statuses, err := s.repo.SummaryByPeriod(ctx, companyID, month, year)
		if err != nil {
			return nil, err
		}

		breakdown := make(map[string]int, len(statuses))
		for _, sc := range statuses {
			breakdown[sc.Status] = sc.Count
		}

		resp := PayrollSummaryResponse{
			Month:           month,
			Year:            year,
			PayslipCount:    row.PayslipCount,
			GrossEarnings:   row.GrossEarnings.StringFixed(2),
			TotalDeductions: row.TotalDeductions.StringFixed(2),
			NetSalary:       row.NetSalary.StringFixed(2),
			StatusBreakdown: breakdown,
		}

		if s.redisClient != nil {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				if setErr := s.redisClient.Set(ctx, cacheKey, payload, summaryCacheTTL).Err(); setErr != nil {
					s.logger(ctx).Warn("summary cache write failed",
						zap.String("key", cacheKey),
						zap.Error(setErr),
					)
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return PayrollSummaryResponse{}, err
	}

	return v.(PayrollSummaryResponse), nil
}
