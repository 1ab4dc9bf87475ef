// Package credits ties the plan engine to its collaborators: the preview
// cache, the credit repository, and the metrics counters. The engine
// itself stays pure; everything stateful lives here.
package credits

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"credit-plan-engine/internal/metrics"
	"credit-plan-engine/internal/models"
	"credit-plan-engine/internal/services/cache"
	"credit-plan-engine/internal/services/database"
	"credit-plan-engine/internal/services/planner"
	"credit-plan-engine/internal/utils"
)

// Service handles plan previews and credit submissions.
type Service struct {
	repo  *database.CreditRepository
	cache *cache.PreviewCache
}

// NewService creates a new credits service. Both repo and cache may be
// nil: without a repository submissions are returned but not persisted,
// and without a cache every preview is recomputed.
func NewService(repo *database.CreditRepository, previewCache *cache.PreviewCache) *Service {
	return &Service{repo: repo, cache: previewCache}
}

// Preview computes the plan for a request, serving from the cache when an
// identical request was already computed. Safe to call at high frequency.
func (s *Service) Preview(ctx context.Context, req *models.PlanRequest) (*models.PlanResult, error) {
	key := ""
	if s.cache != nil {
		key = cache.Key(req)
		if key != "" {
			if result, ok := s.cache.Get(ctx, key); ok {
				metrics.PreviewCacheLookups.WithLabelValues("hit").Inc()
				return result, nil
			}
			metrics.PreviewCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	result, err := planner.BuildPlan(req)
	if err != nil {
		metrics.PlanPreviews.WithLabelValues(string(req.InterestKind), "error").Inc()
		return nil, err
	}
	metrics.PlanPreviews.WithLabelValues(string(req.InterestKind), "ok").Inc()

	if s.cache != nil && key != "" {
		if err := s.cache.Set(ctx, key, result); err != nil {
			utils.GetLogger().Warn("failed to cache preview", zap.Error(err))
		}
	}

	return result, nil
}

// Submit resolves the final installment list for a credit and persists it.
// Manual schedules are accepted verbatim; otherwise the plan is recomputed
// from the request.
func (s *Service) Submit(ctx context.Context, req *models.CreditCreate) (*models.Credit, error) {
	installments, err := planner.ResolveSubmission(req.IsManual, req.Installments, &req.Plan)
	if err != nil {
		metrics.PlanSubmissions.WithLabelValues(modeFor(req), "error").Inc()
		return nil, err
	}

	totalPayable := 0.0
	for _, ins := range installments {
		totalPayable += ins.Amount
	}

	result, err := planner.BuildPlan(&req.Plan)
	totalInterest := 0.0
	financed := 0.0
	if err == nil {
		totalInterest = result.TotalInterest
		financed = result.PrincipalFinanced
	}

	credit := &models.Credit{
		ID:                uuid.New().String(),
		Reference:         req.Reference,
		Mode:              models.CreditMode(modeFor(req)),
		InterestKind:      req.Plan.InterestKind,
		PrincipalTotal:    float64(req.Plan.PrincipalTotal),
		PrincipalFinanced: financed,
		TotalInterest:     totalInterest,
		TotalPayable:      utils.Round2(totalPayable),
		Installments:      installments,
		CreatedAt:         time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, credit); err != nil {
			metrics.PlanSubmissions.WithLabelValues(modeFor(req), "error").Inc()
			return nil, fmt.Errorf("failed to persist credit: %w", err)
		}
	}

	metrics.PlanSubmissions.WithLabelValues(modeFor(req), "ok").Inc()
	utils.GetLogger().Info("credit submitted",
		zap.String("credit_id", credit.ID),
		zap.String("mode", string(credit.Mode)),
		zap.Int("installments", len(credit.Installments)),
		zap.Float64("total_payable", credit.TotalPayable),
	)

	return credit, nil
}

// ListRecent returns the most recently submitted credits.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*models.Credit, error) {
	if s.repo == nil {
		return []*models.Credit{}, nil
	}
	return s.repo.ListRecent(ctx, limit)
}

func modeFor(req *models.CreditCreate) string {
	if req.IsManual && len(req.Installments) > 0 {
		return string(models.CreditModeManual)
	}
	return string(models.CreditModeComputed)
}
