package escalation

import (
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultRecentRunsLimit = 20

func (e *Escalator) RecentRuns(limit int) ([]*domain.EscalationRun, error) {
	if limit <= 0 {
		limit = defaultRecentRunsLimit
	}
	runs, err := e.RunRepo.GetRecentEscalationRuns(limit)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load escalation runs: %v", err)
	}
	return runs, nil
}
