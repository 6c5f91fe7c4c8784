package dashsvc

import (
	"context"
	"sync"

	"github.com/algobasket/hissabbook-admin/model"
)

const queueLimit = 10

type API interface {
	DashboardStats(ctx context.Context, token string) (*model.DashboardStats, error)
	PayoutQueue(ctx context.Context, token, status string, limit int) ([]model.QueueItem, error)
}

// Overview is the dashboard's two independent fetches. Either half may be
// absent with its Err set; the page renders whatever resolved.
type Overview struct {
	Stats    *model.DashboardStats
	Queue    []model.QueueItem
	StatsErr error
	QueueErr error
}

type Service interface {
	Overview(ctx context.Context, token string) (*Overview, error)
}

type service struct{ api API }

func New(api API) Service { return &service{api: api} }

func (s *service) Overview(ctx context.Context, token string) (*Overview, error) {
	var (
		ov Overview
		wg sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		ov.Stats, ov.StatsErr = s.api.DashboardStats(ctx, token)
	}()
	go func() {
		defer wg.Done()
		ov.Queue, ov.QueueErr = s.api.PayoutQueue(ctx, token, "pending", queueLimit)
	}()
	wg.Wait()

	if ov.StatsErr != nil && ov.QueueErr != nil {
		return nil, ov.StatsErr
	}
	return &ov, nil
}
