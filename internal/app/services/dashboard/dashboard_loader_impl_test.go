package dashboard

import (
	"context"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	contracts.Gateway

	statsFn    func(ctx context.Context) (*models.DashboardStats, error)
	timelineFn func(ctx context.Context) (*models.Timeline, error)
}

func (f *fakeGateway) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return f.statsFn(ctx)
}

func (f *fakeGateway) GetDashboardTimeline(ctx context.Context) (*models.Timeline, error) {
	return f.timelineFn(ctx)
}

func newTestLoader(gw contracts.Gateway) *dashboardLoader {
	return &dashboardLoader{Gateway: gw, Log: zap.NewNop()}
}

func TestLoadMergesBothHalves(t *testing.T) {
	gw := &fakeGateway{
		statsFn: func(ctx context.Context) (*models.DashboardStats, error) {
			return &models.DashboardStats{TotalPredictions: 3, HasData: true}, nil
		},
		timelineFn: func(ctx context.Context) (*models.Timeline, error) {
			return &models.Timeline{TotalPoints: 2}, nil
		},
	}

	dashboard := newTestLoader(gw).Load(context.Background())
	require.NotNil(t, dashboard.Stats)
	require.NotNil(t, dashboard.Timeline)
	assert.Equal(t, 3, dashboard.Stats.TotalPredictions)
	assert.Equal(t, 2, dashboard.Timeline.TotalPoints)
	assert.Empty(t, dashboard.Notices)
}

func TestLoadToleratesStatsFailure(t *testing.T) {
	gw := &fakeGateway{
		statsFn: func(ctx context.Context) (*models.DashboardStats, error) {
			return nil, exceptions.ErrBackendRejected(500, "Request failed", "stats exploded", "dashboard stats")
		},
		timelineFn: func(ctx context.Context) (*models.Timeline, error) {
			return &models.Timeline{TotalPoints: 2}, nil
		},
	}

	dashboard := newTestLoader(gw).Load(context.Background())
	assert.Nil(t, dashboard.Stats)
	require.NotNil(t, dashboard.Timeline, "one failed half never blanks the other")
	require.Len(t, dashboard.Notices, 1)
	assert.Equal(t, "stats exploded", dashboard.Notices[0])
}

func TestLoadToleratesBothFailing(t *testing.T) {
	gw := &fakeGateway{
		statsFn: func(ctx context.Context) (*models.DashboardStats, error) {
			return nil, exceptions.ErrNetworkFailure(nil)
		},
		timelineFn: func(ctx context.Context) (*models.Timeline, error) {
			return nil, exceptions.ErrNetworkFailure(nil)
		},
	}

	dashboard := newTestLoader(gw).Load(context.Background())
	assert.Nil(t, dashboard.Stats)
	assert.Nil(t, dashboard.Timeline)
	assert.Len(t, dashboard.Notices, 2)
}
