package dashboard

import (
	"context"
	"errors"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type dashboardLoader struct {
	Gateway contracts.Gateway
	Log     *zap.Logger
}

var (
	dashboardLoaderInstance *dashboardLoader
	onceDashboardLoader     sync.Once
)

func NewDashboardLoader(gateway contracts.Gateway, logger *zap.Logger) contracts.DashboardLoader {
	onceDashboardLoader.Do(func() {
		dashboardLoaderInstance = &dashboardLoader{
			Gateway: gateway,
			Log:     logger,
		}
	})
	return dashboardLoaderInstance
}

// Load fetches stats and timeline concurrently and merges whatever came
// back. A failed half becomes a notice instead of failing the whole view, so
// the dashboard renders with as much data as the backend could serve.
func (d *dashboardLoader) Load(ctx context.Context) *responses.Dashboard {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	d.Log.Info("dashboardLoader.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		wg          sync.WaitGroup
		stats       *models.DashboardStats
		timeline    *models.Timeline
		statsErr    error
		timelineErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = d.Gateway.GetDashboardStats(ctx)
	}()
	go func() {
		defer wg.Done()
		timeline, timelineErr = d.Gateway.GetDashboardTimeline(ctx)
	}()
	wg.Wait()

	merged := &responses.Dashboard{Stats: stats, Timeline: timeline}
	if statsErr != nil {
		d.Log.Warn("dashboardLoader.Load stats fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statsErr),
		)
		merged.Stats = nil
		merged.Notices = append(merged.Notices, noticeFor(statsErr))
	}
	if timelineErr != nil {
		d.Log.Warn("dashboardLoader.Load timeline fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(timelineErr),
		)
		merged.Timeline = nil
		merged.Notices = append(merged.Notices, noticeFor(timelineErr))
	}

	d.Log.Info("dashboardLoader.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("stats_present", merged.Stats != nil),
		zap.Bool("timeline_present", merged.Timeline != nil),
	)
	return merged
}

func noticeFor(err error) string {
	var custom *exceptions.CustomError
	if errors.As(err, &custom) {
		return custom.ClientMessage
	}
	return err.Error()
}
