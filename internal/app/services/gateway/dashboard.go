package gateway

import (
	"context"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *gatewayClient) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetDashboardStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodGet, constvars.EndpointDashboardStats, nil, "dashboard stats")
	if err != nil {
		return nil, err
	}

	stats := new(models.DashboardStats)
	if err := json.Unmarshal(bodyBytes, stats); err != nil {
		c.Log.Error("gatewayClient.GetDashboardStats error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "dashboard stats")
	}

	c.Log.Info("gatewayClient.GetDashboardStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("has_data", stats.HasData),
	)
	return stats, nil
}

func (c *gatewayClient) GetDashboardTimeline(ctx context.Context) (*models.Timeline, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetDashboardTimeline called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodGet, constvars.EndpointDashboardTimeline, nil, "dashboard timeline")
	if err != nil {
		return nil, err
	}

	timeline := new(models.Timeline)
	if err := json.Unmarshal(bodyBytes, timeline); err != nil {
		c.Log.Error("gatewayClient.GetDashboardTimeline error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "dashboard timeline")
	}

	c.Log.Info("gatewayClient.GetDashboardTimeline succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("total_points", timeline.TotalPoints),
	)
	return timeline, nil
}
