package gateway

import (
	"context"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *gatewayClient) GetProfile(ctx context.Context) (*responses.ProfilePayload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodGet, constvars.EndpointProfile, nil, "profile")
	if err != nil {
		return nil, err
	}

	payload := new(responses.ProfilePayload)
	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		c.Log.Error("gatewayClient.GetProfile error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "profile")
	}

	c.Log.Info("gatewayClient.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, payload.User.ID),
	)
	return payload, nil
}

func (c *gatewayClient) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.ProfilePayload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodPut, constvars.EndpointProfile, request, "profile")
	if err != nil {
		return nil, err
	}

	payload := new(responses.ProfilePayload)
	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		c.Log.Error("gatewayClient.UpdateProfile error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "profile")
	}

	c.Log.Info("gatewayClient.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, payload.User.ID),
	)
	return payload, nil
}

func (c *gatewayClient) GetHealthHistory(ctx context.Context) (*models.HealthHistory, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetHealthHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodGet, constvars.EndpointProfileHistory, nil, "health history")
	if err != nil {
		return nil, err
	}

	history := new(models.HealthHistory)
	if err := json.Unmarshal(bodyBytes, history); err != nil {
		c.Log.Error("gatewayClient.GetHealthHistory error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "health history")
	}

	c.Log.Info("gatewayClient.GetHealthHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return history, nil
}
