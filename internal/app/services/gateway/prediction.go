package gateway

import (
	"context"
	"fmt"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *gatewayClient) CreatePrediction(ctx context.Context, healthRecordID int) (*responses.PredictionPayload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.CreatePrediction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordIDKey, healthRecordID),
	)

	request := &requests.CreatePrediction{HealthRecordID: healthRecordID}
	bodyBytes, err := c.request(ctx, constvars.MethodPost, constvars.EndpointPredict, request, "prediction")
	if err != nil {
		return nil, err
	}

	payload := new(responses.PredictionPayload)
	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		c.Log.Error("gatewayClient.CreatePrediction error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "prediction")
	}

	c.Log.Info("gatewayClient.CreatePrediction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPredictionIDKey, payload.Prediction.ID),
	)
	return payload, nil
}

func (c *gatewayClient) GetPredictions(ctx context.Context, page, perPage int) (*responses.PredictionList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetPredictions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	path := fmt.Sprintf(constvars.AppPaginationUrlFormat, constvars.EndpointPredictions, page, perPage)
	bodyBytes, err := c.request(ctx, constvars.MethodGet, path, nil, "predictions")
	if err != nil {
		return nil, err
	}

	list := new(responses.PredictionList)
	if err := json.Unmarshal(bodyBytes, list); err != nil {
		c.Log.Error("gatewayClient.GetPredictions error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "predictions")
	}

	c.Log.Info("gatewayClient.GetPredictions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(list.Predictions)),
	)
	return list, nil
}

func (c *gatewayClient) GetPrediction(ctx context.Context, predictionID int) (*responses.PredictionDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetPrediction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPredictionIDKey, predictionID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointPrediction, predictionID)
	bodyBytes, err := c.request(ctx, constvars.MethodGet, path, nil, "prediction")
	if err != nil {
		return nil, err
	}

	detail := new(responses.PredictionDetail)
	if err := json.Unmarshal(bodyBytes, detail); err != nil {
		c.Log.Error("gatewayClient.GetPrediction error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "prediction")
	}

	c.Log.Info("gatewayClient.GetPrediction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPredictionIDKey, detail.Prediction.ID),
	)
	return detail, nil
}
