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

func (c *gatewayClient) CreateHealthRecord(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.CreateHealthRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodPost, constvars.EndpointHealthRecord, request, "health record")
	if err != nil {
		return nil, err
	}

	payload := new(responses.HealthRecordPayload)
	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		c.Log.Error("gatewayClient.CreateHealthRecord error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "health record")
	}

	c.Log.Info("gatewayClient.CreateHealthRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordIDKey, payload.HealthRecord.ID),
	)
	return payload, nil
}

func (c *gatewayClient) GetHealthRecords(ctx context.Context, page, perPage int) (*responses.HealthRecordList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetHealthRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	path := fmt.Sprintf(constvars.AppPaginationUrlFormat, constvars.EndpointHealthRecords, page, perPage)
	bodyBytes, err := c.request(ctx, constvars.MethodGet, path, nil, "health records")
	if err != nil {
		return nil, err
	}

	list := new(responses.HealthRecordList)
	if err := json.Unmarshal(bodyBytes, list); err != nil {
		c.Log.Error("gatewayClient.GetHealthRecords error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "health records")
	}

	c.Log.Info("gatewayClient.GetHealthRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(list.HealthRecords)),
	)
	return list, nil
}

func (c *gatewayClient) GetHealthRecord(ctx context.Context, recordID int) (*responses.HealthRecordPayload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.GetHealthRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordIDKey, recordID),
	)

	path := fmt.Sprintf("%s/%d", constvars.EndpointHealthRecord, recordID)
	bodyBytes, err := c.request(ctx, constvars.MethodGet, path, nil, "health record")
	if err != nil {
		return nil, err
	}

	payload := new(responses.HealthRecordPayload)
	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		c.Log.Error("gatewayClient.GetHealthRecord error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "health record")
	}

	c.Log.Info("gatewayClient.GetHealthRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordIDKey, payload.HealthRecord.ID),
	)
	return payload, nil
}
