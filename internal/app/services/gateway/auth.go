package gateway

import (
	"context"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
	"healthpredict-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *gatewayClient) Register(ctx context.Context, request *requests.Register) (*responses.AuthPayload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodPost, constvars.EndpointAuthRegister, request, "register")
	if err != nil {
		return nil, err
	}

	payload := new(responses.AuthPayload)
	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		c.Log.Error("gatewayClient.Register error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "register")
	}

	c.Log.Info("gatewayClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, payload.User.ID),
	)
	return payload, nil
}

func (c *gatewayClient) Login(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bodyBytes, err := c.request(ctx, constvars.MethodPost, constvars.EndpointAuthLogin, request, "login")
	if err != nil {
		return nil, err
	}

	payload := new(responses.AuthPayload)
	if err := json.Unmarshal(bodyBytes, payload); err != nil {
		c.Log.Error("gatewayClient.Login error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "login")
	}

	c.Log.Info("gatewayClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, payload.User.ID),
	)
	return payload, nil
}

func (c *gatewayClient) Logout(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("gatewayClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.request(ctx, constvars.MethodPost, constvars.EndpointAuthLogout, nil, "logout")
	if err != nil {
		return err
	}

	c.Log.Info("gatewayClient.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
