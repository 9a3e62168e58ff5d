package gateway

import (
	"bytes"
	"context"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/constvars"
	"healthpredict-client/internal/pkg/exceptions"
	"io"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	gatewayClientInstance contracts.Gateway
	onceGatewayClient     sync.Once
)

// gatewayClient is the single chokepoint for backend traffic. It attaches
// the bearer credential through the narrow CredentialReader accessor and
// never touches the session store itself. The HTTP client carries no
// timeout: an in-flight call runs until it settles.
type gatewayClient struct {
	BaseUrl     string
	Credentials contracts.CredentialReader
	HTTPClient  *http.Client
	Log         *zap.Logger
}

func NewGatewayClient(baseUrl string, credentials contracts.CredentialReader, logger *zap.Logger) contracts.Gateway {
	onceGatewayClient.Do(func() {
		client := &gatewayClient{
			BaseUrl:     baseUrl,
			Credentials: credentials,
			HTTPClient:  &http.Client{},
			Log:         logger,
		}
		gatewayClientInstance = client
	})
	return gatewayClientInstance
}

// backendErrorEnvelope is the {error, message} body the backend sends on
// failures.
type backendErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// request performs one backend call and normalizes every possible failure
// into a *exceptions.CustomError: transport failures become the fixed
// "Network error" outcome, non-2xx responses carry the server's own error
// and message when the body is parseable, the status text otherwise.
func (c *gatewayClient) request(ctx context.Context, method, path string, body interface{}, capability string) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var payload io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("gatewayClient.request error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, payload)
	if err != nil {
		c.Log.Error("gatewayClient.request error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if token := c.Credentials.Token(); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemaBearer+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("gatewayClient.request error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrNetworkFailure(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("gatewayClient.request error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, capability)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		envelope := backendErrorEnvelope{}
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil || envelope.Error == "" && envelope.Message == "" {
			envelope.Message = http.StatusText(resp.StatusCode)
		}
		if envelope.Message == "" {
			envelope.Message = http.StatusText(resp.StatusCode)
		}
		backendErr := exceptions.ErrBackendRejected(resp.StatusCode, envelope.Error, envelope.Message, capability)
		c.Log.Error("gatewayClient.request backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorCodeKey, backendErr.ErrorCode),
		)
		return nil, backendErr
	}

	return bodyBytes, nil
}
