package contracts

import (
	"context"
	"healthpredict-client/internal/app/models"
	"healthpredict-client/internal/pkg/dto/requests"
	"healthpredict-client/internal/pkg/dto/responses"
)

// CredentialReader is the narrow accessor the gateway uses to pick up the
// bearer token. It deliberately exposes nothing else of the session.
type CredentialReader interface {
	Token() string
}

// Gateway is the single point of contact with the backend. Every method
// returns either a decoded payload or a *exceptions.CustomError carrying
// the normalized {error, message} pair; no transport error ever escapes raw
// and no method panics.
type Gateway interface {
	Register(ctx context.Context, request *requests.Register) (*responses.AuthPayload, error)
	Login(ctx context.Context, request *requests.Login) (*responses.AuthPayload, error)
	Logout(ctx context.Context) error

	GetProfile(ctx context.Context) (*responses.ProfilePayload, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.ProfilePayload, error)
	GetHealthHistory(ctx context.Context) (*models.HealthHistory, error)

	CreateHealthRecord(ctx context.Context, request *requests.CreateHealthRecord) (*responses.HealthRecordPayload, error)
	GetHealthRecords(ctx context.Context, page, perPage int) (*responses.HealthRecordList, error)
	GetHealthRecord(ctx context.Context, recordID int) (*responses.HealthRecordPayload, error)

	CreatePrediction(ctx context.Context, healthRecordID int) (*responses.PredictionPayload, error)
	GetPredictions(ctx context.Context, page, perPage int) (*responses.PredictionList, error)
	GetPrediction(ctx context.Context, predictionID int) (*responses.PredictionDetail, error)

	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GetDashboardTimeline(ctx context.Context) (*models.Timeline, error)
}
