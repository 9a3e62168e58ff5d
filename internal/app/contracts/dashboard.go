package contracts

import (
	"context"
	"healthpredict-client/internal/pkg/dto/responses"
)

// DashboardLoader fans out the two independent dashboard reads and merges
// whatever settled successfully; a failure in one half never blanks the
// other.
type DashboardLoader interface {
	Load(ctx context.Context) *responses.Dashboard
}
