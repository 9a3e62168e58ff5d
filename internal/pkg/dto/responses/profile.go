package responses

import "healthpredict-client/internal/app/models"

type ProfilePayload struct {
	User models.User `json:"user"`
}
