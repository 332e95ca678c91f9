package utils

import (
	"auction-client/internal/models"

	"github.com/google/uuid"
)

// GenerateID returns a new identifier for records created on the client
// (notifications, admin auctions) before the backend ever sees them.
func GenerateID() models.ID {
	return models.ID(uuid.NewString())
}
