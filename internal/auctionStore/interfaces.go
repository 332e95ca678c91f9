package auctions

import (
	"context"

	"auction-client/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=auctions

// Backend is the slice of the REST API the store talks to.
type Backend interface {
	CreateAuction(ctx context.Context, req models.CreateAuctionRequest, token string) (models.MessageResponse, error)
	PlaceBid(ctx context.Context, id models.ID, amount float64, token string) (models.MessageResponse, error)
	CancelAuction(ctx context.Context, id models.ID, token string) (models.MessageResponse, error)
	SellerAuctions(ctx context.Context, sellerID models.ID, token string) ([]models.Auction, error)
	ActiveAuctions(ctx context.Context, token string) ([]models.Auction, error)
	PastAuctions(ctx context.Context, token string) ([]models.Auction, error)
	Auction(ctx context.Context, id models.ID, token string) (models.Auction, error)
	Notifications(ctx context.Context, token string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id models.ID, token string) (models.MessageResponse, error)
	ClearNotifications(ctx context.Context, token string) (models.MessageResponse, error)
}

// Identity tells the store who is acting.
type Identity interface {
	CurrentSellerID() (models.ID, bool)
	CurrentUserName() string
}
