package perftests

import (
	"context"
	"fmt"
	"time"

	auctions "auction-client/internal/auctionStore"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/internal/session"
	"auction-client/internal/storage"
)

// instantBackend accepts every request without doing any I/O.
type instantBackend struct{}

func (instantBackend) CreateAuction(context.Context, models.CreateAuctionRequest, string) (models.MessageResponse, error) {
	return models.MessageResponse{Message: "Item created successfully"}, nil
}

func (instantBackend) PlaceBid(context.Context, models.ID, float64, string) (models.MessageResponse, error) {
	return models.MessageResponse{Message: "Bid placed successfully"}, nil
}

func (instantBackend) CancelAuction(context.Context, models.ID, string) (models.MessageResponse, error) {
	return models.MessageResponse{Message: "Auction cancelled"}, nil
}

func (instantBackend) SellerAuctions(context.Context, models.ID, string) ([]models.Auction, error) {
	return nil, nil
}

func (instantBackend) ActiveAuctions(context.Context, string) ([]models.Auction, error) {
	return nil, nil
}

func (instantBackend) PastAuctions(context.Context, string) ([]models.Auction, error) {
	return nil, nil
}

func (instantBackend) Auction(_ context.Context, id models.ID, _ string) (models.Auction, error) {
	return models.Auction{ID: id, Status: models.StatusActive}, nil
}

func (instantBackend) Notifications(context.Context, string) ([]models.Notification, error) {
	return nil, nil
}

func (instantBackend) MarkNotificationRead(context.Context, models.ID, string) (models.MessageResponse, error) {
	return models.MessageResponse{Message: "Notification marked as read"}, nil
}

func (instantBackend) ClearNotifications(context.Context, string) (models.MessageResponse, error) {
	return models.MessageResponse{Message: "Notifications cleared"}, nil
}

const benchToken = "bench-token"

// setupStore creates a store acting as a buyer and seeds it with numAuctions
// active auctions at a current bid of 100.
func setupStore(numAuctions int) *auctions.Store {
	sessions := session.NewStore(storage.NewMemoryStorage())
	if err := sessions.SaveUserSession(benchToken, &models.User{ID: "1", Name: "bench", Email: "bench@x.com"}); err != nil {
		panic(err)
	}

	store := auctions.NewStore(instantBackend{}, repository.NewMemoryRepo(), sessions)
	seed := make([]models.Auction, 0, numAuctions)
	for i := 0; i < numAuctions; i++ {
		seed = append(seed, models.Auction{
			ID:          auctionID(i),
			Title:       fmt.Sprintf("title_%d", i),
			Description: "Load test auction",
			BasePrice:   100,
			CurrentBid:  100,
			EndTime:     time.Now().Add(24 * time.Hour),
			SellerName:  "bench seller",
			Status:      models.StatusActive,
		})
	}
	store.Seed(seed)
	return store
}

func auctionID(i int) models.ID {
	return models.ID(fmt.Sprintf("auction_%d", i))
}
