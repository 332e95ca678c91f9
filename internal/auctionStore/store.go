package auctions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/forms"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/utils"

	"golang.org/x/sync/errgroup"
)

// createdMarker must appear in the backend's create response message.
const createdMarker = "item created"

// Store holds the auction and notification state shared by every screen.
type Store struct {
	backend  Backend
	cache    repository.Cache
	identity Identity
	now      func() time.Time
	newID    func() models.ID

	pollMu      sync.Mutex
	pollIssued  uint64
	pollApplied uint64
}

// Option customises a Store
type Option func(*Store)

// WithClock overrides the time source used for notifications.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how local notification IDs are made.
func WithIDGenerator(newID func() models.ID) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates a Store instance
func NewStore(backend Backend, cache repository.Cache, identity Identity, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		cache:    cache,
		identity: identity,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    utils.GenerateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed replaces the cached auctions, e.g. with demo data.
func (s *Store) Seed(auctions []models.Auction) {
	s.cache.ReplaceAuctions(auctions)
}

// AddNewAuction puts a locally created auction at the head of the active
// list and announces it. Calling it twice adds the auction twice.
func (s *Store) AddNewAuction(auction models.Auction) {
	if auction.Status == "" {
		auction.Status = models.StatusActive
	}
	s.cache.PrependAuction(auction)
	s.notify(newAuctionNotification(auction))
}

// CreateAuctionAndRefresh submits a new auction and reloads the seller's
// auctions. The cache is left untouched on any failure.
func (s *Store) CreateAuctionAndRefresh(ctx context.Context, req models.CreateAuctionRequest, token string) error {
	resp, err := s.backend.CreateAuction(ctx, req, token)
	if err != nil {
		utils.Error("store: create auction failed", map[string]any{"name": req.Name, "error": err.Error()})
		return fmt.Errorf("store: create auction %q: %w: %w", req.Name, auctionerrors.ErrCreateAuctionFailed, err)
	}
	if !strings.Contains(strings.ToLower(resp.Message), createdMarker) {
		utils.Error("store: unexpected create response", map[string]any{"name": req.Name, "message": resp.Message})
		return fmt.Errorf("store: create auction %q: %w - unexpected response %q", req.Name, auctionerrors.ErrCreateAuctionFailed, resp.Message)
	}

	sellerID, ok := s.identity.CurrentSellerID()
	if !ok {
		utils.Warn("store: auction created without seller identity, skipping reload", map[string]any{"name": req.Name})
		return nil
	}
	auctions, err := s.backend.SellerAuctions(ctx, sellerID, token)
	if err != nil {
		return fmt.Errorf("store: reload after create: %w: %w", auctionerrors.ErrCreateAuctionFailed, err)
	}
	s.cache.ReplaceAuctions(auctions)

	utils.Info("store: auction created", map[string]any{"name": req.Name, "seller": sellerID.String()})
	return nil
}

// PlaceBidAndRefresh validates and submits a bid. Amounts that do not beat
// the cached current bid are rejected without contacting the backend.
func (s *Store) PlaceBidAndRefresh(ctx context.Context, auctionID models.ID, amount float64, token string) error {
	auction, err := s.cache.Auction(auctionID)
	if err != nil {
		return fmt.Errorf("store: place bid: %w", err)
	}
	if err := forms.ValidateBidAmount(amount, auction.CurrentBid); err != nil {
		return err
	}

	if _, err := s.backend.PlaceBid(ctx, auctionID, amount, token); err != nil {
		utils.Error("store: place bid failed", map[string]any{"auctionID": auctionID.String(), "amount": amount, "error": err.Error()})
		return fmt.Errorf("store: place bid on %s: %w: %w", auctionID, auctionerrors.ErrBidFailed, err)
	}

	s.reloadForSeller(ctx, token, "bid")

	s.notify(models.Notification{
		Type:    models.NotificationNewBid,
		Message: fmt.Sprintf("New bid of %s placed", utils.FormatPrice(amount)),
		Details: models.Details{
			"title":     auction.Title,
			"bidAmount": utils.FormatPrice(amount),
			"bidder":    s.identity.CurrentUserName(),
		},
	})
	utils.Info("store: bid placed", map[string]any{"auctionID": auctionID.String(), "amount": amount})
	return nil
}

// CancelAuctionAndRefresh cancels an auction. On success the auction is
// marked cancelled locally even if the reload does not include it.
func (s *Store) CancelAuctionAndRefresh(ctx context.Context, auction models.Auction, token string) error {
	if _, err := s.backend.CancelAuction(ctx, auction.ID, token); err != nil {
		utils.Error("store: cancel auction failed", map[string]any{"auctionID": auction.ID.String(), "error": err.Error()})
		return fmt.Errorf("store: cancel auction %s: %w: %w", auction.ID, auctionerrors.ErrCancelFailed, err)
	}

	s.reloadForSeller(ctx, token, "cancel")

	if err := s.cache.SetStatus(auction.ID, models.StatusCancelled); err != nil && !errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return fmt.Errorf("store: mark %s cancelled: %w", auction.ID, err)
	}

	s.notify(models.Notification{
		Type:    models.NotificationAuctionCancelled,
		Message: fmt.Sprintf("Auction %q has been cancelled", auction.Title),
		Details: models.Details{
			"title":    auction.Title,
			"finalBid": utils.FormatPrice(auction.CurrentBid),
			"seller":   auction.SellerName,
		},
	})
	utils.Info("store: auction cancelled", map[string]any{"auctionID": auction.ID.String()})
	return nil
}

// MoveToPastAuctions ends an auction locally and announces the winner.
func (s *Store) MoveToPastAuctions(auction models.Auction) {
	auction.Status = models.StatusEnded
	s.cache.MoveToFront(auction)

	s.notify(models.Notification{
		Type:    models.NotificationAuctionEnd,
		Message: "Auction ended: " + auction.Title,
		Details: models.Details{
			"title":    auction.Title,
			"finalBid": utils.FormatPrice(auction.CurrentBid),
			"winner":   auction.LastBidder(),
			"seller":   auction.SellerName,
		},
	})
}

// RefreshSellerAuctions loads the current seller's auctions. Invalid data
// empties the cache.
func (s *Store) RefreshSellerAuctions(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("store: refresh seller auctions: %w", auctionerrors.ErrNotAuthenticated)
	}
	sellerID, ok := s.identity.CurrentSellerID()
	if !ok {
		return fmt.Errorf("store: refresh seller auctions: %w", auctionerrors.ErrNoSession)
	}

	auctions, err := s.backend.SellerAuctions(ctx, sellerID, token)
	if err != nil {
		s.cache.ReplaceAuctions(nil)
		utils.Error("store: received invalid auctions data", map[string]any{"seller": sellerID.String(), "error": err.Error()})
		return fmt.Errorf("store: refresh seller %s: %w: %w", sellerID, auctionerrors.ErrRefreshFailed, err)
	}
	s.cache.ReplaceAuctions(auctions)
	return nil
}

// RefreshListings loads the public active and past listings concurrently
// and replaces the cache with them.
func (s *Store) RefreshListings(ctx context.Context, token string) error {
	var active, past []models.Auction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = s.backend.ActiveAuctions(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		past, err = s.backend.PastAuctions(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.Error("store: refresh listings failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("store: refresh listings: %w: %w", auctionerrors.ErrRefreshFailed, err)
	}

	all := make([]models.Auction, 0, len(active)+len(past))
	for _, a := range active {
		if a.Status == "" {
			a.Status = models.StatusActive
		}
		all = append(all, a)
	}
	for _, a := range past {
		if a.Status == "" {
			a.Status = models.StatusEnded
		}
		all = append(all, a)
	}
	s.cache.ReplaceAuctions(all)
	return nil
}

// reloadForSeller re-fetches the seller's auctions when a seller identity
// is stored. Failures are logged; the mutation that triggered the reload
// already succeeded.
func (s *Store) reloadForSeller(ctx context.Context, token, reason string) {
	sellerID, ok := s.identity.CurrentSellerID()
	if !ok || token == "" {
		return
	}
	auctions, err := s.backend.SellerAuctions(ctx, sellerID, token)
	if err != nil {
		utils.Warn("store: reload seller auctions failed", map[string]any{"reason": reason, "seller": sellerID.String(), "error": err.Error()})
		return
	}
	s.cache.ReplaceAuctions(auctions)
}

// Partitions returns every cached auction grouped by status.
func (s *Store) Partitions() models.Partitions {
	return s.cache.Partitions()
}

// SellerPartitions is Partitions restricted to one seller.
func (s *Store) SellerPartitions(sellerName string) models.Partitions {
	return repository.Partition(s.cache.AuctionsBySeller(sellerName))
}

// LoadAuction fetches one auction for the detail screen and updates the
// cached copy with it. The cache is left untouched on failure.
func (s *Store) LoadAuction(ctx context.Context, id models.ID, token string) (models.Auction, error) {
	auction, err := s.backend.Auction(ctx, id, token)
	if err != nil {
		utils.Warn("store: load auction failed", map[string]any{"auctionID": id.String(), "error": err.Error()})
		return models.Auction{}, fmt.Errorf("store: load auction %s: %w", id, err)
	}
	if auction.ID == "" {
		auction.ID = id
	}
	if auction.Status == "" {
		auction.Status = models.StatusActive
	}
	s.cache.UpsertAuction(auction)
	return auction, nil
}

// Auction returns one cached auction.
func (s *Store) Auction(id models.ID) (models.Auction, error) {
	return s.cache.Auction(id)
}
