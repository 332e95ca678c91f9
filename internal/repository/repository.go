package repository

import (
	"fmt"
	"sync"

	"auction-client/internal/auctionerrors"
	model "auction-client/internal/models"
)

// Cache defines the local auction and notification state behind the store
type Cache interface {
	ReplaceAuctions(auctions []model.Auction)
	PrependAuction(auction model.Auction)
	MoveToFront(auction model.Auction)
	UpsertAuction(auction model.Auction)
	SetStatus(id model.ID, status model.AuctionStatus) error
	Auction(id model.ID) (model.Auction, error)
	Auctions() []model.Auction
	AuctionsBySeller(sellerName string) []model.Auction
	Partitions() model.Partitions

	PrependNotification(n model.Notification)
	ReplaceNotifications(ns []model.Notification)
	MarkNotificationRead(id model.ID) bool
	ClearNotifications()
	Notifications() []model.Notification
	UnreadCount() int
}

// MemoryRepo is a concurrency-safe in-memory implementation of Cache.
// Auctions live in one ordered slice, head first; partitions are derived
// from each auction's status on read.
type MemoryRepo struct {
	mu            sync.RWMutex
	auctions      []model.Auction
	notifications []model.Notification
}

// NewMemoryRepo creates an empty cache
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:      []model.Auction{},
		notifications: []model.Notification{},
	}
}

// ReplaceAuctions swaps the whole auction list, keeping the given order
func (r *MemoryRepo) ReplaceAuctions(auctions []model.Auction) {
	next := make([]model.Auction, 0, len(auctions))
	for _, a := range auctions {
		next = append(next, a.Clone())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions = next
}

// PrependAuction inserts an auction at the head
func (r *MemoryRepo) PrependAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions = append([]model.Auction{auction.Clone()}, r.auctions...)
}

// MoveToFront removes any auction with the same id and inserts this one at the head
func (r *MemoryRepo) MoveToFront(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]model.Auction, 0, len(r.auctions)+1)
	next = append(next, auction.Clone())
	for _, a := range r.auctions {
		if a.ID != auction.ID {
			next = append(next, a)
		}
	}
	r.auctions = next
}

// UpsertAuction replaces the cached auction with the same id in place, or
// appends it when none is cached
func (r *MemoryRepo) UpsertAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.auctions {
		if r.auctions[i].ID == auction.ID {
			r.auctions[i] = auction.Clone()
			return
		}
	}
	r.auctions = append(r.auctions, auction.Clone())
}

// SetStatus changes the status of a cached auction
func (r *MemoryRepo) SetStatus(id model.ID, status model.AuctionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.auctions {
		if r.auctions[i].ID == id {
			r.auctions[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("set status of auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
}

// Auction returns a copy of the auction with the given id
func (r *MemoryRepo) Auction(id model.ID) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.auctions {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
}

// Auctions returns every cached auction in cache order
func (r *MemoryRepo) Auctions() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAuctions(r.auctions, nil)
}

// AuctionsBySeller returns the auctions whose seller name matches
func (r *MemoryRepo) AuctionsBySeller(sellerName string) []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAuctions(r.auctions, func(a model.Auction) bool { return a.SellerName == sellerName })
}

// Partitions splits the cache into active, past and cancelled auctions
func (r *MemoryRepo) Partitions() model.Partitions {
	return Partition(r.Auctions())
}

// Partition groups auctions by status, keeping their relative order.
// Statuses other than past or cancelled count as active.
func Partition(auctions []model.Auction) model.Partitions {
	p := model.Partitions{
		Active:    []model.Auction{},
		Past:      []model.Auction{},
		Cancelled: []model.Auction{},
	}
	for _, a := range auctions {
		switch {
		case a.Status == model.StatusCancelled:
			p.Cancelled = append(p.Cancelled, a)
		case a.Status.IsPast():
			p.Past = append(p.Past, a)
		default:
			p.Active = append(p.Active, a)
		}
	}
	return p
}

// PrependNotification inserts a notification at the head
func (r *MemoryRepo) PrependNotification(n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append([]model.Notification{cloneNotification(n)}, r.notifications...)
}

// ReplaceNotifications swaps the whole notification list
func (r *MemoryRepo) ReplaceNotifications(ns []model.Notification) {
	next := make([]model.Notification, 0, len(ns))
	for _, n := range ns {
		next = append(next, cloneNotification(n))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = next
}

// MarkNotificationRead flags a notification as read. It reports whether
// the id was found; marking twice is harmless.
func (r *MemoryRepo) MarkNotificationRead(id model.ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return true
		}
	}
	return false
}

// ClearNotifications empties the notification list
func (r *MemoryRepo) ClearNotifications() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = []model.Notification{}
}

// Notifications returns the notifications, head first
func (r *MemoryRepo) Notifications() []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		out = append(out, cloneNotification(n))
	}
	return out
}

// UnreadCount counts notifications not yet marked read
func (r *MemoryRepo) UnreadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func cloneAuctions(auctions []model.Auction, keep func(model.Auction) bool) []model.Auction {
	out := make([]model.Auction, 0, len(auctions))
	for _, a := range auctions {
		if keep == nil || keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}

func cloneNotification(n model.Notification) model.Notification {
	if n.Details != nil {
		details := make(model.Details, len(n.Details))
		for k, v := range n.Details {
			details[k] = v
		}
		n.Details = details
	}
	return n
}
