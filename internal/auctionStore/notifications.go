package auctions

import (
	"context"
	"fmt"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
	"auction-client/internal/obs"
	"auction-client/utils"
)

// notify stamps n and puts it at the head of the list, unread.
func (s *Store) notify(n models.Notification) {
	n.ID = s.newID()
	n.Timestamp = s.now()
	n.Read = false
	s.cache.PrependNotification(n)
}

func newAuctionNotification(a models.Auction) models.Notification {
	return models.Notification{
		Type:    models.NotificationNewAuction,
		Message: "New auction created: " + a.Title,
		Details: models.Details{
			"title":     a.Title,
			"basePrice": utils.FormatPrice(a.BasePrice),
			"seller":    a.SellerName,
			"endTime":   utils.FormatDateTime(a.EndTime),
		},
	}
}

// FetchNotifications replaces the local notifications with the backend's.
// A response that arrives after a newer one has been applied is dropped.
func (s *Store) FetchNotifications(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("store: fetch notifications: %w", auctionerrors.ErrNotAuthenticated)
	}

	s.pollMu.Lock()
	s.pollIssued++
	seq := s.pollIssued
	s.pollMu.Unlock()

	ns, err := s.backend.Notifications(ctx, token)
	if err != nil {
		return fmt.Errorf("store: fetch notifications: %w: %w", auctionerrors.ErrNotificationsFailed, err)
	}

	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if seq < s.pollApplied {
		obs.StalePollDiscarded()
		utils.Debug("store: discarding stale notifications", map[string]any{"seq": seq, "applied": s.pollApplied})
		return nil
	}
	s.pollApplied = seq
	s.cache.ReplaceNotifications(ns)
	return nil
}

// MarkRead marks one notification read on the backend, then locally.
func (s *Store) MarkRead(ctx context.Context, id models.ID, token string) error {
	if token == "" {
		return fmt.Errorf("store: mark notification %s read: %w", id, auctionerrors.ErrNotAuthenticated)
	}
	if _, err := s.backend.MarkNotificationRead(ctx, id, token); err != nil {
		utils.Error("store: mark notification read failed", map[string]any{"notificationID": id.String(), "error": err.Error()})
		return fmt.Errorf("store: mark notification %s read: %w: %w", id, auctionerrors.ErrNotificationsFailed, err)
	}
	s.cache.MarkNotificationRead(id)
	return nil
}

// ClearAll deletes every notification on the backend, then locally.
func (s *Store) ClearAll(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("store: clear notifications: %w", auctionerrors.ErrNotAuthenticated)
	}
	if _, err := s.backend.ClearNotifications(ctx, token); err != nil {
		utils.Error("store: clear notifications failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("store: clear notifications: %w: %w", auctionerrors.ErrNotificationsFailed, err)
	}
	s.cache.ClearNotifications()
	return nil
}

// Notifications returns the notifications, most recent first.
func (s *Store) Notifications() []models.Notification {
	return s.cache.Notifications()
}

func (s *Store) UnreadCount() int {
	return s.cache.UnreadCount()
}
