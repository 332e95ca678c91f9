package helpers

import (
	"encoding/json"
	"strings"
	"time"

	"auction-client/internal/forms"
	"auction-client/internal/models"
	"auction-client/utils"
)

// Request DTOs

// PlaceBidRequest accepts the amount as a JSON number or numeric string.
type PlaceBidRequest struct {
	Amount json.Number `json:"amount"`
}

// Response DTOs

type BidView struct {
	UserName    string    `json:"userName"`
	Amount      float64   `json:"amount"`
	AmountLabel string    `json:"amountLabel"`
	Timestamp   time.Time `json:"timestamp"`
	TimeLabel   string    `json:"timeLabel"`
}

type AuctionView struct {
	ID              models.ID            `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	BasePrice       float64              `json:"basePrice"`
	BasePriceLabel  string               `json:"basePriceLabel"`
	CurrentBid      float64              `json:"currentBid"`
	CurrentBidLabel string               `json:"currentBidLabel"`
	EndTime         time.Time            `json:"endTime"`
	EndTimeLabel    string               `json:"endTimeLabel"`
	TimeLeft        string               `json:"timeLeft"`
	Expired         bool                 `json:"expired"`
	SellerName      string               `json:"sellerName"`
	Status          models.AuctionStatus `json:"status"`
	StatusLabel     string               `json:"statusLabel"`
	Winner          string               `json:"winner,omitempty"`
	BidCount        int                  `json:"bidCount"`
	RecentBids      []BidView            `json:"recentBids"`
}

// AuctionDetailView is the detail screen: the full bid history and the
// smallest bid the form accepts.
type AuctionDetailView struct {
	AuctionView
	Bids            []BidView `json:"bids"`
	MinimumBid      float64   `json:"minimumBid"`
	MinimumBidLabel string    `json:"minimumBidLabel"`
}

type PartitionsView struct {
	Active    []AuctionView `json:"activeAuctions"`
	Past      []AuctionView `json:"pastAuctions"`
	Cancelled []AuctionView `json:"cancelledAuctions"`
}

type NotificationView struct {
	ID        models.ID               `json:"id"`
	Type      models.NotificationType `json:"type"`
	Message   string                  `json:"message"`
	Details   map[string]string       `json:"details,omitempty"`
	Timestamp time.Time               `json:"timestamp"`
	TimeAgo   string                  `json:"timeAgo"`
	Read      bool                    `json:"read"`
}

type NotificationsView struct {
	Notifications []NotificationView `json:"notifications"`
	UnreadCount   int                `json:"unreadCount"`
}

type DashboardView struct {
	PartitionsView
	NotificationsView
	Seller *models.Seller `json:"seller,omitempty"`
}

const recentBidCount = 3

// NewAuctionView renders an auction with display labels.
func NewAuctionView(a models.Auction, now time.Time) AuctionView {
	bids := a.Bids
	if len(bids) > recentBidCount {
		bids = bids[:recentBidCount]
	}
	return AuctionView{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		BasePrice:       a.BasePrice,
		BasePriceLabel:  utils.FormatPrice(a.BasePrice),
		CurrentBid:      a.CurrentBid,
		CurrentBidLabel: utils.FormatPrice(a.CurrentBid),
		EndTime:         a.EndTime,
		EndTimeLabel:    utils.FormatDate(a.EndTime),
		TimeLeft:        a.TimeLeft(now),
		Expired:         a.Expired(now),
		SellerName:      a.SellerName,
		Status:          a.Status,
		StatusLabel:     statusLabel(a.Status),
		Winner:          a.Winner,
		BidCount:        len(a.Bids),
		RecentBids:      bidViews(bids),
	}
}

// NewAuctionDetailView renders an auction with every bid.
func NewAuctionDetailView(a models.Auction, now time.Time) AuctionDetailView {
	minimum := forms.MinimumBid(a.CurrentBid)
	return AuctionDetailView{
		AuctionView:     NewAuctionView(a, now),
		Bids:            bidViews(a.Bids),
		MinimumBid:      minimum,
		MinimumBidLabel: utils.FormatPrice(minimum),
	}
}

func bidViews(bids []models.Bid) []BidView {
	out := make([]BidView, 0, len(bids))
	for _, b := range bids {
		out = append(out, BidView{
			UserName:    b.UserName,
			Amount:      b.Amount,
			AmountLabel: utils.FormatPrice(b.Amount),
			Timestamp:   b.Timestamp,
			TimeLabel:   utils.FormatDate(b.Timestamp),
		})
	}
	return out
}

func statusLabel(s models.AuctionStatus) string {
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func NewPartitionsView(p models.Partitions, now time.Time) PartitionsView {
	return PartitionsView{
		Active:    auctionViews(p.Active, now),
		Past:      auctionViews(p.Past, now),
		Cancelled: auctionViews(p.Cancelled, now),
	}
}

func auctionViews(auctions []models.Auction, now time.Time) []AuctionView {
	out := make([]AuctionView, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, NewAuctionView(a, now))
	}
	return out
}

func NewNotificationsView(ns []models.Notification, unread int, now time.Time) NotificationsView {
	out := make([]NotificationView, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationView{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			Details:   n.Details,
			Timestamp: n.Timestamp,
			TimeAgo:   utils.TimeAgo(n.Timestamp, now),
			Read:      n.Read,
		})
	}
	return NotificationsView{Notifications: out, UnreadCount: unread}
}
