package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID identifies auctions, bids, notifications and accounts. The backend
// emits numeric IDs while locally created records use string IDs.
type ID string

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical integer IDs back as numbers. "007", "+5"
// and "-0" stay strings so they survive a round trip unchanged.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// AuctionStatus is the lifecycle state reported for an auction.
type AuctionStatus string

const (
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCompleted AuctionStatus = "completed"
	StatusCancelled AuctionStatus = "cancelled"
)

// IsPast reports whether the status belongs to the past partition.
func (s AuctionStatus) IsPast() bool {
	return s == StatusEnded || s == StatusCompleted
}

// User is a plain bidder account.
type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Seller owns auctions.
type Seller struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Bid is a single offer on an auction. Bids are kept in submission order.
type Bid struct {
	ID        ID        `json:"id,omitempty"`
	UserID    ID        `json:"userId,omitempty"`
	UserName  string    `json:"userName"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Auction represents an auction listing as seen by the client
type Auction struct {
	ID          ID            `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	BasePrice   float64       `json:"basePrice"`
	CurrentBid  float64       `json:"currentBid"`
	Bids        []Bid         `json:"bids"`
	EndTime     time.Time     `json:"endTime"`
	SellerID    ID            `json:"sellerId,omitempty"`
	SellerName  string        `json:"sellerName"`
	Status      AuctionStatus `json:"status"`
	Winner      string        `json:"winner,omitempty"`
}

// Clone returns a copy that does not share the bids slice.
func (a Auction) Clone() Auction {
	if a.Bids != nil {
		a.Bids = append([]Bid(nil), a.Bids...)
	}
	return a
}

// LastBidder returns the user name on the last bid, or "No winner".
func (a Auction) LastBidder() string {
	if len(a.Bids) == 0 || a.Bids[len(a.Bids)-1].UserName == "" {
		return "No winner"
	}
	return a.Bids[len(a.Bids)-1].UserName
}

// Expired reports whether the end time has passed. Display only.
func (a Auction) Expired(now time.Time) bool {
	return !a.EndTime.IsZero() && !now.Before(a.EndTime)
}

// TimeLeft renders the remaining time as shown on the dashboards.
func (a Auction) TimeLeft(now time.Time) string {
	diff := a.EndTime.Sub(now)
	if diff <= 0 {
		return "Auction ended"
	}
	days := int(diff / (24 * time.Hour))
	hours := int(diff%(24*time.Hour)) / int(time.Hour)
	minutes := int(diff%time.Hour) / int(time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh left", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm left", hours, minutes)
	default:
		return fmt.Sprintf("%dm left", minutes)
	}
}

// Partitions groups auctions by status. It is always derived, never stored.
type Partitions struct {
	Active    []Auction `json:"activeAuctions"`
	Past      []Auction `json:"pastAuctions"`
	Cancelled []Auction `json:"cancelledAuctions"`
}

// NotificationType classifies notifications.
type NotificationType string

const (
	NotificationNewAuction       NotificationType = "new_auction"
	NotificationNewBid           NotificationType = "new_bid"
	NotificationAuctionEnd       NotificationType = "auction_end"
	NotificationAuctionCancelled NotificationType = "auction_cancelled"
)

// Details maps display labels to display values.
type Details map[string]string

// UnmarshalJSON keeps strings as they are and writes any other value as
// its JSON text, so {"bidAmount":500} reads as "500". null drops the key.
func (d *Details) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = nil
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode details: %w", err)
	}
	out := make(Details, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		switch {
		case bytes.Equal(v, []byte("null")):
			continue
		case len(v) > 0 && v[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("decode details %q: %w", k, err)
			}
			out[k] = s
		default:
			var buf bytes.Buffer
			if err := json.Compact(&buf, v); err != nil {
				return fmt.Errorf("decode details %q: %w", k, err)
			}
			out[k] = buf.String()
		}
	}
	*d = out
	return nil
}

// Notification is a user-facing event. Details are display-only.
type Notification struct {
	ID        ID               `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Details   Details          `json:"details,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
