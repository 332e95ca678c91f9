package forms

import (
	"math"
	"time"

	"auction-client/internal/models"
)

// AuctionForm is the seller's "Add New Item" form.
type AuctionForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
	BasePrice   string `json:"basePrice" validate:"required,positive_number"`
	Duration    string `json:"duration" validate:"required,min_days"`
}

var auctionMessages = messages{
	"title":       {"required": "Title is required"},
	"description": {"required": "Description is required", "min": "Description must be at least 10 characters"},
	"basePrice":   {"required": "Base price is required", "positive_number": "Base price must be a positive number"},
	"duration":    {"required": "Duration is required", "min_days": "Duration must be at least 1 day"},
}

// Validate trims the inputs and checks every field.
func (f *AuctionForm) Validate() error {
	trim(&f.Title, &f.Description, &f.BasePrice, &f.Duration)
	return check(f, auctionMessages, fixFields)
}

// ToRequest builds the backend payload. The end time is now plus the
// whole number of days entered. Call after Validate.
func (f AuctionForm) ToRequest(now time.Time) models.CreateAuctionRequest {
	price, _ := parseNumber(f.BasePrice)
	return models.CreateAuctionRequest{
		Name:          f.Title,
		Description:   f.Description,
		StartingPrice: price,
		EndTime:       endTime(now, f.Duration).UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// AdminAuctionForm is the admin's "Create New Auction" form.
type AdminAuctionForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
	Duration    string `json:"duration" validate:"required,numeric,min_days"`
}

var adminAuctionMessages = messages{
	"title":       {"required": "Auction title is required"},
	"description": {"required": "Description is required", "min": "Description must be at least 10 characters"},
	"duration": {
		"required": "Duration is required",
		"numeric":  "Duration must be a number",
		"min_days": "Duration must be at least 1 day",
	},
}

// Validate trims the inputs and checks every field.
func (f *AdminAuctionForm) Validate() error {
	trim(&f.Title, &f.Description, &f.Duration)
	return check(f, adminAuctionMessages, fixFields)
}

// ToAuction builds the locally created auction. Call after Validate.
func (f AdminAuctionForm) ToAuction(now time.Time, id models.ID) models.Auction {
	return models.Auction{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		BasePrice:   0,
		CurrentBid:  0,
		Bids:        []models.Bid{},
		EndTime:     endTime(now, f.Duration),
		SellerID:    "admin",
		SellerName:  "Admin",
		Status:      models.StatusActive,
	}
}

func endTime(now time.Time, duration string) time.Time {
	days, _ := parseNumber(duration)
	return now.AddDate(0, 0, int(math.Floor(days)))
}
