package auctions

import (
	"time"

	"auction-client/internal/models"
)

// DemoAuctions returns the sample listings shown before any backend data
// has been loaded. End times are relative to now.
func DemoAuctions(now time.Time) []models.Auction {
	hours := func(h int) time.Time { return now.Add(time.Duration(h) * time.Hour) }
	days := func(d int) time.Time { return now.AddDate(0, 0, d) }

	return []models.Auction{
		{
			ID: "1", Title: "Vintage Watch", Description: "A beautiful vintage watch from the 1950s",
			CurrentBid: 7500, BasePrice: 5000, EndTime: days(2),
			SellerID: "seller1", SellerName: "John Smith", Status: models.StatusActive,
			Bids: []models.Bid{
				{ID: "1", UserID: "user1", UserName: "John Doe", Amount: 7500, Timestamp: hours(-2)},
				{ID: "2", UserID: "user2", UserName: "Jane Smith", Amount: 6000, Timestamp: hours(-3)},
				{ID: "3", UserID: "user3", UserName: "Mike Johnson", Amount: 5500, Timestamp: hours(-4)},
			},
		},
		{
			ID: "2", Title: "Antique Vase", Description: "Chinese porcelain vase from the Ming dynasty",
			CurrentBid: 15000, BasePrice: 10000, EndTime: days(3),
			SellerID: "seller2", SellerName: "Sarah Wilson", Status: models.StatusActive,
			Bids: []models.Bid{
				{ID: "4", UserID: "user4", UserName: "Sarah Wilson", Amount: 15000, Timestamp: hours(-1)},
				{ID: "5", UserID: "user5", UserName: "Tom Brown", Amount: 12000, Timestamp: hours(-2)},
			},
		},
		{
			ID: "3", Title: "Classic Car", Description: "Restored 1965 Mustang",
			CurrentBid: 2500000, BasePrice: 2000000, EndTime: days(-7),
			SellerID: "seller3", SellerName: "Mike Johnson", Status: models.StatusCompleted, Winner: "Mike Johnson",
			Bids: []models.Bid{
				{ID: "6", UserID: "user3", UserName: "Mike Johnson", Amount: 2500000, Timestamp: days(-7)},
			},
		},
		{
			ID: "4", Title: "Rare Coin Collection", Description: "Collection of ancient Roman coins",
			CurrentBid: 50000, BasePrice: 45000, EndTime: days(-2),
			SellerID: "seller4", SellerName: "David Brown", Status: models.StatusCancelled, Winner: "Auction Cancelled",
			Bids: []models.Bid{
				{ID: "7", UserID: "user6", UserName: "Alice White", Amount: 50000, Timestamp: days(-3)},
				{ID: "8", UserID: "user7", UserName: "Bob Green", Amount: 47000, Timestamp: days(-4)},
			},
		},
		{
			ID: "5", Title: "Vintage Camera", Description: "Leica M3 from 1954",
			CurrentBid: 35000, BasePrice: 30000, EndTime: days(-5),
			SellerID: "seller5", SellerName: "Emma Davis", Status: models.StatusCancelled, Winner: "Auction Cancelled",
			Bids: []models.Bid{
				{ID: "9", UserID: "user8", UserName: "Charlie Brown", Amount: 35000, Timestamp: days(-6)},
			},
		},
	}
}
