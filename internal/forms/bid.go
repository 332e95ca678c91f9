package forms

import (
	"fmt"
	"math"

	"auction-client/internal/auctionerrors"
	"auction-client/utils"
)

// BidForm is the amount typed into the place-bid modal.
type BidForm struct {
	Amount string `json:"amount" validate:"required,positive_number"`
}

var bidMessages = messages{
	"amount": {"required": MsgInvalidBid, "positive_number": MsgInvalidBid},
}

// Validate checks the amount is a positive number and returns it.
func (f *BidForm) Validate() (float64, error) {
	trim(&f.Amount)
	if err := check(f, bidMessages, func(map[string]string) string { return MsgInvalidBid }); err != nil {
		return 0, err
	}
	amount, _ := parseNumber(f.Amount)
	return amount, nil
}

// MinimumBid is the smallest whole amount that beats currentBid.
func MinimumBid(currentBid float64) float64 {
	return math.Floor(currentBid) + 1
}

// ValidateBidAmount rejects non-positive amounts and amounts below
// MinimumBid(currentBid).
func ValidateBidAmount(amount, currentBid float64) error {
	if math.IsNaN(amount) || amount <= 0 {
		return &auctionerrors.ValidationError{
			Message: MsgInvalidBid,
			Fields:  map[string]string{"amount": MsgInvalidBid},
		}
	}
	if amount < MinimumBid(currentBid) {
		msg := fmt.Sprintf("Bid must be higher than current bid of %s (minimum bid %s)",
			utils.FormatPrice(currentBid), formatWhole(MinimumBid(currentBid)))
		return &auctionerrors.ValidationError{Message: msg, Fields: map[string]string{"amount": msg}}
	}
	return nil
}

func formatWhole(n float64) string {
	return fmt.Sprintf("%.0f", n)
}
