package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"

	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"validation", &auctionerrors.ValidationError{Message: "Title is required"}, http.StatusBadRequest, "Title is required"},
		{"not_authenticated", fmt.Errorf("store: %w", auctionerrors.ErrNotAuthenticated), http.StatusUnauthorized, auctionerrors.MsgNotAuthenticated},
		{"corrupt_session", auctionerrors.ErrCorruptSession, http.StatusUnauthorized, auctionerrors.MsgCorruptSession},
		{"invalid_admin", auctionerrors.ErrInvalidAdminCredentials, http.StatusUnauthorized, auctionerrors.MsgInvalidAdmin},
		{"not_found", auctionerrors.ErrAuctionNotFound, http.StatusNotFound, auctionerrors.MsgAuctionNotFound},
		{"api_client_error", &auctionerrors.APIError{StatusCode: http.StatusConflict, Message: "taken"}, http.StatusConflict, "taken"},
		{"api_server_error", &auctionerrors.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}, http.StatusBadGateway, "boom"},
		{"network", &auctionerrors.NetworkError{Op: "x", Err: errors.New("refused")}, http.StatusBadGateway, auctionerrors.MsgNetwork},
		{"malformed", &auctionerrors.MalformedResponseError{Reason: "r"}, http.StatusBadGateway, auctionerrors.MsgMalformed},
		{"bid_failed", auctionerrors.ErrBidFailed, http.StatusBadGateway, auctionerrors.MsgBidFailed},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, auctionerrors.MsgGeneric},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, message := MapErrorToHTTP(tc.err)
			require.Equal(t, tc.expectedStatus, status)
			require.Equal(t, tc.expectedMsg, message)
		})
	}
}

func TestNewAuctionView(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	auction := models.Auction{
		ID:         "1",
		Title:      "Painting",
		BasePrice:  150000,
		CurrentBid: 1234567.5,
		EndTime:    now.Add(-time.Minute),
		Status:     models.StatusCancelled,
		Bids: []models.Bid{
			{UserName: "first", Amount: 1},
			{UserName: "second", Amount: 2},
			{UserName: "third", Amount: 3},
			{UserName: "fourth", Amount: 4},
		},
	}

	view := NewAuctionView(auction, now)

	require.Equal(t, "₹1,50,000", view.BasePriceLabel)
	require.Equal(t, "Cancelled", view.StatusLabel)
	require.Equal(t, "Auction ended", view.TimeLeft)
	require.True(t, view.Expired)
	require.Equal(t, 4, view.BidCount)
	require.Len(t, view.RecentBids, 3)
	require.Equal(t, "first", view.RecentBids[0].UserName)
	require.Equal(t, "third", view.RecentBids[2].UserName)

	require.Equal(t, "Unknown", NewAuctionView(models.Auction{}, now).StatusLabel)
}

func TestNewPartitionsView_NeverNil(t *testing.T) {
	t.Parallel()

	view := NewPartitionsView(models.Partitions{}, time.Now())
	require.NotNil(t, view.Active)
	require.NotNil(t, view.Past)
	require.NotNil(t, view.Cancelled)
}
