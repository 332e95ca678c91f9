package forms

import (
	"errors"
	"testing"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func validationErr(t *testing.T, err error) *auctionerrors.ValidationError {
	t.Helper()
	var verr *auctionerrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr
}

func TestAuctionForm_Validate(t *testing.T) {
	t.Parallel()

	valid := AuctionForm{Title: "Vintage Watch", Description: "A classic timepiece", BasePrice: "5000", Duration: "7"}

	tests := []struct {
		name       string
		mutate     func(f *AuctionForm)
		wantFields map[string]string
	}{
		{name: "valid", mutate: func(f *AuctionForm) {}},
		{
			name:       "blank_title",
			mutate:     func(f *AuctionForm) { f.Title = "   " },
			wantFields: map[string]string{"title": "Title is required"},
		},
		{
			name:       "short_description",
			mutate:     func(f *AuctionForm) { f.Description = "too short" },
			wantFields: map[string]string{"description": "Description must be at least 10 characters"},
		},
		{
			name:       "negative_price",
			mutate:     func(f *AuctionForm) { f.BasePrice = "-5" },
			wantFields: map[string]string{"basePrice": "Base price must be a positive number"},
		},
		{
			name:       "price_not_number",
			mutate:     func(f *AuctionForm) { f.BasePrice = "abc" },
			wantFields: map[string]string{"basePrice": "Base price must be a positive number"},
		},
		{
			name:       "zero_duration",
			mutate:     func(f *AuctionForm) { f.Duration = "0" },
			wantFields: map[string]string{"duration": "Duration must be at least 1 day"},
		},
		{
			name:   "everything_empty",
			mutate: func(f *AuctionForm) { *f = AuctionForm{} },
			wantFields: map[string]string{
				"title":       "Title is required",
				"description": "Description is required",
				"basePrice":   "Base price is required",
				"duration":    "Duration is required",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := valid
			tc.mutate(&f)
			err := f.Validate()
			if tc.wantFields == nil {
				require.NoError(t, err)
				return
			}
			verr := validationErr(t, err)
			require.Equal(t, MsgFixFields, verr.Message)
			require.Equal(t, tc.wantFields, verr.Fields)
		})
	}
}

func TestAuctionForm_ToRequest(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	f := AuctionForm{Title: " Vase ", Description: "Ming dynasty vase", BasePrice: "2500.5", Duration: "3"}
	require.NoError(t, f.Validate())

	req := f.ToRequest(now)
	require.Equal(t, models.CreateAuctionRequest{
		Name:          "Vase",
		Description:   "Ming dynasty vase",
		StartingPrice: 2500.5,
		EndTime:       "2026-10-20T09:30:00.000Z",
	}, req)
}

func TestAdminAuctionForm(t *testing.T) {
	t.Parallel()

	f := AdminAuctionForm{Title: "", Description: "Rare collectible coins", Duration: "two"}
	verr := validationErr(t, f.Validate())
	require.Equal(t, map[string]string{
		"title":    "Auction title is required",
		"duration": "Duration must be a number",
	}, verr.Fields)

	f = AdminAuctionForm{Title: "Coins", Description: "Rare collectible coins", Duration: "2"}
	require.NoError(t, f.Validate())

	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	a := f.ToAuction(now, "abc")
	require.Equal(t, models.ID("abc"), a.ID)
	require.Equal(t, models.StatusActive, a.Status)
	require.Equal(t, models.ID("admin"), a.SellerID)
	require.Equal(t, "Admin", a.SellerName)
	require.Zero(t, a.BasePrice)
	require.Zero(t, a.CurrentBid)
	require.Equal(t, now.AddDate(0, 0, 2), a.EndTime)
}

func TestValidateBidAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  float64
		current float64
		wantMsg string
	}{
		{name: "higher", amount: 1001, current: 1000},
		{name: "equal", amount: 1000, current: 1000, wantMsg: "Bid must be higher than current bid of ₹1,000 (minimum bid 1001)"},
		{name: "lower", amount: 500, current: 1000, wantMsg: "Bid must be higher than current bid of ₹1,000 (minimum bid 1001)"},
		{name: "fractional_current", amount: 1000, current: 1000.5, wantMsg: "Bid must be higher than current bid of ₹1,001 (minimum bid 1001)"},
		{name: "fraction_above_current", amount: 1000.5, current: 1000, wantMsg: "Bid must be higher than current bid of ₹1,000 (minimum bid 1001)"},
		{name: "fraction_above_minimum", amount: 1001.5, current: 1000},
		{name: "minimum_over_fractional_current", amount: 1001, current: 1000.5},
		{name: "zero", amount: 0, current: 0, wantMsg: MsgInvalidBid},
		{name: "negative", amount: -10, current: 0, wantMsg: MsgInvalidBid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateBidAmount(tc.amount, tc.current)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Equal(t, tc.wantMsg, validationErr(t, err).Message)
		})
	}
}

func TestEngine_CustomRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{tag: "positive_number", value: "12.5", valid: true},
		{tag: "positive_number", value: "0"},
		{tag: "positive_number", value: "NaN"},
		{tag: "min_days", value: "1", valid: true},
		{tag: "min_days", value: "0.5"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.tag+"_"+tc.value, func(t *testing.T) {
			t.Parallel()
			err := engine().Var(tc.value, tc.tag)
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	t.Parallel()

	v := validator.New()
	require.PanicsWithValue(t, `forms: register "": function Key cannot be empty`, func() {
		mustRegister(v, "", func(validator.FieldLevel) bool { return true })
	})
	require.NotPanics(t, func() {
		mustRegister(v, "always", func(validator.FieldLevel) bool { return true })
	})
}

func TestBidForm(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "0", "-1"} {
		f := BidForm{Amount: in}
		_, err := f.Validate()
		require.Equal(t, MsgInvalidBid, validationErr(t, err).Message, in)
	}

	f := BidForm{Amount: " 1500 "}
	amount, err := f.Validate()
	require.NoError(t, err)
	require.Equal(t, 1500.0, amount)
}

func TestRegistrationForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    RegistrationForm
		wantMsg string
	}{
		{name: "valid", form: RegistrationForm{Name: "A", Email: "a@x.com", Password: "p", ConfirmPassword: "p"}},
		{name: "missing_name", form: RegistrationForm{Email: "a@x.com", Password: "p", ConfirmPassword: "p"}, wantMsg: MsgAllRequired},
		{name: "missing_and_mismatch", form: RegistrationForm{Name: "A", Password: "p", ConfirmPassword: "q"}, wantMsg: MsgAllRequired},
		{name: "mismatch", form: RegistrationForm{Name: "A", Email: "a@x.com", Password: "p", ConfirmPassword: "q"}, wantMsg: MsgPasswordsDiffer},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.form.Validate()
			if tc.wantMsg == "" {
				require.NoError(t, err)
				require.Equal(t, models.Registration{Name: "A", Email: "a@x.com", Password: "p"}, tc.form.Registration())
				return
			}
			require.Equal(t, tc.wantMsg, validationErr(t, err).Message)
		})
	}
}

func TestLoginForms(t *testing.T) {
	t.Parallel()

	lf := LoginForm{Email: " u@x.com ", Password: "p"}
	require.NoError(t, lf.Validate())
	require.Equal(t, models.Credentials{Email: "u@x.com", Password: "p"}, lf.Credentials())

	af := AdminLoginForm{Email: "admin@gmail.com"}
	require.Equal(t, MsgAllRequired, validationErr(t, af.Validate()).Message)
}
