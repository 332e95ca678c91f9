package auctionerrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Cache-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
)

// Session-level errors
var (
	ErrNoSession               = errors.New("no stored session")
	ErrCorruptSession          = errors.New("stored session is corrupted")
	ErrNotAuthenticated        = errors.New("not authenticated")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
)

// Store operation errors
var (
	ErrCreateAuctionFailed = errors.New("create auction failed")
	ErrBidFailed           = errors.New("place bid failed")
	ErrCancelFailed        = errors.New("cancel auction failed")
	ErrRefreshFailed       = errors.New("refresh auctions failed")
	ErrNotificationsFailed = errors.New("notification update failed")
)

const (
	MsgNetwork          = "Network error. Please check your connection and try again."
	MsgMalformed        = "Invalid response from server"
	MsgCreateFailed     = "Failed to create auction."
	MsgBidFailed        = "Failed to place bid. Please try again."
	MsgCancelFailed     = "Failed to cancel auction. Please try again."
	MsgRefreshFailed    = "Invalid data received from server"
	MsgNotifications    = "Failed to update notifications"
	MsgInvalidAdmin     = "Invalid admin credentials"
	MsgNotAuthenticated = "Please log in to continue"
	MsgAuctionNotFound  = "Auction not found"
	MsgCorruptSession   = "Stored session is invalid, please log in again"
	MsgGeneric          = "Something went wrong. Please try again."
)

// ValidationError carries field-level problems found before submission.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation: " + e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation: " + e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// NetworkError is a transport failure; the request never got an answer.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s, check connection: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-success answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// MalformedResponseError is a success answer missing expected fields.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed response: " + e.Reason
}

// DisplayMessage turns err into the string shown to the user.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	var apiErr *APIError
	var networkErr *NetworkError
	var malformedErr *MalformedResponseError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, ErrCreateAuctionFailed):
		return MsgCreateFailed
	case errors.Is(err, ErrInvalidAdminCredentials):
		return MsgInvalidAdmin
	case errors.As(err, &networkErr):
		return MsgNetwork
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &malformedErr):
		return MsgMalformed
	case errors.Is(err, ErrAuctionNotFound):
		return MsgAuctionNotFound
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrNoSession):
		return MsgNotAuthenticated
	case errors.Is(err, ErrCorruptSession):
		return MsgCorruptSession
	case errors.Is(err, ErrBidFailed):
		return MsgBidFailed
	case errors.Is(err, ErrCancelFailed):
		return MsgCancelFailed
	case errors.Is(err, ErrRefreshFailed):
		return MsgRefreshFailed
	case errors.Is(err, ErrNotificationsFailed):
		return MsgNotifications
	default:
		return MsgGeneric
	}
}
