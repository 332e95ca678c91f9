package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/models"
	"auction-client/internal/obs"
	"auction-client/utils"
)

const defaultTimeout = 10 * time.Second

// Fallback messages used when the backend answers with an error but no
// "error" field.
const (
	fallbackLogin        = "Login failed"
	fallbackRegistration = "Registration failed"
	fallbackSellerList   = "Failed to fetch seller auctions"
	fallbackRequest      = "Request failed"
)

// Client talks to the auction backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL (e.g. http://localhost:8080/api).
// A nil httpClient gets a client with the default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// call describes one backend request.
type call struct {
	method   string
	route    string // route template, used as metric label
	path     string
	token    string
	body     any
	fallback string
}

// do executes c and decodes a success body into out (when out is not nil).
func (cl *Client) do(ctx context.Context, c call, out any) error {
	op := c.method + " " + c.route
	done := obs.StartAPICall(c.method, c.route)

	var reader io.Reader
	if c.body != nil {
		payload, err := json.Marshal(c.body)
		if err != nil {
			done(obs.OutcomeMalformed)
			return fmt.Errorf("api: encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, cl.baseURL+c.path, reader)
	if err != nil {
		done(obs.OutcomeNetwork)
		return &auctionerrors.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		done(obs.OutcomeNetwork)
		utils.Warn("api: transport failure", map[string]any{"op": op, "error": err.Error()})
		return &auctionerrors.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		done(obs.OutcomeNetwork)
		return &auctionerrors.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		done(obs.OutcomeAPIError)
		apiErr := &auctionerrors.APIError{StatusCode: resp.StatusCode, Message: c.fallback}
		var body models.ErrorResponse
		if json.Unmarshal(data, &body) == nil && strings.TrimSpace(body.Error) != "" {
			apiErr.Message = body.Error
		}
		utils.Warn("api: backend returned error", map[string]any{
			"op":     op,
			"status": resp.StatusCode,
			"error":  apiErr.Message,
		})
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			done(obs.OutcomeMalformed)
			return &auctionerrors.MalformedResponseError{Reason: fmt.Sprintf("%s: %v", op, err)}
		}
	}

	done(obs.OutcomeOK)
	utils.Debug("api: request succeeded", map[string]any{"op": op, "status": resp.StatusCode})
	return nil
}

func escape(id models.ID) string {
	return url.PathEscape(id.String())
}

// RegisterUser handles POST /users/register
func (cl *Client) RegisterUser(ctx context.Context, reg models.Registration) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := cl.do(ctx, call{method: http.MethodPost, route: "/users/register", path: "/users/register", body: reg, fallback: fallbackRegistration}, &out)
	return out, err
}

// LoginUser handles POST /users/login
func (cl *Client) LoginUser(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	var out models.TokenResponse
	if err := cl.do(ctx, call{method: http.MethodPost, route: "/users/login", path: "/users/login", body: creds, fallback: fallbackLogin}, &out); err != nil {
		return models.TokenResponse{}, err
	}
	if out.Token == "" {
		return models.TokenResponse{}, &auctionerrors.MalformedResponseError{Reason: "user login: missing token"}
	}
	return out, nil
}

// RegisterSeller handles POST /sellers/register
func (cl *Client) RegisterSeller(ctx context.Context, reg models.Registration) (models.SellerAuthResponse, error) {
	var out models.SellerAuthResponse
	if err := cl.do(ctx, call{method: http.MethodPost, route: "/sellers/register", path: "/sellers/register", body: reg, fallback: fallbackRegistration}, &out); err != nil {
		return models.SellerAuthResponse{}, err
	}
	if err := checkSellerAuth("seller register", out); err != nil {
		return models.SellerAuthResponse{}, err
	}
	return out, nil
}

// LoginSeller handles POST /sellers/login
func (cl *Client) LoginSeller(ctx context.Context, creds models.Credentials) (models.SellerAuthResponse, error) {
	var out models.SellerAuthResponse
	if err := cl.do(ctx, call{method: http.MethodPost, route: "/sellers/login", path: "/sellers/login", body: creds, fallback: fallbackLogin}, &out); err != nil {
		return models.SellerAuthResponse{}, err
	}
	if err := checkSellerAuth("seller login", out); err != nil {
		return models.SellerAuthResponse{}, err
	}
	return out, nil
}

func checkSellerAuth(op string, out models.SellerAuthResponse) error {
	if out.Seller == nil || out.Seller.ID == "" || out.Seller.Name == "" || out.Seller.Email == "" || out.Token == "" {
		utils.Error("api: invalid server response", map[string]any{"op": op})
		return &auctionerrors.MalformedResponseError{Reason: op + ": missing seller fields or token"}
	}
	return nil
}

// LoginAdmin handles POST /admin/login
func (cl *Client) LoginAdmin(ctx context.Context, creds models.AdminCredentials) (models.AdminAuthResponse, error) {
	var out models.AdminAuthResponse
	if err := cl.do(ctx, call{method: http.MethodPost, route: "/admin/login", path: "/admin/login", body: creds, fallback: fallbackLogin}, &out); err != nil {
		return models.AdminAuthResponse{}, err
	}
	if out.Token == "" {
		return models.AdminAuthResponse{}, &auctionerrors.MalformedResponseError{Reason: "admin login: missing token"}
	}
	return out, nil
}

// ActiveAuctions handles GET /auctions/active
func (cl *Client) ActiveAuctions(ctx context.Context, token string) ([]models.Auction, error) {
	var out []models.Auction
	err := cl.do(ctx, call{method: http.MethodGet, route: "/auctions/active", path: "/auctions/active", token: token, fallback: fallbackRequest}, &out)
	return out, err
}

// PastAuctions handles GET /auctions/past
func (cl *Client) PastAuctions(ctx context.Context, token string) ([]models.Auction, error) {
	var out []models.Auction
	err := cl.do(ctx, call{method: http.MethodGet, route: "/auctions/past", path: "/auctions/past", token: token, fallback: fallbackRequest}, &out)
	return out, err
}

// Auction handles GET /auctions/:id
func (cl *Client) Auction(ctx context.Context, id models.ID, token string) (models.Auction, error) {
	var out models.Auction
	err := cl.do(ctx, call{method: http.MethodGet, route: "/auctions/:id", path: "/auctions/" + escape(id), token: token, fallback: fallbackRequest}, &out)
	return out, err
}

// CreateAuction handles POST /auctions
func (cl *Client) CreateAuction(ctx context.Context, req models.CreateAuctionRequest, token string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := cl.do(ctx, call{method: http.MethodPost, route: "/auctions", path: "/auctions", token: token, body: req, fallback: fallbackRequest}, &out)
	return out, err
}

// PlaceBid handles POST /auctions/:id/bid
func (cl *Client) PlaceBid(ctx context.Context, id models.ID, amount float64, token string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := cl.do(ctx, call{
		method:   http.MethodPost,
		route:    "/auctions/:id/bid",
		path:     "/auctions/" + escape(id) + "/bid",
		token:    token,
		body:     models.PlaceBidRequest{BidAmount: amount},
		fallback: fallbackRequest,
	}, &out)
	return out, err
}

// CancelAuction handles POST /auctions/:id/cancel
func (cl *Client) CancelAuction(ctx context.Context, id models.ID, token string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := cl.do(ctx, call{method: http.MethodPost, route: "/auctions/:id/cancel", path: "/auctions/" + escape(id) + "/cancel", token: token, fallback: fallbackRequest}, &out)
	return out, err
}

// SellerAuctions handles GET /sellers/:id/auctions
func (cl *Client) SellerAuctions(ctx context.Context, sellerID models.ID, token string) ([]models.Auction, error) {
	var out []models.Auction
	err := cl.do(ctx, call{method: http.MethodGet, route: "/sellers/:id/auctions", path: "/sellers/" + escape(sellerID) + "/auctions", token: token, fallback: fallbackSellerList}, &out)
	return out, err
}

// Notifications handles GET /notifications
func (cl *Client) Notifications(ctx context.Context, token string) ([]models.Notification, error) {
	var out []models.Notification
	err := cl.do(ctx, call{method: http.MethodGet, route: "/notifications", path: "/notifications", token: token, fallback: fallbackRequest}, &out)
	return out, err
}

// MarkNotificationRead handles PUT /notifications/:id/read
func (cl *Client) MarkNotificationRead(ctx context.Context, id models.ID, token string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := cl.do(ctx, call{method: http.MethodPut, route: "/notifications/:id/read", path: "/notifications/" + escape(id) + "/read", token: token, fallback: fallbackRequest}, &out)
	return out, err
}

// ClearNotifications handles DELETE /notifications/clear
func (cl *Client) ClearNotifications(ctx context.Context, token string) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := cl.do(ctx, call{method: http.MethodDelete, route: "/notifications/clear", path: "/notifications/clear", token: token, fallback: fallbackRequest}, &out)
	return out, err
}
