package handler

import (
	"context"
	"net/http"
	"time"

	"auction-client/internal/forms"
	"auction-client/internal/models"
	"auction-client/internal/session"
	"auction-client/services/auction/helpers"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

type AuctionStoreInterface interface {
	Partitions() models.Partitions
	SellerPartitions(sellerName string) models.Partitions
	Auction(id models.ID) (models.Auction, error)
	LoadAuction(ctx context.Context, id models.ID, token string) (models.Auction, error)
	RefreshListings(ctx context.Context, token string) error
	RefreshSellerAuctions(ctx context.Context, token string) error
	CreateAuctionAndRefresh(ctx context.Context, req models.CreateAuctionRequest, token string) error
	AddNewAuction(auction models.Auction)
	PlaceBidAndRefresh(ctx context.Context, auctionID models.ID, amount float64, token string) error
	CancelAuctionAndRefresh(ctx context.Context, auction models.Auction, token string) error
	MoveToPastAuctions(auction models.Auction)
	Notifications() []models.Notification
	UnreadCount() int
	MarkRead(ctx context.Context, id models.ID, token string) error
	ClearAll(ctx context.Context, token string) error
}

type AuctionHandler struct {
	store    AuctionStoreInterface
	sessions *session.Store
	now      func() time.Time
	newID    func() models.ID
}

func NewAuctionHandler(store AuctionStoreInterface, sessions *session.Store) *AuctionHandler {
	return &AuctionHandler{store: store, sessions: sessions, now: time.Now, newID: utils.GenerateID}
}

func (h *AuctionHandler) dashboard(p models.Partitions) helpers.DashboardView {
	now := h.now()
	return helpers.DashboardView{
		PartitionsView:    helpers.NewPartitionsView(p, now),
		NotificationsView: helpers.NewNotificationsView(h.store.Notifications(), h.store.UnreadCount(), now),
	}
}

// DashboardHandler handles GET /dashboard
func (h *AuctionHandler) DashboardHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.dashboard(h.store.Partitions()), "dashboard loaded")
}

// RefreshListingsHandler handles POST /dashboard/refresh
func (h *AuctionHandler) RefreshListingsHandler(c *gin.Context) {
	if err := h.store.RefreshListings(c.Request.Context(), h.sessions.NotificationToken()); err != nil {
		helpers.HandleServiceError(c, "RefreshListingsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, h.dashboard(h.store.Partitions()), "listings refreshed")
	helpers.LogSuccess("RefreshListingsHandler", "listings refreshed", nil)
}

// AuctionDetailHandler handles GET /dashboard/auctions/:id
func (h *AuctionHandler) AuctionDetailHandler(c *gin.Context) {
	auctionID := models.ID(c.Param("id"))

	auction, err := h.store.LoadAuction(c.Request.Context(), auctionID, h.sessions.NotificationToken())
	if err != nil {
		helpers.HandleServiceError(c, "AuctionDetailHandler", err, map[string]any{"auction_id": auctionID.String()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionDetailView(auction, h.now()), "auction loaded")
}

// PlaceBidHandler handles POST /dashboard/auctions/:id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := models.ID(c.Param("id"))

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	form := forms.BidForm{Amount: req.Amount.String()}
	amount, err := form.Validate()
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{"auction_id": auctionID.String()})
		return
	}

	token := h.sessions.UserToken()
	if token == "" {
		token = h.sessions.SellerToken()
	}
	if err := h.store.PlaceBidAndRefresh(c.Request.Context(), auctionID, amount, token); err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID.String(),
			"amount":     amount,
		})
		return
	}

	auction, err := h.store.Auction(auctionID)
	if err != nil {
		utils.JSONResponse(c, http.StatusCreated, nil, "Bid placed successfully!")
	} else {
		utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionView(auction, h.now()), "Bid placed successfully!")
	}
	helpers.LogSuccess("PlaceBidHandler", "bid placed", map[string]any{
		"auction_id": auctionID.String(),
		"amount":     amount,
	})
}

// SellerDashboardHandler handles GET /seller-dashboard
func (h *AuctionHandler) SellerDashboardHandler(c *gin.Context) {
	seller, err := h.sessions.SellerSession()
	if err != nil {
		helpers.HandleServiceError(c, "SellerDashboardHandler", err, nil)
		return
	}
	view := h.dashboard(h.store.SellerPartitions(seller.Seller.Name))
	view.Seller = &seller.Seller
	utils.JSONResponse(c, http.StatusOK, view, "seller dashboard loaded")
}

// RefreshSellerAuctionsHandler handles POST /seller-dashboard/refresh
func (h *AuctionHandler) RefreshSellerAuctionsHandler(c *gin.Context) {
	seller, err := h.sessions.SellerSession()
	if err != nil {
		helpers.HandleServiceError(c, "RefreshSellerAuctionsHandler", err, nil)
		return
	}
	if err := h.store.RefreshSellerAuctions(c.Request.Context(), seller.Token); err != nil {
		helpers.HandleServiceError(c, "RefreshSellerAuctionsHandler", err, map[string]any{"seller_id": seller.Seller.ID.String()})
		return
	}
	view := h.dashboard(h.store.SellerPartitions(seller.Seller.Name))
	view.Seller = &seller.Seller
	utils.JSONResponse(c, http.StatusOK, view, "seller auctions refreshed")
	helpers.LogSuccess("RefreshSellerAuctionsHandler", "seller auctions refreshed", map[string]any{"seller_id": seller.Seller.ID.String()})
}

// CreateAuctionHandler handles POST /seller-dashboard/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var form forms.AuctionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}
	if err := form.Validate(); err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, nil)
		return
	}

	req := form.ToRequest(h.now())
	if err := h.store.CreateAuctionAndRefresh(c.Request.Context(), req, h.sessions.SellerToken()); err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err, map[string]any{"title": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, req, "Auction created successfully!")
	helpers.LogSuccess("CreateAuctionHandler", "auction created", map[string]any{"title": req.Name})
}

// AdminDashboardHandler handles GET /admin/dashboard
func (h *AuctionHandler) AdminDashboardHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.dashboard(h.store.Partitions()), "admin dashboard loaded")
}

// AdminCreateAuctionHandler handles POST /admin/dashboard/auctions. The
// auction only exists locally.
func (h *AuctionHandler) AdminCreateAuctionHandler(c *gin.Context) {
	var form forms.AdminAuctionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "AdminCreateAuctionHandler", err)
		return
	}
	if err := form.Validate(); err != nil {
		helpers.HandleServiceError(c, "AdminCreateAuctionHandler", err, nil)
		return
	}

	now := h.now()
	auction := form.ToAuction(now, h.newID())
	h.store.AddNewAuction(auction)

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionView(auction, now), "Auction created successfully!")
	helpers.LogSuccess("AdminCreateAuctionHandler", "auction created", map[string]any{"auction_id": auction.ID.String()})
}

// CancelAuctionHandler handles POST /admin/dashboard/auctions/:id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	auction, ok := h.lookup(c, "CancelAuctionHandler")
	if !ok {
		return
	}

	token := h.adminToken()
	if err := h.store.CancelAuctionAndRefresh(c.Request.Context(), auction, token); err != nil {
		helpers.HandleServiceError(c, "CancelAuctionHandler", err, map[string]any{"auction_id": auction.ID.String()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": auction.ID}, "Auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled", map[string]any{"auction_id": auction.ID.String()})
}

// EndAuctionHandler handles POST /admin/dashboard/auctions/:id/end
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	auction, ok := h.lookup(c, "EndAuctionHandler")
	if !ok {
		return
	}
	h.store.MoveToPastAuctions(auction)

	auction.Status = models.StatusEnded
	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionView(auction, h.now()), "Auction ended")
	helpers.LogSuccess("EndAuctionHandler", "auction ended", map[string]any{"auction_id": auction.ID.String()})
}

func (h *AuctionHandler) lookup(c *gin.Context, handlerName string) (models.Auction, bool) {
	id := models.ID(c.Param("id"))
	auction, err := h.store.Auction(id)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{"auction_id": id.String()})
		return models.Auction{}, false
	}
	return auction, true
}

func (h *AuctionHandler) adminToken() string {
	if admin, err := h.sessions.AdminSession(); err == nil && admin.Token != "" {
		return admin.Token
	}
	return h.sessions.NotificationToken()
}

// NotificationsHandler handles GET /notifications
func (h *AuctionHandler) NotificationsHandler(c *gin.Context) {
	view := helpers.NewNotificationsView(h.store.Notifications(), h.store.UnreadCount(), h.now())
	utils.JSONResponse(c, http.StatusOK, view, "notifications retrieved")
}

// MarkReadHandler handles PUT /notifications/:id/read
func (h *AuctionHandler) MarkReadHandler(c *gin.Context) {
	id := models.ID(c.Param("id"))
	if err := h.store.MarkRead(c.Request.Context(), id, h.sessions.NotificationToken()); err != nil {
		helpers.HandleServiceError(c, "MarkReadHandler", err, map[string]any{"notification_id": id.String()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"unreadCount": h.store.UnreadCount()}, "notification marked as read")
}

// ClearNotificationsHandler handles DELETE /notifications/clear
func (h *AuctionHandler) ClearNotificationsHandler(c *gin.Context) {
	if err := h.store.ClearAll(c.Request.Context(), h.sessions.NotificationToken()); err != nil {
		helpers.HandleServiceError(c, "ClearNotificationsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"unreadCount": 0}, "notifications cleared")
	helpers.LogSuccess("ClearNotificationsHandler", "notifications cleared", nil)
}
