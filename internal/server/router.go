package server

import (
	"auction-client/internal/obs"
	"auction-client/internal/session"
	handler "auction-client/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the console
func SetupRouter(accountService handler.AccountServiceInterface, store handler.AuctionStoreInterface, sessions *session.Store) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	accountHandler := handler.NewAccountHandler(accountService)
	auctionHandler := handler.NewAuctionHandler(store, sessions)

	router.GET("/metrics", gin.WrapH(obs.Handler()))
	router.POST("/logout", accountHandler.LogoutHandler)

	users := router.Group("/users")
	{
		users.POST("/register", accountHandler.RegisterUserHandler)
		users.POST("/login", accountHandler.LoginUserHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.POST("/register", accountHandler.RegisterSellerHandler)
		sellers.POST("/login", accountHandler.LoginSellerHandler)
	}

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", auctionHandler.DashboardHandler)
		dashboard.POST("/refresh", auctionHandler.RefreshListingsHandler)
		dashboard.GET("/auctions/:id", auctionHandler.AuctionDetailHandler)
		dashboard.POST("/auctions/:id/bids", auctionHandler.PlaceBidHandler)
	}

	sellerDashboard := router.Group("/seller-dashboard")
	{
		sellerDashboard.GET("", auctionHandler.SellerDashboardHandler)
		sellerDashboard.POST("/refresh", auctionHandler.RefreshSellerAuctionsHandler)
		sellerDashboard.POST("/auctions", auctionHandler.CreateAuctionHandler)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", accountHandler.LoginAdminHandler)

		protected := admin.Group("/dashboard", RequireAdmin(sessions))
		protected.GET("", auctionHandler.AdminDashboardHandler)
		protected.POST("/auctions", auctionHandler.AdminCreateAuctionHandler)
		protected.POST("/auctions/:id/cancel", auctionHandler.CancelAuctionHandler)
		protected.POST("/auctions/:id/end", auctionHandler.EndAuctionHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", auctionHandler.NotificationsHandler)
		notifications.PUT("/:id/read", auctionHandler.MarkReadHandler)
		notifications.DELETE("/clear", auctionHandler.ClearNotificationsHandler)
	}

	return router
}
