package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"auction-client/internal/accounts"
	"auction-client/internal/api"
	auctions "auction-client/internal/auctionStore"
	"auction-client/internal/config"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/internal/server"
	"auction-client/internal/session"
	"auction-client/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("integration-secret")

type account struct {
	id       models.ID
	name     string
	email    string
	password string
}

// fakeBackend is an in-memory auction backend speaking the REST contract
// the console talks to.
type fakeBackend struct {
	mu            sync.Mutex
	nextID        int
	users         map[string]account
	sellers       map[string]account
	auctions      []models.Auction
	notifications []models.Notification
	bidCalls      int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users:   map[string]account{},
		sellers: map[string]account{},
	}
}

func (b *fakeBackend) id() models.ID {
	b.nextID++
	return models.ID(strconv.Itoa(b.nextID))
}

func sign(claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	return token
}

// authenticated verifies the bearer token and stores its claims.
func authenticated(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	c.Set("name", claims["name"])
	c.Next()
}

func (b *fakeBackend) routes(r *gin.RouterGroup) {
	r.POST("/users/register", func(c *gin.Context) {
		var reg models.Registration
		_ = c.ShouldBindJSON(&reg)
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.users[reg.Email]; ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		b.users[reg.Email] = account{id: b.id(), name: reg.Name, email: reg.Email, password: reg.Password}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	})
	r.POST("/users/login", func(c *gin.Context) {
		var creds models.Credentials
		_ = c.ShouldBindJSON(&creds)
		b.mu.Lock()
		u, ok := b.users[creds.Email]
		b.mu.Unlock()
		if !ok || u.password != creds.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": sign(jwt.MapClaims{"user_id": u.id.String(), "name": u.name, "email": u.email})})
	})
	r.POST("/sellers/register", func(c *gin.Context) {
		var reg models.Registration
		_ = c.ShouldBindJSON(&reg)
		b.mu.Lock()
		defer b.mu.Unlock()
		s := account{id: b.id(), name: reg.Name, email: reg.Email, password: reg.Password}
		b.sellers[reg.Email] = s
		c.JSON(http.StatusCreated, gin.H{
			"message": "Seller registered successfully",
			"token":   sign(jwt.MapClaims{"seller_id": s.id.String(), "name": s.name}),
			"seller":  gin.H{"id": s.id, "name": s.name, "email": s.email},
		})
	})
	r.POST("/admin/login", func(c *gin.Context) {
		var creds models.AdminCredentials
		_ = c.ShouldBindJSON(&creds)
		if creds.Username != "admin" || creds.Password != "admin123" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": sign(jwt.MapClaims{"role": "admin", "name": "Admin"}), "admin": gin.H{"id": 1, "username": creds.Username}})
	})

	r.GET("/auctions/active", func(c *gin.Context) { c.JSON(http.StatusOK, b.filter(false)) })
	r.GET("/auctions/past", func(c *gin.Context) { c.JSON(http.StatusOK, b.filter(true)) })
	r.GET("/auctions/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, a := range b.auctions {
			if a.ID.String() == c.Param("id") {
				c.JSON(http.StatusOK, a.Clone())
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
	})

	authed := r.Group("", authenticated)
	authed.POST("/auctions", func(c *gin.Context) {
		var req models.CreateAuctionRequest
		_ = c.ShouldBindJSON(&req)
		end, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end time"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.auctions = append(b.auctions, models.Auction{
			ID:          b.id(),
			Title:       req.Name,
			Description: req.Description,
			BasePrice:   req.StartingPrice,
			CurrentBid:  req.StartingPrice,
			EndTime:     end,
			SellerName:  fmt.Sprint(c.MustGet("name")),
			Status:      models.StatusActive,
		})
		c.JSON(http.StatusCreated, gin.H{"message": "Item created successfully"})
	})
	authed.POST("/auctions/:id/bid", func(c *gin.Context) {
		var req models.PlaceBidRequest
		_ = c.ShouldBindJSON(&req)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.bidCalls++
		for i := range b.auctions {
			a := &b.auctions[i]
			if a.ID.String() != c.Param("id") {
				continue
			}
			if req.BidAmount <= a.CurrentBid {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Bid too low"})
				return
			}
			a.CurrentBid = req.BidAmount
			a.Bids = append(a.Bids, models.Bid{UserName: fmt.Sprint(c.MustGet("name")), Amount: req.BidAmount, Timestamp: time.Now()})
			b.notifications = append([]models.Notification{{
				ID: b.id(), Type: models.NotificationNewBid, Message: "New bid on " + a.Title, Timestamp: time.Now(),
			}}, b.notifications...)
			c.JSON(http.StatusOK, gin.H{"message": "Bid placed successfully"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
	})
	authed.POST("/auctions/:id/cancel", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.auctions {
			if b.auctions[i].ID.String() == c.Param("id") {
				b.auctions[i].Status = models.StatusCancelled
				c.JSON(http.StatusOK, gin.H{"message": "Auction cancelled"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
	})
	authed.GET("/sellers/:id/auctions", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		name := fmt.Sprint(c.MustGet("name"))
		out := []models.Auction{}
		for _, a := range b.auctions {
			if a.SellerName == name {
				out = append(out, a.Clone())
			}
		}
		c.JSON(http.StatusOK, out)
	})
	authed.GET("/notifications", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, append([]models.Notification{}, b.notifications...))
	})
	authed.PUT("/notifications/:id/read", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.notifications {
			if b.notifications[i].ID.String() == c.Param("id") {
				b.notifications[i].Read = true
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	})
	authed.DELETE("/notifications/clear", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.notifications = nil
		c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
	})
}

func (b *fakeBackend) bidCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bidCalls
}

func (b *fakeBackend) filter(past bool) []models.Auction {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Auction{}
	for _, a := range b.auctions {
		if a.Status.IsPast() == past && a.Status != models.StatusCancelled {
			out = append(out, a.Clone())
		}
	}
	return out
}

// testConsole is the console wired against a fake backend.
type testConsole struct {
	backend  *fakeBackend
	sessions *session.Store
	store    *auctions.Store
	router   *gin.Engine
}

// SetupTestConsole wires the real console stack against an in-memory backend.
// env overrides the configuration the console is built from.
func SetupTestConsole(t *testing.T, env ...map[string]string) *testConsole {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := newFakeBackend()
	backendRouter := gin.New()
	backend.routes(backendRouter.Group("/api"))
	srv := httptest.NewServer(backendRouter)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL+"/api", srv.Client())
	sessions := session.NewStore(storage.NewMemoryStorage())
	cfg := config.FromEnv(func(key string) (string, bool) {
		for _, e := range env {
			if v, ok := e[key]; ok {
				return v, true
			}
		}
		return "", false
	})
	accountService := accounts.NewService(client, sessions, accounts.NewAdminVerifier(cfg.Admin, client))
	store := auctions.NewStore(client, repository.NewMemoryRepo(), sessions)

	return &testConsole{
		backend:  backend,
		sessions: sessions,
		store:    store,
		router:   server.SetupRouter(accountService, store, sessions),
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
