package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-client/internal/models"
	"auction-client/internal/session"
	"auction-client/internal/storage"
	handler "auction-client/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		adminAuth      string
		expectedStatus int
	}{
		{name: "admin", adminAuth: "true", expectedStatus: http.StatusOK},
		{name: "not_set", expectedStatus: http.StatusUnauthorized},
		{name: "wrong_value", adminAuth: "True", expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mem := storage.NewMemoryStorage()
			if tc.adminAuth != "" {
				require.NoError(t, mem.Set(session.KeyAdminAuth, tc.adminAuth))
			}

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/admin/dashboard", RequireAdmin(session.NewStore(mem)), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "ok"})
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusUnauthorized {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, RouteAdminLogin, resp["redirect"])
			}
		})
	}
}

func TestSetupRouter_AdminRoutesGuarded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := handler.NewMockAuctionStoreInterface(ctrl)
	accounts := handler.NewMockAccountServiceInterface(ctrl)
	sessions := session.NewStore(storage.NewMemoryStorage())

	gin.SetMode(gin.TestMode)
	router := SetupRouter(accounts, store, sessions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/dashboard/auctions/1/end", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, sessions.SaveAdminSession(""))
	store.EXPECT().Auction(models.ID("1")).Return(models.Auction{ID: "1", Title: "Vase", Status: models.StatusActive}, nil)
	store.EXPECT().MoveToPastAuctions(gomock.Any())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/dashboard/auctions/1/end", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRouter_Metrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gin.SetMode(gin.TestMode)
	router := SetupRouter(handler.NewMockAccountServiceInterface(ctrl), handler.NewMockAuctionStoreInterface(ctrl), session.NewStore(storage.NewMemoryStorage()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
