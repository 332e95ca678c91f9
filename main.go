package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-client/internal/accounts"
	"auction-client/internal/api"
	auctions "auction-client/internal/auctionStore"
	"auction-client/internal/config"
	"auction-client/internal/obs"
	"auction-client/internal/repository"
	"auction-client/internal/server"
	"auction-client/internal/session"
	"auction-client/internal/storage"
	"auction-client/utils"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.Log.Level)
	obs.Init()

	store, err := openStorage(cfg.Storage)
	if err != nil {
		utils.Fatal("main: failed to open session storage", map[string]any{"path": cfg.Storage.Path, "error": err.Error()})
	}
	sessions := session.NewStore(store)

	client := api.NewClient(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout})
	accountService := accounts.NewService(client, sessions, accounts.NewAdminVerifier(cfg.Admin, client))
	utils.Info("main: admin verification", map[string]any{"mode": cfg.Admin.Auth})

	auctionStore := auctions.NewStore(client, repository.NewMemoryRepo(), sessions)
	if cfg.Demo.Seed {
		auctionStore.Seed(auctions.DemoAuctions(time.Now()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refreshSellerAuctions(ctx, auctionStore, sessions)
	poller := auctionStore.PollNotifications(ctx, cfg.Polling.Interval, sessions.NotificationToken)

	router := server.SetupRouter(accountService, auctionStore, sessions)
	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("Starting auction console", map[string]any{"addr": cfg.Server.ListenAddr, "backend": cfg.Backend.BaseURL})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("main: failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("Shutting down auction console", nil)
	poller.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("main: graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}

// openStorage keeps sessions in a file when a path is configured, in memory otherwise.
func openStorage(cfg config.StorageConfig) (storage.Storage, error) {
	if cfg.Path == "" {
		return storage.NewMemoryStorage(), nil
	}
	fs, err := storage.OpenFileStorage(cfg.Path)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// refreshSellerAuctions loads the seller's auctions when a seller session
// survived from a previous run.
func refreshSellerAuctions(ctx context.Context, store *auctions.Store, sessions *session.Store) {
	if _, ok := sessions.CurrentSellerID(); !ok {
		return
	}
	token := sessions.SellerToken()
	if token == "" {
		return
	}
	if err := store.RefreshSellerAuctions(ctx, token); err != nil {
		utils.Warn("main: initial seller refresh failed", map[string]any{"error": err.Error()})
	}
}
