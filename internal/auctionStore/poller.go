package auctions

import (
	"context"
	"errors"
	"sync"
	"time"

	"auction-client/internal/auctionerrors"
	"auction-client/utils"
)

// DefaultPollInterval is how often notifications are fetched.
const DefaultPollInterval = 30 * time.Second

// Poller fetches notifications on an interval until stopped.
type Poller struct {
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// PollNotifications fetches immediately and then once per interval. Each
// fetch runs on its own goroutine so a slow response never delays the
// next tick; out-of-order responses are dropped by FetchNotifications.
// Ticks with no token are skipped.
func (s *Store) PollNotifications(ctx context.Context, interval time.Duration, token func() string) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &Poller{cancel: cancel}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			p.tick(ctx, s, token())
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	utils.Info("store: notification polling started", map[string]any{"interval": interval.String()})
	return p
}

// tick runs on the loop goroutine, which holds a wg slot, so Add never races Wait.
func (p *Poller) tick(ctx context.Context, s *Store, token string) {
	if token == "" || ctx.Err() != nil {
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		err := s.FetchNotifications(ctx, token)
		if err == nil || ctx.Err() != nil || errors.Is(err, auctionerrors.ErrNotAuthenticated) {
			return
		}
		utils.Warn("store: error fetching notifications", map[string]any{"error": err.Error()})
	}()
}

// Stop cancels in-flight fetches and waits for them to return.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
		utils.Info("store: notification polling stopped", nil)
	})
}
