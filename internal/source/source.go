package source

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/events"
	"github.com/spec-kit/maintenance-dashboard/internal/repository"
)

// SnapshotCacheKey is the cache key holding the last loaded ticket list.
const SnapshotCacheKey = "maintenance:tickets:snapshot"

const (
	defaultCacheTTL   = 5 * time.Minute
	cacheWriteTimeout = 2 * time.Second
)

// Snapshot is the current value of the ticket collection. Version counts
// ticket loads; Generation counts every state change, failures included.
type Snapshot struct {
	Tickets     []domain.Ticket
	Loading     bool
	Err         error
	Version     uint64
	Generation  uint64
	RefreshedAt time.Time
	Stale       bool
}

// Provider exposes the ticket collection read-only with change notification.
type Provider interface {
	Snapshot() Snapshot
	Subscribe(fn func(Snapshot)) (unsubscribe func())
}

// Cacher stores JSON-encodable values with an expiry.
type Cacher interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type cachedSnapshot struct {
	Tickets     []domain.Ticket `json:"tickets"`
	RefreshedAt time.Time       `json:"refreshed_at"`
}

// Dependencies bundles collaborators for the ticket source.
type Dependencies struct {
	Repo       repository.TicketRepository
	Cache      Cacher
	CacheTTL   time.Duration
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// TicketSource loads tickets from the repository and keeps the latest
// snapshot in memory for concurrent readers.
type TicketSource struct {
	repo       repository.TicketRepository
	cache      Cacher
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
	group      singleflight.Group

	mu   sync.RWMutex
	snap Snapshot
}

// NewTicketSource constructs a source whose snapshot is loading until the
// first refresh settles.
func NewTicketSource(deps Dependencies) *TicketSource {
	if deps.Repo == nil {
		panic("source: ticket repository is required")
	}
	if deps.Dispatcher == nil {
		deps.Dispatcher = events.NewInMemoryDispatcher()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = defaultCacheTTL
	}
	return &TicketSource{
		repo:       deps.Repo,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		snap:       Snapshot{Loading: true},
	}
}

// Snapshot returns a copy of the current value.
func (s *TicketSource) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap
	snap.Tickets = slices.Clone(s.snap.Tickets)
	return snap
}

// Subscribe calls fn with the new snapshot after every refresh attempt.
func (s *TicketSource) Subscribe(fn func(Snapshot)) func() {
	handler := func(ctx context.Context, _ events.Event) error {
		fn(s.Snapshot())
		return nil
	}
	unsubRefreshed := s.dispatcher.Subscribe(events.EventTicketsRefreshed, handler)
	unsubFailed := s.dispatcher.Subscribe(events.EventTicketsRefreshFailed, handler)
	return func() {
		unsubRefreshed()
		unsubFailed()
	}
}

// Dispatcher exposes the dispatcher refresh events are published on.
func (s *TicketSource) Dispatcher() events.Dispatcher {
	return s.dispatcher
}

// Refresh reloads tickets. Concurrent callers share a single load.
func (s *TicketSource) Refresh(ctx context.Context) error {
	_, err, _ := s.group.Do("refresh", func() (any, error) {
		return nil, s.load(ctx)
	})
	return err
}

// Run refreshes immediately and then every interval until ctx is done.
func (s *TicketSource) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("ticket refresh failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *TicketSource) load(ctx context.Context) error {
	start := time.Now()
	tickets, err := s.repo.ListAll(ctx)
	if err != nil {
		err = fmt.Errorf("list tickets: %w", err)
		if cached, ok := s.cachedFallback(ctx); ok {
			version := s.store(cached.Tickets, cached.RefreshedAt, err, true)
			s.publish(ctx, events.EventTicketsRefreshed, events.TicketsRefreshedPayload{
				Version:   version,
				Count:     len(cached.Tickets),
				Duration:  time.Since(start),
				FromCache: true,
			})
			return err
		}
		s.fail(err)
		s.publish(ctx, events.EventTicketsRefreshFailed, events.TicketsRefreshFailedPayload{
			Error:    err.Error(),
			Duration: time.Since(start),
		})
		return err
	}

	now := time.Now().UTC()
	version := s.store(tickets, now, nil, false)
	s.writeCache(ctx, cachedSnapshot{Tickets: tickets, RefreshedAt: now})
	s.publish(ctx, events.EventTicketsRefreshed, events.TicketsRefreshedPayload{
		Version:  version,
		Count:    len(tickets),
		Duration: time.Since(start),
	})
	return nil
}

// cachedFallback only serves the cache while nothing has been loaded yet;
// a source that already holds data keeps it and reports the error.
func (s *TicketSource) cachedFallback(ctx context.Context) (cachedSnapshot, bool) {
	if s.cache == nil {
		return cachedSnapshot{}, false
	}
	s.mu.RLock()
	loaded := s.snap.Version > 0
	s.mu.RUnlock()
	if loaded {
		return cachedSnapshot{}, false
	}

	var cached cachedSnapshot
	if err := s.cache.Get(ctx, SnapshotCacheKey, &cached); err != nil {
		s.logger.Debug("ticket snapshot cache unavailable", zap.Error(err))
		return cachedSnapshot{}, false
	}
	return cached, true
}

func (s *TicketSource) writeCache(ctx context.Context, value cachedSnapshot) {
	if s.cache == nil {
		return
	}
	setCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWriteTimeout)
	defer cancel()
	if err := s.cache.Set(setCtx, SnapshotCacheKey, value, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache ticket snapshot", zap.Error(err))
	}
}

func (s *TicketSource) store(tickets []domain.Ticket, refreshedAt time.Time, err error, stale bool) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{
		Tickets:     slices.Clone(tickets),
		Loading:     false,
		Err:         err,
		Version:     s.snap.Version + 1,
		Generation:  s.snap.Generation + 1,
		RefreshedAt: refreshedAt,
		Stale:       stale,
	}
	return s.snap.Version
}

func (s *TicketSource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Loading = false
	s.snap.Err = err
	s.snap.Generation++
}

func (s *TicketSource) publish(ctx context.Context, eventType events.EventType, payload any) {
	if err := s.dispatcher.Publish(ctx, events.Event{Type: eventType, Payload: payload}); err != nil {
		s.logger.Warn("ticket event handler failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

// Ping reports whether the source has tickets to serve.
func (s *TicketSource) Ping(ctx context.Context) error {
	snap := s.Snapshot()
	switch {
	case snap.Loading:
		return errors.New("ticket source still loading")
	case snap.Version == 0 && snap.Err != nil:
		return snap.Err
	default:
		return nil
	}
}
