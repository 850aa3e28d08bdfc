// Package snapshot persists the active workspace layout in the background.
package snapshot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/logging"
)

const (
	defaultRetries    = 2
	defaultRetryDelay = 50 * time.Millisecond
)

// Service handles debounced layout snapshots.
type Service struct {
	snapshotUC *usecase.SnapshotLayoutUseCase
	provider   port.LayoutProvider
	interval   time.Duration
	retries    int
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
	// saveMu serializes writes so a debounced save and SaveNow never interleave.
	saveMu sync.Mutex
}

// NewService creates a new snapshot service. An interval of zero or less
// saves on the next tick after every change.
func NewService(
	snapshotUC *usecase.SnapshotLayoutUseCase,
	provider port.LayoutProvider,
	intervalMs int,
) *Service {
	if intervalMs < 0 {
		intervalMs = 0
	}
	return &Service{
		snapshotUC: snapshotUC,
		provider:   provider,
		interval:   time.Duration(intervalMs) * time.Millisecond,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

// Start enables debounced saves. MarkDirty before Start only records the change.
func (s *Service) Start(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "snapshot")
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
	if s.dirty {
		s.scheduleLocked()
	}
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.ctx = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the layout has changed.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	if s.ctx != nil {
		s.scheduleLocked()
	}
}

func (s *Service) scheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	ctx := s.ctx
	s.timer = time.AfterFunc(s.interval, func() {
		if ctx.Err() != nil {
			return
		}
		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout snapshot")
		}
	})
}

// SaveNow forces an immediate save when there are unsaved changes.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}
	return s.saveSnapshot(ctx)
}

// Dirty reports whether changes are waiting to be saved.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	state := s.provider.CurrentLayout()
	if state == nil || state.WorkspaceID == "" {
		return nil
	}

	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				s.markDirtyAfterFailure()
				return ctx.Err()
			case <-time.After(s.retryDelay):
			}
			logging.FromContext(ctx).Debug().
				Int("attempt", attempt).
				Str("workspace_id", string(state.WorkspaceID)).
				Msg("retrying layout snapshot")
		}

		err = s.snapshotUC.Save(ctx, state)
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			break
		}
	}

	s.markDirtyAfterFailure()
	return fmt.Errorf("snapshot workspace %s: %w", state.WorkspaceID, err)
}

// markDirtyAfterFailure keeps the change pending so the next save retries it.
func (s *Service) markDirtyAfterFailure() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// isTransient reports SQLite lock contention.
func isTransient(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "sqlite_busy") ||
		strings.Contains(msg, "database table is locked")
}
