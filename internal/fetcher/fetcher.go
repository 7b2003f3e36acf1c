// Package fetcher owns the grid snapshot for the currently mounted
// (area, kind) pair and keeps it fresh with a background poll.
package fetcher

import (
	"context"
	"sync"
	"time"

	"inventory_viewer/internal/grid"
	"inventory_viewer/internal/remote"

	"github.com/rs/zerolog/log"
)

// DefaultInterval is how often a mounted view refreshes its grid.
const DefaultInterval = 30 * time.Second

// Fetcher fetches and holds one grid at a time. The initial fetch of a
// mount is synchronous and surfaces its error; background refreshes are
// silent, keeping the previous snapshot on failure. A generation counter
// makes sure a response that arrives after Unmount or a newer Mount is
// discarded instead of applied.
type Fetcher struct {
	source   remote.Source
	interval time.Duration

	mu     sync.Mutex
	gen    uint64
	snap   *grid.Grid
	cancel context.CancelFunc
}

func New(source remote.Source, interval time.Duration) *Fetcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Fetcher{source: source, interval: interval}
}

// Mount switches the fetcher to (area, kind): any previous poll is
// cancelled, the initial grid is fetched synchronously, and on success a
// background refresh loop starts. On failure no grid is held and the
// error is returned; the caller retries by mounting again.
func (f *Fetcher) Mount(ctx context.Context, area string, kind grid.Kind) error {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.snap = nil
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mu.Unlock()

	log.Debug().
		Str("area", area).
		Str("type", string(kind)).
		Msg("Mounting grid view")

	g, err := f.source.Fetch(ctx, area, kind)
	if err != nil {
		log.Error().Err(err).
			Str("area", area).
			Str("type", string(kind)).
			Msg("Initial grid fetch failed")
		return err
	}

	pollCtx, cancel := context.WithCancel(context.Background())

	f.mu.Lock()
	if gen != f.gen {
		// superseded while the initial fetch was in flight
		f.mu.Unlock()
		cancel()
		return nil
	}
	f.snap = &g
	f.cancel = cancel
	f.mu.Unlock()

	go f.poll(pollCtx, gen, area, kind)
	return nil
}

// Unmount stops the background poll and drops the held grid. Responses
// still in flight are discarded by the generation check.
func (f *Fetcher) Unmount() {
	f.mu.Lock()
	f.gen++
	f.snap = nil
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mu.Unlock()
}

// Snapshot returns the held grid, if any.
func (f *Fetcher) Snapshot() (grid.Grid, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.snap == nil {
		return grid.Grid{}, false
	}
	return *f.snap, true
}

func (f *Fetcher) poll(ctx context.Context, gen uint64, area string, kind grid.Kind) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		g, err := f.source.Fetch(ctx, area, kind)
		if err != nil {
			// Stale data beats an interrupted view: keep the previous
			// snapshot and say nothing to the user.
			log.Debug().Err(err).
				Str("area", area).
				Str("type", string(kind)).
				Msg("Background refresh failed, keeping previous grid")
			continue
		}

		f.mu.Lock()
		if gen == f.gen {
			f.snap = &g
		} else {
			log.Debug().
				Str("area", area).
				Str("type", string(kind)).
				Msg("Discarding refresh result for a superseded mount")
		}
		f.mu.Unlock()
	}
}
