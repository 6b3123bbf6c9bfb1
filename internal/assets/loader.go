package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// TileName returns the file name of the sprite for a brick. Rows and
// columns are 1-based in file names.
func TileName(skin string, col, row int) string {
	return fmt.Sprintf("imgs/%s_%d_%d.png", skin, row+1, col+1)
}

// Options configures a Loader.
type Options struct {
	Concurrency int
	LiveSkin    string // Sprites shown while a brick stands
	DeadSkin    string // Sprites swapped in when a brick dies
	Logger      *log.Logger
}

// Progress counts sprite requests for the current game.
type Progress struct {
	Requested int
	Loaded    int
	Failed    int
}

// Pending returns the number of requests still in flight.
func (p Progress) Pending() int {
	return p.Requested - p.Loaded - p.Failed
}

// Done reports whether every request has finished.
func (p Progress) Done() bool {
	return p.Pending() <= 0
}

type tile struct {
	col, row int
	skin     string
	seq      uint64
}

// Loader fetches sprites in the background and stores them in a Cache.
// Requests never block the caller; failures are logged and leave whatever
// the cache already held.
type Loader struct {
	src    Source
	cache  *Cache
	logger *log.Logger
	limit  int
	live   string
	dead   string

	wg sync.WaitGroup

	mu       sync.Mutex
	gen      uint64            // Bumped on Restart; results from older generations are dropped
	seq      uint64            // Request counter
	stored   map[string]uint64 // Sequence of the sprite in the cache per brick; older results never overwrite it
	progress Progress
}

// NewLoader creates a loader that fills cache from src.
func NewLoader(src Source, cache *Cache, opts Options) *Loader {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Loader{
		src:    src,
		cache:  cache,
		logger: opts.Logger.WithPrefix("assets"),
		limit:  opts.Concurrency,
		live:   opts.LiveSkin,
		dead:   opts.DeadSkin,
		stored: make(map[string]uint64),
	}
}

// Cache returns the cache the loader writes to.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Prefetch requests every tile of a cols x rows grid in skin.
func (l *Loader) Prefetch(ctx context.Context, cols, rows int, skin string) {
	tiles := make([]tile, 0, cols*rows)
	for c := range cols {
		for r := range rows {
			tiles = append(tiles, tile{col: c, row: r, skin: skin})
		}
	}
	l.dispatch(ctx, tiles)
}

// Swap requests one tile in skin. It replaces the cached sprite once decoded.
func (l *Loader) Swap(ctx context.Context, col, row int, skin string) {
	l.dispatch(ctx, []tile{{col: col, row: row, skin: skin}})
}

// Restart forgets every sprite and prefetches the live skin again.
// In-flight requests from before the restart are discarded when they land.
func (l *Loader) Restart(ctx context.Context, cols, rows int) {
	l.mu.Lock()
	l.gen++
	l.progress = Progress{}
	clear(l.stored)
	l.cache.Clear()
	l.mu.Unlock()

	l.logger.Debug("restarting sprite pack", "cols", cols, "rows", rows, "skin", l.live)
	l.Prefetch(ctx, cols, rows, l.live)
}

// BreakHook returns a callback that swaps a dying brick to the dead skin.
func (l *Loader) BreakHook(ctx context.Context) func(col, row int) {
	return func(col, row int) {
		l.Swap(ctx, col, row, l.dead)
	}
}

// ResetHook returns a callback that restarts the pack for a new game.
func (l *Loader) ResetHook(ctx context.Context, cols, rows int) func() {
	return func() {
		l.Restart(ctx, cols, rows)
	}
}

// Wait blocks until every dispatched request has finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Progress returns request counts for the current generation.
func (l *Loader) Progress() Progress {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.progress
}

func (l *Loader) dispatch(ctx context.Context, tiles []tile) {
	if len(tiles) == 0 {
		return
	}

	l.mu.Lock()
	gen := l.gen
	for i := range tiles {
		l.seq++
		tiles[i].seq = l.seq
	}
	l.progress.Requested += len(tiles)
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(l.limit)
		for _, t := range tiles {
			g.Go(func() error {
				return l.fetch(gctx, gen, t)
			})
		}
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			l.logger.Warn("sprite batch stopped", "err", err)
		}
	}()
}

// fetch loads one tile. Only cancellation is returned as an error, so one
// bad sprite does not stop the rest of the batch.
func (l *Loader) fetch(ctx context.Context, gen uint64, t tile) error {
	name := TileName(t.skin, t.col, t.row)

	sprite, err := l.load(ctx, name)
	if err != nil {
		l.finish(gen, t, Sprite{}, false)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		l.logger.Warn("sprite unavailable", "name", name, "err", err)
		return nil
	}

	if l.finish(gen, t, sprite, true) {
		l.logger.Debug("sprite loaded", "name", name, "hex", sprite.Hex)
	}
	return nil
}

func (l *Loader) load(ctx context.Context, name string) (Sprite, error) {
	rc, err := l.src.Open(ctx, name)
	if err != nil {
		return Sprite{}, err
	}
	defer rc.Close()
	return DecodeSprite(name, rc)
}

// finish records a result. It returns false when the result belongs to an
// earlier generation and was dropped. A failure leaves the brick's slot
// alone, so a slower older request can still fill it.
func (l *Loader) finish(gen uint64, t tile, sprite Sprite, ok bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		return false
	}
	if !ok {
		l.progress.Failed++
		return true
	}
	l.progress.Loaded++
	key := Key(t.col, t.row)
	if t.seq > l.stored[key] {
		l.stored[key] = t.seq
		l.cache.Put(t.col, t.row, sprite)
	}
	return true
}
