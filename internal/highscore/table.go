// Package highscore keeps the best score per difficulty in a kv.Store under
// HIGH_<Difficulty> keys. Stored values only ever grow.
package highscore

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/kv"
)

// Key returns the storage key for a difficulty, e.g. HIGH_Easy.
func Key(d config.Difficulty) string {
	return "HIGH_" + d.String()
}

// Table reads and updates best scores. Persistence is best effort: read
// failures count as no saved score and write failures are logged, not retried.
type Table struct {
	store  kv.Store
	logger *log.Logger

	// Serializes read-compare-write so concurrent submits cannot lower a score.
	mu sync.Mutex
}

// New creates a table over store. A nil logger discards warnings.
func New(store kv.Store, logger *log.Logger) *Table {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Table{store: store, logger: logger}
}

// Get returns the stored best for d, or 0 if missing, unreadable or malformed.
func (t *Table) Get(ctx context.Context, d config.Difficulty) int {
	raw, ok, err := t.store.Get(ctx, Key(d))
	if err != nil {
		t.logger.Warn("high score read failed", "difficulty", d, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return parseScore(raw)
}

// All returns the best score of every difficulty.
func (t *Table) All(ctx context.Context) map[config.Difficulty]int {
	scores := make(map[config.Difficulty]int, 3)
	for _, d := range config.Difficulties() {
		scores[d] = t.Get(ctx, d)
	}
	return scores
}

// Submit stores score for d iff it is strictly greater than the stored best.
// It reports whether the stored value changed. A write failure is logged
// and returned; the caller is free to ignore it.
func (t *Table) Submit(ctx context.Context, d config.Difficulty, score int) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("highscore: invalid difficulty %d", int(d))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if score <= t.Get(ctx, d) {
		return false, nil
	}

	if err := t.store.Set(ctx, Key(d), strconv.Itoa(score)); err != nil {
		t.logger.Warn("high score write failed", "difficulty", d, "score", score, "error", err)
		return false, fmt.Errorf("highscore: save %s: %w", d, err)
	}

	t.logger.Info("new high score", "difficulty", d, "score", score)
	return true, nil
}

// parseScore coerces a stored value to a non-negative int, 0 when malformed.
func parseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
