package highscore

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/kv"
)

func TestKeys(t *testing.T) {
	expected := map[config.Difficulty]string{
		config.Easy:   "HIGH_Easy",
		config.Normal: "HIGH_Normal",
		config.Hard:   "HIGH_Hard",
	}
	for d, want := range expected {
		if got := Key(d); got != want {
			t.Errorf("Key(%s) = %q, expected %q", d, got, want)
		}
	}
}

func TestSubmitKeepsHigherStoredScore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	if err := store.Set(ctx, "HIGH_Easy", "150"); err != nil {
		t.Fatal(err)
	}

	table := New(store, nil)
	updated, err := table.Submit(ctx, config.Easy, 120)
	if err != nil || updated {
		t.Fatalf("Submit(120) = %v, %v, expected no update", updated, err)
	}

	if v, _, _ := store.Get(ctx, "HIGH_Easy"); v != "150" {
		t.Errorf("stored value = %q, expected 150", v)
	}
}

func TestSubmitUpdatesOnlyWhenGreater(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	table := New(store, nil)

	tests := []struct {
		score   int
		updated bool
		best    int
	}{
		{100, true, 100},
		{100, false, 100}, // equal is not an improvement
		{99, false, 100},
		{101, true, 101},
		{0, false, 101},
	}

	for i, tc := range tests {
		updated, err := table.Submit(ctx, config.Normal, tc.score)
		if err != nil {
			t.Fatalf("step %d: Submit() failed: %v", i, err)
		}
		if updated != tc.updated {
			t.Errorf("step %d: Submit(%d) updated = %v, expected %v", i, tc.score, updated, tc.updated)
		}
		if got := table.Get(ctx, config.Normal); got != tc.best {
			t.Errorf("step %d: best = %d, expected %d", i, got, tc.best)
		}
	}

	// Other difficulties are untouched
	if got := table.Get(ctx, config.Hard); got != 0 {
		t.Errorf("hard best = %d, expected 0", got)
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	ctx := context.Background()
	table := New(kv.NewMemory(), nil)
	rng := rand.New(rand.NewSource(7))

	prev := 0
	for i := 0; i < 500; i++ {
		score := rng.Intn(1000)
		updated, _ := table.Submit(ctx, config.Hard, score)
		best := table.Get(ctx, config.Hard)

		if best < prev {
			t.Fatalf("best decreased from %d to %d", prev, best)
		}
		if updated != (score > prev) {
			t.Fatalf("Submit(%d) with best %d: updated = %v", score, prev, updated)
		}
		prev = best
	}
}

func TestMalformedScoreCoercedToZero(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	table := New(store, nil)

	for _, raw := range []string{"abc", "", "-5", "12.5"} {
		_ = store.Set(ctx, "HIGH_Easy", raw)
		if got := table.Get(ctx, config.Easy); got != 0 {
			t.Errorf("Get() with stored %q = %d, expected 0", raw, got)
		}
	}

	// A malformed value is overwritten by any positive score
	updated, err := table.Submit(ctx, config.Easy, 1)
	if err != nil || !updated {
		t.Errorf("Submit(1) over malformed value = %v, %v", updated, err)
	}
}

type brokenStore struct {
	kv.Store
	failReads, failWrites bool
}

var errBroken = errors.New("broken")

func (b brokenStore) Get(ctx context.Context, key string) (string, bool, error) {
	if b.failReads {
		return "", false, errBroken
	}
	return b.Store.Get(ctx, key)
}

func (b brokenStore) Set(ctx context.Context, key, value string) error {
	if b.failWrites {
		return errBroken
	}
	return b.Store.Set(ctx, key, value)
}

func TestStorageFailures(t *testing.T) {
	ctx := context.Background()

	reads := New(brokenStore{Store: kv.NewMemory(), failReads: true}, nil)
	if got := reads.Get(ctx, config.Easy); got != 0 {
		t.Errorf("Get() on failing reads = %d, expected 0", got)
	}

	writes := New(brokenStore{Store: kv.NewMemory(), failWrites: true}, nil)
	updated, err := writes.Submit(ctx, config.Easy, 10)
	if updated || !errors.Is(err, errBroken) {
		t.Errorf("Submit() on failing writes = %v, %v", updated, err)
	}
}

func TestAll(t *testing.T) {
	ctx := context.Background()
	table := New(kv.NewMemory(), nil)
	_, _ = table.Submit(ctx, config.Hard, 42)

	all := table.All(ctx)
	if len(all) != 3 || all[config.Hard] != 42 || all[config.Easy] != 0 {
		t.Errorf("All() = %v", all)
	}
}
