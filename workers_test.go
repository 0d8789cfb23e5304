package md2xlsx

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs, MinWorkers), MaxWorkers),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveWorkers(tt.workers)
			if got != tt.want {
				t.Errorf("ResolveWorkers(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolveWorkers_Bounds(t *testing.T) {
	t.Parallel()

	t.Run("minimum is 1", func(t *testing.T) {
		t.Parallel()

		got := ResolveWorkers(0)
		if got < MinWorkers {
			t.Errorf("ResolveWorkers(0) = %d, should be at least %d", got, MinWorkers)
		}
	})

	t.Run("maximum is 8", func(t *testing.T) {
		t.Parallel()

		got := ResolveWorkers(0)
		if got > MaxWorkers {
			t.Errorf("ResolveWorkers(0) = %d, should be at most %d", got, MaxWorkers)
		}
	})

	t.Run("explicit can exceed max", func(t *testing.T) {
		t.Parallel()

		got := ResolveWorkers(16)
		if got != 16 {
			t.Errorf("ResolveWorkers(16) = %d, want 16", got)
		}
	})
}

func TestResolveWorkers_NegativeWorkers(t *testing.T) {
	t.Parallel()

	// Negative workers should be treated as 0 (auto-calculate)
	got := ResolveWorkers(-5)

	if got < MinWorkers || got > MaxWorkers {
		t.Errorf("ResolveWorkers(-5) = %d, should be between %d and %d", got, MinWorkers, MaxWorkers)
	}
}
