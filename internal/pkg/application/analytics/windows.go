package analytics

import (
	"sync"

	"github.com/famcare/health-engine/pkg/types"

	"github.com/samber/lo"
)

// MaxWindowSize bounds the per user, per vital type rolling window.
// The oldest reading is evicted first.
const MaxWindowSize = 100

// WindowStore holds the in-memory rolling reading windows. It is
// process local and advisory, persisted baselines are the only cross
// instance source of truth.
type WindowStore struct {
	mu      sync.Mutex
	max     int
	windows map[string][]types.VitalReading
}

func NewWindowStore() *WindowStore {
	return &WindowStore{
		max:     MaxWindowSize,
		windows: map[string][]types.VitalReading{},
	}
}

func windowKey(userID, vitalType string) string {
	return userID + "_" + vitalType
}

// Append adds a reading to its window, evicting the oldest entry when
// the window is full, and returns a copy of the resulting window in
// arrival order.
func (w *WindowStore) Append(reading types.VitalReading) []types.VitalReading {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := windowKey(reading.UserID, reading.Type)

	window := append(w.windows[key], reading)
	if len(window) > w.max {
		window = window[len(window)-w.max:]
	}
	w.windows[key] = window

	return copyOf(window)
}

func (w *WindowStore) Window(userID, vitalType string) []types.VitalReading {
	w.mu.Lock()
	defer w.mu.Unlock()

	return copyOf(w.windows[windowKey(userID, vitalType)])
}

func (w *WindowStore) Latest(userID, vitalType string) (types.VitalReading, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	window := w.windows[windowKey(userID, vitalType)]
	if len(window) == 0 {
		return types.VitalReading{}, false
	}

	return window[len(window)-1], true
}

// VitalTypes returns the vital types a user has readings for.
func (w *WindowStore) VitalTypes(userID string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	vitalTypes := make([]string, 0)

	for _, window := range w.windows {
		if len(window) > 0 && window[0].UserID == userID {
			vitalTypes = append(vitalTypes, window[0].Type)
		}
	}

	return lo.Uniq(vitalTypes)
}

func copyOf(window []types.VitalReading) []types.VitalReading {
	out := make([]types.VitalReading, len(window))
	copy(out, window)
	return out
}
