package analytics

import (
	"strings"
	"sync"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
)

const (
	DefaultThrottleCooldown   = 30 * time.Minute
	DefaultThrottleMaxPerHour = 5

	hourBucketLayout = "2006010215"
)

// throttle suppresses repeated alerts per (user, alertType). State is
// in-memory only, horizontally scaled instances each make their own
// advisory throttle decisions.
type throttle struct {
	mu  sync.Mutex
	clk clock.Clock

	lastFired map[string]time.Time
	perHour   map[string]int
}

func newThrottle(clk clock.Clock) *throttle {
	return &throttle{
		clk:       clk,
		lastFired: map[string]time.Time{},
		perHour:   map[string]int{},
	}
}

// shouldThrottle suppresses when the same (user, alertType) fired
// within the cooldown window, or when the wall-clock hour bucket has
// reached its cap. Otherwise the attempt is recorded and allowed.
func (t *throttle) shouldThrottle(userID, alertType string, cooldown time.Duration, maxPerHour int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clk.Now()
	key := userID + "_" + alertType
	hourSuffix := "_" + now.Format(hourBucketLayout)
	hourKey := key + hourSuffix

	// the cap only ever consults the current hour, buckets from
	// earlier hours are dropped as we go
	for k := range t.perHour {
		if !strings.HasSuffix(k, hourSuffix) {
			delete(t.perHour, k)
		}
	}

	if last, ok := t.lastFired[key]; ok && now.Sub(last) < cooldown {
		return true
	}

	if t.perHour[hourKey] >= maxPerHour {
		return true
	}

	t.lastFired[key] = now
	t.perHour[hourKey]++

	return false
}

func (t *throttle) reset(userID, alertType string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := userID + "_" + alertType
	delete(t.lastFired, key)

	for hourKey := range t.perHour {
		if len(hourKey) > len(key) && hourKey[:len(key)+1] == key+"_" {
			delete(t.perHour, hourKey)
		}
	}
}
