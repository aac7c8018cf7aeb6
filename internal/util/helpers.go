package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Clamp constrains a value to a range. An inverted range (max < min)
// collapses to min so callers clamping against len-1 stay non-negative.
func Clamp(value, min, max int) int {
	if max < min {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// GenerateID returns a unique identifier for tasks and locations.
// Random bytes when available, timestamp fallback otherwise.
func GenerateID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d-%d", time.Now().UnixNano(), time.Now().Unix()%997)
	}
	return hex.EncodeToString(b[:])
}

// DayKey formats a time as the YYYY-MM-DD key used by daily caches.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
