// Package topic picks the topic of the day.
package topic

import (
	"errors"
	"time"
)

// ErrNoTopic is returned when no topics are configured.
var ErrNoTopic = errors.New("topic: no topics configured")

// ForDate rotates through core topics by day of month. Every 4th day a
// trending topic takes the slot instead, when trending topics exist.
func ForDate(t time.Time, core, trending []string) (string, error) {
	if len(core) == 0 {
		return "", ErrNoTopic
	}

	day := t.Day()
	if day%4 == 0 && len(trending) > 0 {
		return trending[(day/4)%len(trending)], nil
	}
	return core[day%len(core)], nil
}
