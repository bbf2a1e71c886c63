package extract

import "time"

type config struct {
	now func() time.Time
}

func defaultConfig() config {
	return config{now: time.Now}
}

// Option configures an extractor.
type Option func(*config)

// WithClock overrides the time source used for temporal windows.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
