package arena

import "go.uber.org/zap"

type config struct {
	wordBytes int
	maxWords  uint64
	id        string
	log       *zap.SugaredLogger
}

// Option configures a Region at construction time.
type Option func(*config)

// WithWordBytes sets the width of every slot in the region. The width must
// be at least MinWordBytes and defaults to DefaultWordBytes.
func WithWordBytes(wordBytes int) Option {
	return func(c *config) {
		c.wordBytes = wordBytes
	}
}

// WithWordCapacity caps the region at maxWords slots. Extend and Append fail
// with ErrCapacityExceeded rather than grow beyond the cap. A zero cap means
// the region grows without bound.
func WithWordCapacity(maxWords uint64) Option {
	return func(c *config) {
		c.maxWords = maxWords
	}
}

// WithID sets the region identity. When absent a fresh uuid is generated.
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithLogger enables debug level operation traces on the region. Tracing is
// far too noisy for services but it is very handy for integration tests.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *config) {
		c.log = log
	}
}
