package bnb

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/greedy"
)

// Initializer completes a copy of the root embedding in place and returns
// the insertions it made. It seeds the incumbent when UseGreedyInit is set.
type Initializer func(em *embedding.Embedding) (embedding.InsertionSequence, error)

// Option configures the collaborators of one BranchAndBound call.
type Option func(*controller)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *controller) { c.log = l }
}

// WithObserver installs an event hook. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(c *controller) {
		if o != nil {
			c.obs = o
		}
	}
}

// WithInitializer replaces greedy.Embed as the incumbent seed.
// Panics if fn is nil.
func WithInitializer(fn Initializer) Option {
	if fn == nil {
		panic("bnb: WithInitializer(nil)")
	}

	return func(c *controller) { c.init = fn }
}

// WithClock replaces time.Now, for tests. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bnb: WithClock(nil)")
	}

	return func(c *controller) { c.now = now }
}

func defaultController() *controller {
	return &controller{
		log:  zerolog.Nop(),
		obs:  NoopObserver{},
		init: greedy.Embed,
		now:  time.Now,
	}
}
