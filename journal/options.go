package journal

import (
	"github.com/rs/zerolog"

	"github.com/rustyeddy/tradelog/id"
)

type options struct {
	ids   *id.Generator
	rules Rules
	log   zerolog.Logger
}

// Option configures a store.
type Option func(*options)

// WithIDGenerator sets the generator used for new trade ids.
func WithIDGenerator(g *id.Generator) Option {
	return func(o *options) { o.ids = g }
}

// WithRules sets the validation rules applied on add and update.
func WithRules(r Rules) Option {
	return func(o *options) { o.rules = r }
}

// WithRequireExitAfterEntry turns on the exit-after-entry rule.
func WithRequireExitAfterEntry() Option {
	return func(o *options) { o.rules.RequireExitAfterEntry = true }
}

// WithLogger sets the logger mutations are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{
		ids: id.NewGenerator(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
