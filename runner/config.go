package runner

import (
	"io"
	"os"

	"github.com/mcuadros/go-defaults"
	"github.com/sirupsen/logrus"
)

// Config controls how a Runner executes registered tests. Zero values
// are filled from the struct tags, so Config{} is a valid sequential
// configuration.
type Config struct {
	// MaxParallel bounds how many tests of one group run at the same
	// time. 1 means strictly sequential, in registration order.
	MaxParallel int `default:"1"`
	// Verbose enables debug logging of every test start and outcome.
	Verbose bool `default:"false"`
}

type options struct {
	cfg Config
	out io.Writer
	log *logrus.Logger
}

// Option configures a Runner. Use the With* helpers:
//
//	r := runner.New(
//	    runner.WithMaxParallel(4),
//	    runner.WithOutput(&buf),
//	)
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

func newOptions(opts ...Option) *options {
	o := &options{out: os.Stdout}
	defaults.SetDefaults(&o.cfg)
	for _, opt := range opts {
		opt.apply(o)
	}
	if o.cfg.MaxParallel < 1 {
		o.cfg.MaxParallel = 1
	}
	if o.log == nil {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		o.log = log
	}
	if o.cfg.Verbose {
		o.log.SetLevel(logrus.DebugLevel)
	} else {
		o.log.SetLevel(logrus.WarnLevel)
	}
	return o
}

// WithConfig replaces the whole configuration at once.
func WithConfig(cfg Config) Option {
	return optionFunc(func(o *options) {
		o.cfg = cfg
	})
}

// WithMaxParallel bounds in-group test parallelism.
func WithMaxParallel(n int) Option {
	return optionFunc(func(o *options) {
		o.cfg.MaxParallel = n
	})
}

// WithVerbose enables debug logging of test execution.
func WithVerbose() Option {
	return optionFunc(func(o *options) {
		o.cfg.Verbose = true
	})
}

// WithOutput redirects the human-readable report, which goes to stdout
// by default.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(o *options) {
		o.out = w
	})
}

// WithLogger supplies a preconfigured logger instead of the default
// stderr one. The Verbose switch still controls its level.
func WithLogger(log *logrus.Logger) Option {
	return optionFunc(func(o *options) {
		o.log = log
	})
}
