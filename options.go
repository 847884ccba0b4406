package wininf

import (
	"io"
	"log/slog"
)

// defaultBufferSize is the read size used per loop iteration. Large
// files stay bounded in memory regardless: completed lines are handed to
// the grammar after every chunk.
const defaultBufferSize = 1024

type config struct {
	bufferSize int
	fs         FileSystem
	log        *slog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		bufferSize: defaultBufferSize,
		fs:         DefaultFS(),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option is a functional option for configuring a parse.
type Option func(*config)

// WithBufferSize sets the read buffer size in bytes. Sizes below one are
// ignored.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithFileSystem sets a custom file system for ParseFile, allowing
// in-memory sources in tests.
func WithFileSystem(fsys FileSystem) Option {
	return func(c *config) {
		if fsys != nil {
			c.fs = fsys
		}
	}
}

// WithLogger sets a logger for debug traces (encoding decision, chunk
// sizes, section opens). The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
