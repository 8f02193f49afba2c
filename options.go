package recordkit

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// StoreOptions defines how a Store writes record files.
type StoreOptions struct {
	filePerm    os.FileMode
	atomicWrite bool
	logger      zerolog.Logger
}

// Option configures a Store.
type Option func(*StoreOptions)

// WithFilePerm sets the permission bits of files created by Save.
func WithFilePerm(perm os.FileMode) Option {
	return func(o *StoreOptions) {
		o.filePerm = perm
	}
}

// WithAtomicWrite makes Save write to a temporary file in the target
// directory and rename it over the destination.
func WithAtomicWrite(enabled bool) Option {
	return func(o *StoreOptions) {
		o.atomicWrite = enabled
	}
}

// WithLogger sets the logger used for per-operation debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *StoreOptions) {
		o.logger = logger
	}
}

func resolveStoreOptions(opts []Option) (StoreOptions, error) {
	out := defaultStoreOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}

	if err := out.validate(); err != nil {
		return StoreOptions{}, err
	}

	return out, nil
}

func (o StoreOptions) validate() error {
	if o.filePerm == 0 || o.filePerm&^os.ModePerm != 0 {
		return fmt.Errorf("invalid file permission %#o", uint32(o.filePerm))
	}

	return nil
}

func defaultStoreOptions() StoreOptions {
	return StoreOptions{
		filePerm:    DefaultFilePerm,
		atomicWrite: false,
		logger:      zerolog.Nop(),
	}
}
