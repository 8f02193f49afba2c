// Package host exposes recordkit operations as named commands for an external dispatcher.
//
// Arguments and results travel as JSON. Every failure leaves Invoke as a
// CommandError, which carries only the underlying error text.
package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrUnknownCommand indicates no handler is registered under the requested name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrDuplicateCommand indicates a handler is already registered under the name.
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrInvalidArgs indicates the command arguments could not be decoded.
	ErrInvalidArgs = errors.New("invalid args")
)

// Handler runs a single command with JSON-encoded arguments.
// The returned value is marshalled to JSON by the Dispatcher.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// CommandError is the flattened error returned to callers of Invoke.
type CommandError string

func (e CommandError) Error() string {
	return string(e)
}

// Dispatcher routes command names to handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	logger   zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to record command invocations.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d
}

// Register adds a handler under name.
func (d *Dispatcher) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("register: command name is empty")
	}

	if h == nil {
		return fmt.Errorf("register %s: handler is nil", name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}

	d.handlers[name] = h

	return nil
}

// Commands lists the registered command names in sorted order.
func (d *Dispatcher) Commands() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Invoke runs the named command and returns its JSON-encoded result.
// A non-nil error is always a CommandError.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	start := time.Now()

	out, err := d.invoke(ctx, name, args)

	if err != nil {
		d.logger.Warn().
			Str("command", name).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("command failed")

		return nil, CommandError(err.Error())
	}

	d.logger.Debug().
		Str("command", name).
		Dur("elapsed", time.Since(start)).
		Msg("command done")

	return out, nil
}

func (d *Dispatcher) invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	d.mu.RLock()
	h, ok := d.handlers[name]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := h(ctx, args)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal %s result: %w", name, err)
	}

	return data, nil
}
