package host

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/metalagman/recordkit"
)

// Names of the record commands.
const (
	CommandGreet        = "greet"
	CommandSaveJSONFile = "save_json_file"
	CommandLoadJSONFile = "load_json_file"
)

type greetArgs struct {
	Name *string `json:"name"`
}

type saveArgs struct {
	Path *string         `json:"path"`
	Data json.RawMessage `json:"data"`
}

type loadArgs struct {
	Path *string `json:"path"`
}

// NewRecordDispatcher returns a dispatcher with the record commands registered against store.
func NewRecordDispatcher(store *recordkit.Store, opts ...Option) (*Dispatcher, error) {
	d := NewDispatcher(opts...)
	if err := RegisterRecordCommands(d, store); err != nil {
		return nil, err
	}

	return d, nil
}

// RegisterRecordCommands registers greet, save_json_file and load_json_file on d.
func RegisterRecordCommands(d *Dispatcher, store *recordkit.Store) error {
	if store == nil {
		return errors.New("register record commands: store is nil")
	}

	commands := []struct {
		name    string
		handler Handler
	}{
		{name: CommandGreet, handler: greetHandler},
		{name: CommandSaveJSONFile, handler: saveHandler(store)},
		{name: CommandLoadJSONFile, handler: loadHandler(store)},
	}

	for _, c := range commands {
		if err := d.Register(c.name, c.handler); err != nil {
			return err
		}
	}

	return nil
}

func greetHandler(_ context.Context, raw json.RawMessage) (any, error) {
	var args greetArgs
	if err := decodeArgs(CommandGreet, raw, &args); err != nil {
		return nil, err
	}

	if args.Name == nil {
		return nil, missingKey(CommandGreet, "name")
	}

	return recordkit.Greet(*args.Name), nil
}

func saveHandler(store *recordkit.Store) Handler {
	return func(_ context.Context, raw json.RawMessage) (any, error) {
		var args saveArgs
		if err := decodeArgs(CommandSaveJSONFile, raw, &args); err != nil {
			return nil, err
		}

		if args.Path == nil {
			return nil, missingKey(CommandSaveJSONFile, "path")
		}

		if isNull(args.Data) {
			return nil, missingKey(CommandSaveJSONFile, "data")
		}

		rec, err := recordkit.DecodeRecord(args.Data)
		if err != nil {
			return nil, fmt.Errorf("%w for command %s: data: %w", ErrInvalidArgs, CommandSaveJSONFile, err)
		}

		if err := store.Save(*args.Path, rec); err != nil {
			return nil, err
		}

		return nil, nil
	}
}

func loadHandler(store *recordkit.Store) Handler {
	return func(_ context.Context, raw json.RawMessage) (any, error) {
		var args loadArgs
		if err := decodeArgs(CommandLoadJSONFile, raw, &args); err != nil {
			return nil, err
		}

		if args.Path == nil {
			return nil, missingKey(CommandLoadJSONFile, "path")
		}

		return store.Load(*args.Path)
	}
}

func decodeArgs(command string, raw json.RawMessage, dst any) error {
	if isNull(raw) {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w for command %s: %w", ErrInvalidArgs, command, err)
	}

	return nil
}

func missingKey(command, key string) error {
	return fmt.Errorf("%w for command %s: missing required key %s", ErrInvalidArgs, command, key)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
