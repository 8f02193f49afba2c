package host

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, args json.RawMessage) (any, error) {
	return map[string]any{"args": args}, nil
}

func TestRegister(t *testing.T) {
	d := NewDispatcher()

	require.NoError(t, d.Register("b", echoHandler))
	require.NoError(t, d.Register("a", echoHandler))

	err := d.Register("a", echoHandler)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCommand)

	assert.Error(t, d.Register("", echoHandler))
	assert.Error(t, d.Register("c", nil))

	assert.Equal(t, []string{"a", "b"}, d.Commands())
}

func TestInvokeUnknownCommand(t *testing.T) {
	d := NewDispatcher()

	out, err := d.Invoke(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.Nil(t, out)

	var cmdErr CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "unknown command: missing", string(cmdErr))
}

func TestInvokeFlattensHandlerErrors(t *testing.T) {
	sentinel := errors.New("boom")
	d := NewDispatcher()
	require.NoError(t, d.Register("fail", func(context.Context, json.RawMessage) (any, error) {
		return nil, sentinel
	}))

	_, err := d.Invoke(context.Background(), "fail", nil)
	require.Error(t, err)
	assert.Equal(t, CommandError("boom"), err)
	assert.NotErrorIs(t, err, sentinel)
}

func TestInvokeMarshalsResult(t *testing.T) {
	d := NewDispatcher()
	require.NoError(t, d.Register("echo", echoHandler))
	require.NoError(t, d.Register("nothing", func(context.Context, json.RawMessage) (any, error) {
		return nil, nil
	}))

	out, err := d.Invoke(context.Background(), "echo", json.RawMessage(`{"k":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"args":{"k":1}}`, string(out))

	out, err = d.Invoke(context.Background(), "nothing", nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestInvokeUnmarshalableResult(t *testing.T) {
	d := NewDispatcher()
	require.NoError(t, d.Register("chan", func(context.Context, json.RawMessage) (any, error) {
		return make(chan int), nil
	}))

	_, err := d.Invoke(context.Background(), "chan", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal chan result")
}

func TestInvokeCancelledContext(t *testing.T) {
	called := false
	d := NewDispatcher()
	require.NoError(t, d.Register("noop", func(context.Context, json.RawMessage) (any, error) {
		called = true
		return nil, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Invoke(ctx, "noop", nil)
	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, context.Canceled.Error(), err.Error())
}

func TestInvokeLogs(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, d.Register("echo", echoHandler))

	_, err := d.Invoke(context.Background(), "echo", nil)
	require.NoError(t, err)
	_, err = d.Invoke(context.Background(), "missing", nil)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"command":"echo"`)
	assert.Contains(t, out, `"message":"command done"`)
	assert.Contains(t, out, `"message":"command failed"`)
}
