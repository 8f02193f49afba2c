package recordkit

import "errors"

var (
	// ErrIO indicates the record file could not be read or written.
	ErrIO = errors.New("io error")
	// ErrEncode indicates the record could not be encoded as JSON.
	ErrEncode = errors.New("encode error")
	// ErrDecode indicates the file content is not valid JSON or does not match the record shape.
	ErrDecode = errors.New("decode error")

	errNotUTF8 = errors.New("stream did not contain valid UTF-8")
)
