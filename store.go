package recordkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/kjk/common/atomicfile"
)

// Store translates between a Record and its JSON file on disk.
// A Store holds no per-file state, each call opens and releases its own file.
type Store struct {
	opts StoreOptions
}

var defaultStore = &Store{opts: defaultStoreOptions()}

// NewStore constructs a Store with the given options.
func NewStore(opts ...Option) (*Store, error) {
	o, err := resolveStoreOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("resolve options: %w", err)
	}

	return &Store{opts: o}, nil
}

// Save writes rec to path as indented JSON, replacing any existing content.
// The parent directory must already exist.
func Save(path string, rec Record) error {
	return defaultStore.Save(path, rec)
}

// Load reads the record stored at path.
func Load(path string) (Record, error) {
	return defaultStore.Load(path)
}

// Save writes rec to path as indented JSON, replacing any existing content.
// The parent directory must already exist.
func (s *Store) Save(path string, rec Record) error {
	data, err := EncodeRecord(rec)
	if err != nil {
		s.opts.logger.Debug().Err(err).Str("path", path).Msg("encode record")

		return err
	}

	if err := s.write(path, data); err != nil {
		s.opts.logger.Debug().Err(err).Str("path", path).Msg("write record")

		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	s.opts.logger.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Bool("atomic", s.opts.atomicWrite).
		Msg("record saved")

	return nil
}

// Load reads the record stored at path. On failure the returned Record is zero.
func (s *Store) Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.opts.logger.Debug().Err(err).Str("path", path).Msg("read record")

		return Record{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if !utf8.Valid(data) {
		return Record{}, fmt.Errorf("%w: %s: %w", ErrIO, path, errNotUTF8)
	}

	rec, err := DecodeRecord(data)
	if err != nil {
		s.opts.logger.Debug().Err(err).Str("path", path).Msg("decode record")

		return Record{}, err
	}

	s.opts.logger.Debug().Str("path", path).Str("name", rec.Name).Msg("record loaded")

	return rec, nil
}

func (s *Store) write(path string, data []byte) error {
	if !s.opts.atomicWrite {
		return os.WriteFile(path, data, s.opts.filePerm)
	}

	return writeAtomically(path, data, s.opts.filePerm)
}

func writeAtomically(path string, data []byte, perm os.FileMode) error {
	w, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer w.RemoveIfNotClosed()

	if _, err := w.Write(data); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	// the temp file is created 0600
	return os.Chmod(path, perm)
}

// EncodeRecord renders rec with two-space indentation and no trailing newline.
// HTML characters are written as-is.
func EncodeRecord(rec Record) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeRecord checks data against the record schema and decodes it.
func DecodeRecord(data []byte) (Record, error) {
	if err := ValidateRecordJSON(data); err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return rec, nil
}
