package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"station/internal/pkg/errs"

	"github.com/pkg/errors"
)

// Schema describes the CSV document of one table.
//
// Layout:
//
//	<name>,<version>
//	<column>,<column>,...
//	<record fields>          most recent first
//	...
type Schema[K comparable, R Record[K]] struct {
	Name    string
	Version int
	Columns []string
	Decode  func(fields []string) (R, error)
}

// Marshal encodes t in iteration order.
func (s Schema[K, R]) Marshal(t *Table[K, R]) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{s.Name, strconv.Itoa(s.Version)}); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := w.Write(s.Columns); err != nil {
		return nil, errors.WithStack(err)
	}
	for _, r := range t.All() {
		if err := w.Write(r.Fields()); err != nil {
			return nil, errors.Wrapf(err, "write %s record %v", s.Name, r.Key())
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a document written by Marshal. Empty input yields an
// empty table. A foreign schema name or another version is rejected with an
// errs.VersionIsInvalidError.
func (s Schema[K, R]) Unmarshal(data []byte) (*Table[K, R], error) {
	t := New[K, R](s.Name)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return t, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s header", s.Name)
	}
	if err = s.checkHeader(header); err != nil {
		return nil, err
	}

	columns, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s columns", s.Name)
	}
	if !slices.Equal(columns, s.Columns) {
		return nil, errs.NewVersionIsInvalidErrorWithCause(s.Name,
			fmt.Errorf("columns %v do not match %v", columns, s.Columns))
	}

	var records []R
	line := 2
	for {
		fields, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		line++

		if len(fields) != len(s.Columns) {
			return nil, errors.Errorf("invalid %s record at line %d: expected %d columns, got %d",
				s.Name, line, len(s.Columns), len(fields))
		}

		r, decodeErr := s.Decode(fields)
		if decodeErr != nil {
			return nil, errors.Wrapf(decodeErr, "invalid %s record at line %d", s.Name, line)
		}
		records = append(records, r)
	}

	// The document lists the newest record first; insert oldest first so the
	// reloaded table iterates in the same order.
	for i := len(records) - 1; i >= 0; i-- {
		if err = t.Insert(records[i]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (s Schema[K, R]) checkHeader(header []string) error {
	if len(header) != 2 || header[0] != s.Name {
		return errs.NewVersionIsInvalidErrorWithCause(s.Name, fmt.Errorf("unexpected header %v", header))
	}

	version, err := strconv.Atoi(header[1])
	if err != nil {
		return errs.NewVersionIsInvalidErrorWithCause(s.Name, err)
	}
	if version != s.Version {
		return errs.NewVersionIsInvalidErrorWithCause(s.Name, fmt.Errorf("got %d, want %d", version, s.Version))
	}
	return nil
}
