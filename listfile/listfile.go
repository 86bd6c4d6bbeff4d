// Package listfile saves lists to files and loads them back.
//
// The file format is plain text holding one decimal integer per line, from the
// front of the list to the back, with no header nor trailer. Loading is more
// lenient than saving: values may be separated by any white space, and tokens
// which are not integers are skipped.
package listfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/sllist/sllist/list"
)

var (
	// ErrNoValues is returned when loading a list from a source which does not
	// contain a single integer.
	ErrNoValues = errors.New("listfile: no integer values found")
)

// Encode writes the values of l to w, one per line.
//
// Encoding an empty list writes nothing and returns an error wrapping
// list.ErrEmpty.
func Encode(w io.Writer, l *list.List) error {
	if l.Empty() {
		return fmt.Errorf("listfile: encode: %w", list.ErrEmpty)
	}

	var b []byte
	for n := l.Front(); n != nil; n = n.Next() {
		b = strconv.AppendInt(b[:0], int64(n.Value), 10)
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the values of l to the file at path, creating it or truncating
// it if it already existed.
//
// Saving an empty list returns an error wrapping list.ErrEmpty and leaves the
// file untouched.
func Save(l *list.List, path string) (err error) {
	if l.Empty() {
		return fmt.Errorf("listfile: save %s: %w", path, list.ErrEmpty)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("listfile: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("listfile: save %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, l); err != nil {
		return fmt.Errorf("listfile: save %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("listfile: save %s: %w", path, err)
	}
	return nil
}

// Decode reads white space separated integers from r and returns a list
// holding them in the order they were read.
//
// Tokens which do not parse as integers are skipped, whatever their length. If
// no integers were found, the function returns ErrNoValues.
func Decode(r io.Reader) (*list.List, error) {
	s := bufio.NewScanner(r)
	s.Split(new(wordSplitter).split)

	values := []int{}
	for s.Scan() {
		v, err := strconv.Atoi(s.Text())
		if err != nil {
			continue
		}
		values = append(values, v)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("listfile: decode: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	return list.FromSlice(values), nil
}

// maxTokenLen bounds the length of tokens returned by wordSplitter. The
// longest int, "-9223372036854775808", fits with room to spare.
const maxTokenLen = 64

// wordSplitter is a bufio.SplitFunc like bufio.ScanWords, except that it drops
// tokens longer than maxTokenLen instead of letting the scanner fail with
// bufio.ErrTooLong.
type wordSplitter struct {
	skipping bool
}

func (w *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if w.skipping {
		i := bytes.IndexFunc(data, unicode.IsSpace)
		if i < 0 {
			return len(data), nil, nil
		}
		w.skipping = false
		if i > 0 {
			return i, nil, nil
		}
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if advance == 0 && token == nil && err == nil && len(data) >= maxTokenLen {
		// The token at the start of data is already too long to be an int,
		// discard it up to the next white space.
		w.skipping = true
		return len(data), nil, nil
	}
	return advance, token, err
}

// Load reads the file at path and returns a list of the integers it contains.
func Load(path string) (*list.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("listfile: load %s: %w", path, err)
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("listfile: load %s: %w", path, err)
	}
	return l, nil
}
