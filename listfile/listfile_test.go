package listfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
	"testing/quick"

	"github.com/sllist/sllist/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")

	require.NoError(t, Save(list.FromSlice([]int{7, 2, 9}), path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7\n2\n9\n", string(b))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "-7-2-9", l.String())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")

	f := func(values []int) bool {
		if len(values) == 0 {
			return true
		}
		if err := Save(list.FromSlice(values), path); err != nil {
			t.Log(err)
			return false
		}
		l, err := Load(path)
		if err != nil {
			t.Log(err)
			return false
		}
		return slices.Equal(l.Values(), values)
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSaveEmptyListLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0644))

	err := Save(new(list.List), path)
	assert.ErrorIs(t, err, list.ErrEmpty)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(b))
}

func TestSaveTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("10\n20\n30\n40\n"), 0644))

	require.NoError(t, Save(list.FromSlice([]int{5}), path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5\n", string(b))
}

func TestSaveOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "list.txt")

	err := Save(list.FromSlice([]int{1}), path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "listfile: save "+path+": ")
}

func TestLoadOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	l, err := Load(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "listfile: load "+path+": ")
	assert.Nil(t, l)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	l, err := Load(path)
	assert.ErrorIs(t, err, ErrNoValues)
	assert.Nil(t, l)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		scenario string
		input    string
		expect   []int
	}{
		{
			scenario: "one integer per line",
			input:    "5\n3\n8\n1\n",
			expect:   []int{5, 3, 8, 1},
		},

		{
			scenario: "integers separated by other white space",
			input:    "5 3\t8\r\n\n  1",
			expect:   []int{5, 3, 8, 1},
		},

		{
			scenario: "tokens which are not integers are skipped",
			input:    "1\nabc\n2\n3.5\n12abc\n-4\n+6\n",
			expect:   []int{1, 2, -4, 6},
		},

		{
			scenario: "tokens larger than the scanner buffer are skipped",
			input:    "1\n" + strings.Repeat("x", 70000) + "\n2\n",
			expect:   []int{1, 2},
		},

		{
			scenario: "the tail of a skipped token is not read as an integer",
			input:    "1 " + strings.Repeat("x", 100) + "42 2",
			expect:   []int{1, 2},
		},

		{
			scenario: "integers too large for an int are skipped",
			input:    "3 " + strings.Repeat("9", 70000) + " 4\n",
			expect:   []int{3, 4},
		},

		{
			scenario: "a long token at the end of the input is skipped",
			input:    "5\n   " + strings.Repeat("z", 70000),
			expect:   []int{5},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			l, err := Decode(strings.NewReader(test.input))
			require.NoError(t, err)
			assert.Equal(t, test.expect, l.Values())
		})
	}
}

func TestDecodeOneByteAtATime(t *testing.T) {
	input := "1 " + strings.Repeat("x", 200) + " 2\n" + strings.Repeat("5", 300) + "\n-3"

	l, err := Decode(iotest.OneByteReader(strings.NewReader(input)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, -3}, l.Values())
}

func TestDecodeNoValues(t *testing.T) {
	for _, input := range []string{"", "\n\n", "a b c\nx\n"} {
		l, err := Decode(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrNoValues, "input: %q", input)
		assert.Nil(t, l)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	buf := new(strings.Builder)
	err := Encode(buf, new(list.List))
	assert.ErrorIs(t, err, list.ErrEmpty)
	assert.Empty(t, buf.String())
}

func TestEncodeWriteError(t *testing.T) {
	errWrite := errors.New("disk full")
	err := Encode(writerFunc(func([]byte) (int, error) { return 0, errWrite }), list.FromSlice([]int{1, 2}))
	assert.ErrorIs(t, err, errWrite)
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(b []byte) (int, error) { return f(b) }
