package xl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnToLetters(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := ColumnToLetters(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := LettersToColumn(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.index, back)
		})
	}
}

func TestColumnToLettersOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 16384, 1 << 20} {
		_, err := ColumnToLetters(i)
		assert.ErrorIs(t, err, ErrRange, "index %d", i)
	}
}

func TestColumnRoundTrip(t *testing.T) {
	seen := make(map[string]bool, MaxColumns)
	for i := 0; i < MaxColumns; i++ {
		s, err := ColumnToLetters(i)
		require.NoError(t, err)
		require.False(t, seen[s], "duplicate letters %s", s)
		seen[s] = true

		n, err := LettersToColumn(s)
		require.NoError(t, err)
		require.Equal(t, i, n)
	}
}

func TestLettersToColumn(t *testing.T) {
	n, err := LettersToColumn("xfd")
	require.NoError(t, err)
	assert.Equal(t, 16383, n)

	n, err = LettersToColumn("aAd")
	require.NoError(t, err)
	assert.Equal(t, 705, n)

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrFormat},
		{"digit", "A1", ErrFormat},
		{"dollar", "$A", ErrFormat},
		{"just past XFD", "XFE", ErrRange},
		{"four letters", "AAAA", ErrRange},
		{"very long", "ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ", ErrRange},
		{"long with garbage", "ZZZZZZZZ-", ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LettersToColumn(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
