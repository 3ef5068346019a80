package xl

import (
	"fmt"
	"strings"
)

const (
	MaxColumns = 16384   // A..XFD
	MaxRows    = 1048576 // 1..1048576
)

// ColumnToLetters converts a zero-based column index to its letter form
// (0 -> "A", 25 -> "Z", 26 -> "AA", 16383 -> "XFD").
func ColumnToLetters(index int) (string, error) {
	if index < 0 || index >= MaxColumns {
		return "", fmt.Errorf("%w: column index %d", ErrRange, index)
	}
	return columnLetters(index), nil
}

// columnLetters assumes index is within bounds.
func columnLetters(index int) string {
	var buf [3]byte
	i := len(buf)
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// LettersToColumn converts column letters to a zero-based index.
// Letters are case-insensitive.
func LettersToColumn(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("%w: empty column", ErrFormat)
	}
	for i := 0; i < len(letters); i++ {
		if !isLetter(letters[i]) {
			return 0, fmt.Errorf("%w: column %q", ErrFormat, letters)
		}
	}
	n := 0
	for i := 0; i < len(letters); i++ {
		n = n*26 + int(upper(letters[i])-'A'+1)
		if n > MaxColumns {
			return 0, fmt.Errorf("%w: column %s", ErrRange, strings.ToUpper(letters))
		}
	}
	return n - 1, nil
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}
