package xl

import "errors"

var (
	// ErrFormat reports text that does not match the address or range grammar.
	ErrFormat = errors.New("invalid reference format")

	// ErrRange reports a column, row or index outside the worksheet bounds.
	ErrRange = errors.New("value out of range")

	// ErrStyle reports a nil style or a style that is not known to the repository.
	ErrStyle = errors.New("invalid style")

	ErrSheetExists = errors.New("duplicate sheet name")
	ErrSheetName   = errors.New("invalid sheet name")
)
