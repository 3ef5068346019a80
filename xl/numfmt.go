package xl

import "fmt"

// Built-in number format ids that need no numFmt record.
const (
	NumFmtGeneral     = 0
	NumFmtInteger     = 1  // 0
	NumFmtDecimal     = 2  // 0.00
	NumFmtThousands   = 3  // #,##0
	NumFmtThousands2  = 4  // #,##0.00
	NumFmtPercent     = 9  // 0%
	NumFmtPercent2    = 10 // 0.00%
	NumFmtScientific  = 11 // 0.00E+00
	NumFmtDate        = 14 // mm-dd-yy
	NumFmtTime        = 21 // h:mm:ss
	NumFmtDateTime    = 22 // m/d/yy h:mm
	NumFmtText        = 49 // @
	firstCustomNumFmt = 164
)

// NumberFormat selects a built-in format by ID or a custom format Code.
// A Code takes precedence over ID.
type NumberFormat struct {
	ID   Option[int]
	Code Option[string]
}

func BuiltinFormat(id int) NumberFormat {
	return NumberFormat{ID: Some(id)}
}

func CustomFormat(code string) NumberFormat {
	return NumberFormat{Code: Some(code)}
}

type numFmtKey struct {
	id   int // -1 for a custom code
	code string
}

func (n NumberFormat) key() numFmtKey {
	if c := n.Code.Value(); c != "" {
		return numFmtKey{id: -1, code: c}
	}
	return numFmtKey{id: n.ID.Value()}
}

func (n NumberFormat) Equal(o NumberFormat) bool {
	return n.key() == o.key()
}

func (n NumberFormat) IsDefault() bool {
	return n.key() == NumberFormat{}.key()
}

// Append returns n with the explicitly set fields of o applied on top.
// Setting either field of o replaces the whole format.
func (n NumberFormat) Append(o NumberFormat) NumberFormat {
	if o.Code.Has() || o.ID.Has() {
		return o
	}
	return n
}

func (n NumberFormat) validate() error {
	if id := n.ID.Value(); id < 0 || id >= firstCustomNumFmt {
		return fmt.Errorf("%w: built-in number format %d", ErrStyle, id)
	}
	return nil
}
