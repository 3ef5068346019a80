package xl

import "fmt"

// StyleRepository keeps one canonical Style per distinct formatting.
// Cells hold pointers to canonical styles, and a style's slot in the
// repository is its cellXfs index in the written file. Slot 0 is always
// the default style.
//
// A repository belongs to one workbook and is not safe for concurrent use.
type StyleRepository struct {
	styles []*Style
	index  map[styleKey]int
	slots  map[*Style]int
}

func NewStyleRepository() *StyleRepository {
	r := &StyleRepository{
		index: map[styleKey]int{},
		slots: map[*Style]int{},
	}
	r.insert(NewStyle())
	return r
}

func (r *StyleRepository) insert(s *Style) *Style {
	i := len(r.styles)
	r.styles = append(r.styles, s)
	r.index[s.key()] = i
	r.slots[s] = i
	return s
}

// Add returns the canonical style equal to s, registering a private copy
// of s when no such style exists yet. s itself is never retained.
func (r *StyleRepository) Add(s *Style) (*Style, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if i, ok := r.index[s.key()]; ok {
		return r.styles[i], nil
	}
	return r.insert(s.Copy()), nil
}

// Lookup returns the canonical style equal to s without registering it.
func (r *StyleRepository) Lookup(s *Style) (*Style, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := r.index[s.key()]
	if !ok {
		return nil, false
	}
	return r.styles[i], true
}

// Slot returns the position of canonical style s.
func (r *StyleRepository) Slot(s *Style) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: nil style", ErrStyle)
	}
	i, ok := r.slots[s]
	if !ok {
		return 0, fmt.Errorf("%w: style is not owned by this repository", ErrStyle)
	}
	return i, nil
}

// Default returns the canonical style at slot 0.
func (r *StyleRepository) Default() *Style {
	return r.styles[0]
}

// Len is the number of canonical styles, the default included.
func (r *StyleRepository) Len() int {
	return len(r.styles)
}

// Styles returns the canonical styles in slot order. The caller must not
// modify them.
func (r *StyleRepository) Styles() []*Style {
	out := make([]*Style, len(r.styles))
	copy(out, r.styles)
	return out
}
