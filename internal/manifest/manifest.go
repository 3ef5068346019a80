// Package manifest describes a workbook in YAML and builds it with the xl
// package.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Error types
var (
	ErrManifest      = errors.New("invalid manifest")
	ErrUnknownStyle  = errors.New("unknown style")
	ErrStyleCycle    = errors.New("style inheritance cycle")
	ErrUnknownOption = errors.New("unknown option value")
)

// Manifest is the root document.
type Manifest struct {
	App    string               `yaml:"app"`
	Styles map[string]StyleSpec `yaml:"styles"`
	Sheets []SheetSpec          `yaml:"sheets"`
}

// SheetSpec describes one worksheet.
type SheetSpec struct {
	Name       string             `yaml:"name"`
	Columns    map[string]float32 `yaml:"columns"` // column letters -> width
	Rows       map[int]float32    `yaml:"rows"`    // 1-based row -> height
	Cells      []CellSpec         `yaml:"cells"`
	Ranges     []RangeSpec        `yaml:"ranges"`
	Merge      []string           `yaml:"merge"`
	AutoFilter string             `yaml:"autofilter"`
	Freeze     string             `yaml:"freeze"`
}

// CellSpec places a single value. Exactly one of Value, Formula or Date is
// expected; a cell with only a Style is written empty.
type CellSpec struct {
	Ref     string `yaml:"ref"`
	Value   any    `yaml:"value"`
	Formula string `yaml:"formula"`
	Date    string `yaml:"date"` // RFC 3339 or 2006-01-02
	Type    string `yaml:"type"` // inline, shared or formula for string values
	Style   string `yaml:"style"`
}

// RangeSpec fills or styles every cell of a range.
type RangeSpec struct {
	Ref   string `yaml:"ref"`
	Value any    `yaml:"value"`
	Style string `yaml:"style"`
}

// StyleSpec is a named style. Base names another style whose settings are
// inherited; fields set here override it.
type StyleSpec struct {
	Base string `yaml:"base"`

	Font      string   `yaml:"font"`
	Size      *float64 `yaml:"size"`
	Bold      *bool    `yaml:"bold"`
	Italic    *bool    `yaml:"italic"`
	Strike    *bool    `yaml:"strike"`
	Underline string   `yaml:"underline"`
	Color     string   `yaml:"color"`

	Fill    string `yaml:"fill"`
	Pattern string `yaml:"pattern"`

	Border      string `yaml:"border"`
	BorderColor string `yaml:"border_color"`

	Align    string `yaml:"align"`
	VAlign   string `yaml:"valign"`
	Wrap     *bool  `yaml:"wrap"`
	Shrink   *bool  `yaml:"shrink"`
	Rotation *int   `yaml:"rotation"`
	Indent   *int   `yaml:"indent"`
	Locked   *bool  `yaml:"locked"`
	Hidden   *bool  `yaml:"hidden"`

	NumFmt *int   `yaml:"numfmt"`
	Format string `yaml:"format"` // custom number format code
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrManifest)
		}
		return nil, fmt.Errorf("%w: %v", ErrManifest, err)
	}
	if len(m.Sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrManifest)
	}
	return &m, nil
}

// Load reads and decodes the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(bytes.NewReader(data))
}
