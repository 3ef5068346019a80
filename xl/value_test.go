package xl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	when := time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		kind ValueKind
		typ  CellType
	}{
		{"nil", nil, KindEmpty, CellTypeEmpty},
		{"string", "hello", KindString, CellTypeSharedString},
		{"bool", true, KindBool, CellTypeBool},
		{"int", 42, KindNumber, CellTypeNumber},
		{"int8", int8(-3), KindNumber, CellTypeNumber},
		{"uint64", uint64(7), KindNumber, CellTypeNumber},
		{"float32", float32(1.5), KindNumber, CellTypeNumber},
		{"float64", 2.25, KindNumber, CellTypeNumber},
		{"time", when, KindDate, CellTypeDate},
		{"duration", 90 * time.Minute, KindTime, CellTypeTime},
		{"value", FormulaValue("SUM(A1:A3)"), KindFormula, CellTypeFormula},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.typ, v.Type())
		})
	}

	_, err := ValueOf(struct{}{})
	assert.ErrorIs(t, err, ErrValue)
	_, err = ValueOf([]int{1})
	assert.ErrorIs(t, err, ErrValue)
}

func TestZeroValueIsUnset(t *testing.T) {
	var v Value
	assert.Equal(t, KindUnset, v.Kind())
	assert.Equal(t, CellTypeUnset, v.Type())
}

func TestValueSerial(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
	}{
		{"number", NumberValue(3.5), 3.5},
		{"first day", DateValue(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)), 1},
		{"before leap bug", DateValue(time.Date(1900, 2, 28, 0, 0, 0, 0, time.UTC)), 59},
		{"after leap bug", DateValue(time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC)), 61},
		{"y2k", DateValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)), 36526},
		{"y2k noon", DateValue(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)), 36526.5},
		{"wall clock", DateValue(time.Date(2000, 1, 1, 6, 0, 0, 0, time.FixedZone("X", 3*3600))), 36526.25},
		{"time", TimeValue(6 * time.Hour), 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.serial()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := DateValue(time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)).serial()
	assert.ErrorIs(t, err, ErrRange)
	_, err = TimeValue(-time.Second).serial()
	assert.ErrorIs(t, err, ErrRange)
	_, err = StringValue("x").serial()
	assert.ErrorIs(t, err, ErrValue)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "TRUE", BoolValue(true).String())
	assert.Equal(t, "=A1+1", FormulaValue("A1+1").String())
	assert.Equal(t, "0.1", NumberValue(0.1).String())
	assert.Equal(t, "#N/A", ErrorValue("#N/A").String())
}

func TestCellType(t *testing.T) {
	c := NewCell(StringValue("SUM(A1:A2)"), MustAddress("$B$3"))
	assert.Equal(t, "B3", c.Address().String(), "cells keep plain addresses")
	assert.Equal(t, CellTypeSharedString, c.Type())

	require.NoError(t, c.ForceType(CellTypeFormula))
	assert.Equal(t, CellTypeFormula, c.Type())

	// a new value drops the forced type
	c.SetInt(3)
	assert.Equal(t, CellTypeNumber, c.Type())
	assert.ErrorIs(t, c.ForceType(CellTypeFormula), ErrValue)

	c.SetStr("x")
	assert.ErrorIs(t, c.ForceType(CellTypeBool), ErrValue)

	c.SetPicture(&PictureInfo{Extension: ".png", Blob: []byte{1}})
	assert.Equal(t, cellTypePicture, c.Type())
}

func TestCellStyle(t *testing.T) {
	repo := NewStyleRepository()
	c := NewCell(BoolValue(true), MustAddress("A1"))

	_, err := c.SetStyle(repo, nil)
	assert.ErrorIs(t, err, ErrStyle)
	_, err = c.SetStyle(nil, StyleBold())
	assert.ErrorIs(t, err, ErrStyle)
	assert.Nil(t, c.Style())

	_, err = c.SetStyle(repo, StyleBold())
	require.NoError(t, err)
	got, err := c.AppendStyle(repo, StyleFill(ColorYellow))
	require.NoError(t, err)
	assert.True(t, got.Font.Bold.Value())
	assert.Equal(t, ColorYellow, got.Fill.Foreground.Value())
	assert.Equal(t, 3, repo.Len())

	c.ClearStyle()
	assert.Nil(t, c.Style())
}
