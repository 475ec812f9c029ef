package cellrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		name     string
		col      int
		expected string
	}{
		{name: "Primeira coluna", col: 1, expected: "A"},
		{name: "Última coluna simples", col: 26, expected: "Z"},
		{name: "Primeira coluna dupla", col: 27, expected: "AA"},
		{name: "Coluna dupla arbitrária", col: 52, expected: "AZ"},
		{name: "Coluna inválida", col: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColumnLetter(tt.col))
		})
	}
}

func TestCellAndRange(t *testing.T) {
	assert.Equal(t, "B3", Cell(2, 3))
	assert.Equal(t, "A1:C10", Range(1, 1, 3, 10))
	assert.Equal(t, "Report!A1:C10", SheetRange("Report", "A1:C10"))
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		name        string
		ref         string
		expectedCol int
		expectedRow int
		expectError bool
	}{
		{name: "Célula simples", ref: "B3", expectedCol: 2, expectedRow: 3},
		{name: "Coluna dupla", ref: "AA10", expectedCol: 27, expectedRow: 10},
		{name: "Com espaços", ref: " C7 ", expectedCol: 3, expectedRow: 7},
		{name: "Sem linha", ref: "B", expectError: true},
		{name: "Sem coluna", ref: "12", expectError: true},
		{name: "Linha zero", ref: "A0", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, err := ParseCell(tt.ref)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCol, col)
			assert.Equal(t, tt.expectedRow, row)
		})
	}
}
