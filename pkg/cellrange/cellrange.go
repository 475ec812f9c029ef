// Package cellrange concentra as constantes e os auxiliares de notação A1
// compartilhados com a planilha de decomposição de performance.
package cellrange

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Intervalos usados pela planilha de decomposição de performance
const (
	// AccountControlCell é a célula de controle com a conta selecionada
	AccountControlCell = "Controls!B2"
	// AccountStatsRange é o intervalo importado com conta e código de moeda
	AccountStatsRange = "AccountStats!A2:B"
	// ReportHeaderRow é a linha de cabeçalho do relatório exportado
	ReportHeaderRow = 1
	// ReportFirstDataRow é a primeira linha de dados do relatório exportado
	ReportFirstDataRow = 2
)

// ColumnLetter converte um índice de coluna (1 = A) para a letra de coluna
func ColumnLetter(col int) string {
	if col < 1 {
		return ""
	}

	var sb strings.Builder
	for col > 0 {
		col--
		sb.WriteByte(byte('A' + col%26))
		col /= 26
	}

	// Inverte os caracteres acumulados
	runes := []rune(sb.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Cell monta uma referência A1 a partir de coluna e linha (ambas 1-based)
func Cell(col, row int) string {
	return fmt.Sprintf("%s%d", ColumnLetter(col), row)
}

// Range monta um intervalo A1 entre duas células (colunas e linhas 1-based)
func Range(startCol, startRow, endCol, endRow int) string {
	return fmt.Sprintf("%s:%s", Cell(startCol, startRow), Cell(endCol, endRow))
}

// SheetRange prefixa um intervalo com o nome da aba
func SheetRange(sheet, a1Range string) string {
	return fmt.Sprintf("%s!%s", sheet, a1Range)
}

// ParseCell decompõe uma referência A1 ("B3") em coluna e linha (1-based)
func ParseCell(ref string) (col, row int, err error) {
	ref = strings.TrimSpace(ref)

	split := 0
	for split < len(ref) && unicode.IsLetter(rune(ref[split])) {
		split++
	}

	if split == 0 || split == len(ref) {
		return 0, 0, fmt.Errorf("referência de célula inválida: %q", ref)
	}

	for _, r := range strings.ToUpper(ref[:split]) {
		if r < 'A' || r > 'Z' {
			return 0, 0, fmt.Errorf("referência de célula inválida: %q", ref)
		}
		col = col*26 + int(r-'A'+1)
	}

	row, err = strconv.Atoi(ref[split:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("referência de célula inválida: %q", ref)
	}

	return col, row, nil
}
