// Package currency mapeia códigos ISO-4217 para símbolos de exibição,
// usados na formatação da planilha de decomposição de performance.
package currency

import (
	"fmt"

	"golang.org/x/text/currency"
)

// symbolByCode é a tabela estática de símbolos. A chave precisa ser um
// código ISO-4217 válido; Validate confere isso na inicialização.
var symbolByCode = map[string]string{
	"AED": "د.إ",
	"ARS": "$",
	"AUD": "$",
	"BRL": "R$",
	"CAD": "$",
	"CHF": "CHF",
	"CLP": "$",
	"CNY": "¥",
	"COP": "$",
	"CZK": "Kč",
	"DKK": "kr",
	"EUR": "€",
	"GBP": "£",
	"HKD": "HK$",
	"HUF": "Ft",
	"IDR": "Rp",
	"ILS": "₪",
	"INR": "₹",
	"JPY": "¥",
	"KRW": "₩",
	"MXN": "$",
	"MYR": "RM",
	"NOK": "kr",
	"NZD": "$",
	"PHP": "₱",
	"PLN": "zł",
	"RUB": "₽",
	"SEK": "kr",
	"SGD": "$",
	"THB": "฿",
	"TRY": "₺",
	"TWD": "NT$",
	"USD": "$",
	"VND": "₫",
	"ZAR": "R",
}

// Validate verifica se todas as chaves da tabela são códigos ISO-4217 válidos.
// Chamado na inicialização do serviço para falhar cedo em caso de erro de digitação.
func Validate() error {
	for code := range symbolByCode {
		if _, err := currency.ParseISO(code); err != nil {
			return fmt.Errorf("código de moeda inválido na tabela de símbolos: %q: %w", code, err)
		}
	}
	return nil
}

// Symbol retorna o símbolo de exibição do código informado
func Symbol(code string) (string, bool) {
	symbol, ok := symbolByCode[code]
	return symbol, ok
}

// SymbolOrCode retorna o símbolo do código ou o próprio código quando
// não há símbolo mapeado
func SymbolOrCode(code string) string {
	if symbol, ok := symbolByCode[code]; ok {
		return symbol
	}
	return code
}

// Codes retorna os códigos presentes na tabela
func Codes() []string {
	codes := make([]string, 0, len(symbolByCode))
	for code := range symbolByCode {
		codes = append(codes, code)
	}
	return codes
}
