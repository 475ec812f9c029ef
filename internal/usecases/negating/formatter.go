package negating

import (
	"fmt"

	"github.com/vfg2006/negative-keyword-sync/internal/domain"
)

// FormatNegative produz o literal da palavra-chave negativa e o tipo de
// correspondência efetivo a aplicar no alvo. Com preserveMatchType falso,
// toda negativa vira correspondência exata. Tipos de correspondência
// desconhecidos não geram negativa (ok = false); o chamador decide registrar.
//
// BROAD → texto puro; PHRASE → "texto"; EXACT → [texto].
func FormatNegative(keyword domain.Keyword, preserveMatchType bool) (literal string, matchType domain.MatchType, ok bool) {
	if !preserveMatchType {
		return fmt.Sprintf("[%s]", keyword.Text), domain.MatchTypeExact, true
	}

	switch keyword.MatchType {
	case domain.MatchTypeBroad:
		return keyword.Text, domain.MatchTypeBroad, true
	case domain.MatchTypePhrase:
		return fmt.Sprintf("%q", keyword.Text), domain.MatchTypePhrase, true
	case domain.MatchTypeExact:
		return fmt.Sprintf("[%s]", keyword.Text), domain.MatchTypeExact, true
	default:
		return "", "", false
	}
}
