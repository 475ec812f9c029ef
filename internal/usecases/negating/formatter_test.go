package negating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
)

func TestFormatNegative(t *testing.T) {
	tests := []struct {
		name              string
		keyword           domain.Keyword
		preserveMatchType bool
		expectedLiteral   string
		expectedMatchType domain.MatchType
		expectedOk        bool
	}{
		{
			name:              "Broad preservado deve virar texto puro",
			keyword:           domain.Keyword{Text: "oculos de sol", MatchType: domain.MatchTypeBroad},
			preserveMatchType: true,
			expectedLiteral:   "oculos de sol",
			expectedMatchType: domain.MatchTypeBroad,
			expectedOk:        true,
		},
		{
			name:              "Phrase preservado deve virar texto entre aspas",
			keyword:           domain.Keyword{Text: "oculos de sol", MatchType: domain.MatchTypePhrase},
			preserveMatchType: true,
			expectedLiteral:   `"oculos de sol"`,
			expectedMatchType: domain.MatchTypePhrase,
			expectedOk:        true,
		},
		{
			name:              "Exact preservado deve virar texto entre colchetes",
			keyword:           domain.Keyword{Text: "oculos de sol", MatchType: domain.MatchTypeExact},
			preserveMatchType: true,
			expectedLiteral:   "[oculos de sol]",
			expectedMatchType: domain.MatchTypeExact,
			expectedOk:        true,
		},
		{
			name:              "Sem preservação toda negativa deve virar exata",
			keyword:           domain.Keyword{Text: "oculos de sol", MatchType: domain.MatchTypeBroad},
			preserveMatchType: false,
			expectedLiteral:   "[oculos de sol]",
			expectedMatchType: domain.MatchTypeExact,
			expectedOk:        true,
		},
		{
			name:              "Sem preservação phrase também deve virar exata",
			keyword:           domain.Keyword{Text: "oculos de sol", MatchType: domain.MatchTypePhrase},
			preserveMatchType: false,
			expectedLiteral:   "[oculos de sol]",
			expectedMatchType: domain.MatchTypeExact,
			expectedOk:        true,
		},
		{
			name:              "Tipo desconhecido não deve gerar negativa",
			keyword:           domain.Keyword{Text: "oculos de sol", MatchType: "UNSPECIFIED"},
			preserveMatchType: true,
			expectedLiteral:   "",
			expectedMatchType: domain.MatchType(""),
			expectedOk:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			literal, matchType, ok := FormatNegative(tt.keyword, tt.preserveMatchType)

			assert.Equal(t, tt.expectedOk, ok)
			assert.Equal(t, tt.expectedLiteral, literal)
			assert.Equal(t, tt.expectedMatchType, matchType)
		})
	}
}
