package negating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignFilter_ShouldProcess(t *testing.T) {
	tests := []struct {
		name     string
		include  []string
		exclude  []string
		campaign string
		expected bool
	}{
		{
			name:     "Listas vazias devem aceitar qualquer campanha",
			include:  nil,
			exclude:  nil,
			campaign: "Search - Genérica",
			expected: true,
		},
		{
			name:     "Inclusão deve aceitar campanha que casa com o padrão",
			include:  []string{"Brand"},
			exclude:  nil,
			campaign: "Brand Institucional",
			expected: true,
		},
		{
			name:     "Inclusão deve descartar campanha que não casa com nenhum padrão",
			include:  []string{"Brand"},
			exclude:  nil,
			campaign: "Search - Genérica",
			expected: false,
		},
		{
			name:     "Exclusão deve ter precedência sobre a inclusão",
			include:  []string{"Brand"},
			exclude:  []string{"US"},
			campaign: "Brand US",
			expected: false,
		},
		{
			name:     "Casamento não deve distinguir maiúsculas",
			include:  []string{"brand"},
			exclude:  nil,
			campaign: "BRAND Institucional",
			expected: true,
		},
		{
			name:     "Exclusão sozinha deve aceitar campanha fora do padrão",
			include:  nil,
			exclude:  []string{"Teste"},
			campaign: "Search - Genérica",
			expected: true,
		},
		{
			name:     "Exclusão sozinha deve descartar campanha no padrão",
			include:  nil,
			exclude:  []string{"Teste"},
			campaign: "Campanha de Teste",
			expected: false,
		},
		{
			name:     "Padrão regex deve ser respeitado",
			include:  []string{"^Search -"},
			exclude:  nil,
			campaign: "Display - Search - retargeting",
			expected: false,
		},
		{
			name:     "Entradas vazias nas listas devem ser ignoradas",
			include:  []string{"", "  ", "Brand"},
			exclude:  []string{""},
			campaign: "Brand Institucional",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewCampaignFilter(tt.include, tt.exclude)
			assert.NoError(t, err)

			assert.Equal(t, tt.expected, filter.ShouldProcess(tt.campaign))
		})
	}
}

func TestNewCampaignFilter_PadraoInvalido(t *testing.T) {
	_, err := NewCampaignFilter([]string{"["}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "filtro de inclusão inválido")

	_, err = NewCampaignFilter(nil, []string{"(abc"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "filtro de exclusão inválido")
}
