package negating

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// CampaignFilter decide quais campanhas entram na cross-negativação a partir
// das listas de inclusão e exclusão por nome. Os padrões são compilados uma
// única vez, sem distinção de maiúsculas.
type CampaignFilter struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// NewCampaignFilter compila as listas de padrões. Entradas vazias são
// ignoradas; um padrão inválido é erro de configuração e interrompe a
// inicialização.
func NewCampaignFilter(include, exclude []string) (*CampaignFilter, error) {
	compiledInclude, err := compilePatterns(include)
	if err != nil {
		return nil, errors.Wrap(err, "filtro de inclusão inválido")
	}

	compiledExclude, err := compilePatterns(exclude)
	if err != nil {
		return nil, errors.Wrap(err, "filtro de exclusão inválido")
	}

	return &CampaignFilter{
		include: compiledInclude,
		exclude: compiledExclude,
	}, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "padrão %q", pattern)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// ShouldProcess aplica a política: a exclusão tem precedência sobre a
// inclusão, e lista de inclusão vazia aceita qualquer campanha.
func (f *CampaignFilter) ShouldProcess(campaignName string) bool {
	for _, re := range f.exclude {
		if re.MatchString(campaignName) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, re := range f.include {
		if re.MatchString(campaignName) {
			return true
		}
	}

	return false
}
