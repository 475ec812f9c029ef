package negating

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
	"github.com/vfg2006/negative-keyword-sync/pkg/utils"
)

// Negator executa a cross-negativação completa de uma conta
type Negator interface {
	Run(ctx context.Context) (*RunResult, error)
}

// Service implementa o motor de cross-negativação: para cada campanha
// elegível, as palavras-chave mais caras das demais campanhas irmãs são
// aplicadas como negativas. O custo cresce com n·(n−1)·teto de palavras, por
// isso o teto e os filtros de campanha existem.
type Service struct {
	cfg    *config.Config
	ads    AdsService
	filter *CampaignFilter
}

func NewService(cfg *config.Config, ads AdsService) (*Service, error) {
	filter, err := NewCampaignFilter(cfg.Negation.IncludeFilters, cfg.Negation.ExcludeFilters)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:    cfg,
		ads:    ads,
		filter: filter,
	}, nil
}

// Run executa uma sincronização completa e devolve o resultado. Falhas por
// palavra-chave são registradas e não interrompem o lote; apenas a falha ao
// listar as campanhas é fatal.
func (s *Service) Run(ctx context.Context) (*RunResult, error) {
	runID, err := utils.NewRunID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID da execução")
	}

	result := NewRunResult(runID, s.runMode())
	result.Logf("Execução %s iniciada", runID)

	campaigns, err := s.eligibleCampaigns()
	if err != nil {
		return nil, err
	}

	result.CampaignsProcessed = len(campaigns)
	result.Logf("%d campanhas elegíveis após filtros", len(campaigns))

	if s.cfg.Negation.CampaignLevel {
		if err := s.crossApplyCampaigns(ctx, campaigns, result); err != nil {
			return nil, err
		}
	}

	if s.cfg.Negation.AdGroupLevel {
		if err := s.crossApplyAdGroups(ctx, campaigns, result); err != nil {
			return nil, err
		}
	}

	result.Finish()
	result.Logf("Execução concluída: %d negativas aplicadas, %d falhas", result.Applied, result.Failed)

	logrus.WithFields(logrus.Fields{
		"run_id":    result.RunID,
		"campaigns": result.CampaignsProcessed,
		"applied":   result.Applied,
		"failed":    result.Failed,
		"duration":  result.FinishedAt.Sub(result.StartedAt).String(),
	}).Info("negating: sincronização concluída")

	return result, nil
}

func (s *Service) runMode() domain.NegationRunMode {
	switch {
	case s.cfg.Negation.CampaignLevel && s.cfg.Negation.AdGroupLevel:
		return domain.NegationRunModeBoth
	case s.cfg.Negation.AdGroupLevel:
		return domain.NegationRunModeAdGroup
	default:
		return domain.NegationRunModeCampaign
	}
}

// eligibleCampaigns lista as campanhas ativas e aplica os filtros de nome
func (s *Service) eligibleCampaigns() ([]domain.Campaign, error) {
	campaigns, err := s.ads.ListEligibleCampaigns()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas elegíveis")
	}

	eligible := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if !s.filter.ShouldProcess(campaign.Name) {
			logrus.WithField("campaign", campaign.Name).Debug("negating: campanha descartada pelos filtros")
			continue
		}
		eligible = append(eligible, campaign)
	}

	return eligible, nil
}

// crossApplyCampaigns aplica as palavras-chave de cada campanha como
// negativas em todas as outras campanhas elegíveis
func (s *Service) crossApplyCampaigns(ctx context.Context, campaigns []domain.Campaign, result *RunResult) error {
	for i := range campaigns {
		keywords, err := s.ads.TopKeywordsByCampaign(campaigns[i].ID, s.cfg.Negation.MaxKeywordsPerEntity)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": campaigns[i].Name,
				"error":    err.Error(),
			}).Error("negating: erro ao extrair palavras-chave da campanha")
			result.Logf("ERRO ao extrair palavras-chave de %q: %v", campaigns[i].Name, err)
			continue
		}
		campaigns[i].Keywords = keywords
		result.Logf("%d palavras-chave extraídas de %q (custo acumulado %.2f)",
			len(keywords), campaigns[i].Name, utils.MicrosToUnits(totalCostMicros(keywords)))
	}

	for i, source := range campaigns {
		if len(source.Keywords) == 0 {
			continue
		}

		for j, target := range campaigns {
			if i == j {
				continue
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			s.applyAll(source.Keywords, target.Descriptor(), result, func(text string, matchType domain.MatchType) error {
				return s.ads.CreateCampaignNegative(target.ID, text, matchType)
			})
		}
	}

	return nil
}

// crossApplyAdGroups aplica as palavras-chave de cada grupo de anúncios como
// negativas nos grupos irmãos da mesma campanha
func (s *Service) crossApplyAdGroups(ctx context.Context, campaigns []domain.Campaign, result *RunResult) error {
	for _, campaign := range campaigns {
		adGroups, err := s.ads.ListAdGroups(campaign)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": campaign.Name,
				"error":    err.Error(),
			}).Error("negating: erro ao listar grupos de anúncios")
			result.Logf("ERRO ao listar grupos de %q: %v", campaign.Name, err)
			continue
		}

		for i := range adGroups {
			keywords, err := s.ads.TopKeywordsByAdGroup(adGroups[i].ID, s.cfg.Negation.MaxKeywordsPerEntity)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"ad_group": adGroups[i].Descriptor(),
					"error":    err.Error(),
				}).Error("negating: erro ao extrair palavras-chave do grupo")
				result.Logf("ERRO ao extrair palavras-chave de %q: %v", adGroups[i].Descriptor(), err)
				continue
			}
			adGroups[i].Keywords = keywords
		}

		for i, source := range adGroups {
			// Grupos sem palavras-chave extraídas não participam
			if len(source.Keywords) == 0 {
				continue
			}

			for j, target := range adGroups {
				if i == j {
					continue
				}

				if err := ctx.Err(); err != nil {
					return err
				}

				s.applyAll(source.Keywords, target.Descriptor(), result, func(text string, matchType domain.MatchType) error {
					return s.ads.CreateAdGroupNegative(target.ID, text, matchType)
				})
			}
		}
	}

	return nil
}

func totalCostMicros(keywords []domain.Keyword) int64 {
	var total int64
	for _, keyword := range keywords {
		total += keyword.CostMicros
	}
	return total
}

// applyAll aplica um conjunto de palavras-chave como negativas em um alvo.
// Cada falha é registrada e o restante do conjunto continua sendo aplicado.
func (s *Service) applyAll(keywords []domain.Keyword, targetDescriptor string, result *RunResult, create func(text string, matchType domain.MatchType) error) {
	for _, keyword := range keywords {
		literal, matchType, ok := FormatNegative(keyword, s.cfg.Negation.PreserveMatchType)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"keyword":    keyword.Text,
				"match_type": string(keyword.MatchType),
			}).Warn("negating: tipo de correspondência desconhecido, palavra-chave ignorada")
			result.Logf("AVISO: tipo de correspondência desconhecido em %q, ignorada", keyword.Text)
			continue
		}

		if err := create(keyword.Text, matchType); err != nil {
			result.Failed++
			logrus.WithFields(logrus.Fields{
				"keyword": literal,
				"target":  targetDescriptor,
				"error":   err.Error(),
			}).Warn("negating: falha ao criar negativa, continuando o lote")
			result.Logf("FALHA ao negativar %s em %q: %v", literal, targetDescriptor, err)
			continue
		}

		result.Applied++
		result.Record(literal, targetDescriptor)

		if s.cfg.NegationSync.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.cfg.NegationSync.RequestDelaySeconds) * time.Second)
		}
	}
}
