package negating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/negating/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(negation config.Negation) *config.Config {
	if negation.MaxKeywordsPerEntity == 0 {
		negation.MaxKeywordsPerEntity = 20
	}
	return &config.Config{
		Negation: negation,
	}
}

func TestService_Run_CrossNegativacaoEntreCampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{CampaignLevel: true})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	campaignA := domain.Campaign{ID: "1001", Name: "Campanha A"}
	campaignB := domain.Campaign{ID: "1002", Name: "Campanha B"}

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return([]domain.Campaign{campaignA, campaignB}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign("1001", 20).
		Return([]domain.Keyword{{Text: "oculos de sol", MatchType: domain.MatchTypeBroad}}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign("1002", 20).
		Return([]domain.Keyword{{Text: "armacao", MatchType: domain.MatchTypeExact}}, nil)

	// Sem preservação, toda negativa é aplicada como exata
	mockAds.EXPECT().
		CreateCampaignNegative("1002", "oculos de sol", domain.MatchTypeExact).
		Return(nil)

	mockAds.EXPECT().
		CreateCampaignNegative("1001", "armacao", domain.MatchTypeExact).
		Return(nil)

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.CampaignsProcessed)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, domain.NegationRunModeCampaign, result.Mode)
	assert.Equal(t, []string{"[armacao]", "[oculos de sol]"}, result.Keywords())
	assert.Equal(t, []string{"Campanha B"}, result.EntitiesFor("[oculos de sol]"))
	assert.Equal(t, []string{"Campanha A"}, result.EntitiesFor("[armacao]"))
}

func TestService_Run_CampanhaSemPalavrasChaveSoRecebe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{CampaignLevel: true})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return([]domain.Campaign{
			{ID: "1001", Name: "Campanha A"},
			{ID: "1002", Name: "Campanha B"},
		}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign("1001", 20).
		Return([]domain.Keyword{{Text: "oculos", MatchType: domain.MatchTypeBroad}}, nil)

	// Campanha B não tem palavras-chave: não atua como origem
	mockAds.EXPECT().
		TopKeywordsByCampaign("1002", 20).
		Return([]domain.Keyword{}, nil)

	mockAds.EXPECT().
		CreateCampaignNegative("1002", "oculos", domain.MatchTypeExact).
		Return(nil)

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, []string{"Campanha B"}, result.Touched())
}

func TestService_Run_FalhaPorPalavraChaveNaoInterrompeOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{CampaignLevel: true})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return([]domain.Campaign{
			{ID: "1001", Name: "Campanha A"},
			{ID: "1002", Name: "Campanha B"},
		}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign("1001", 20).
		Return([]domain.Keyword{
			{Text: "oculos", MatchType: domain.MatchTypeBroad},
			{Text: "armacao", MatchType: domain.MatchTypeBroad},
		}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign("1002", 20).
		Return([]domain.Keyword{}, nil)

	// A primeira aplicação falha (ex.: negativa duplicada); a segunda segue
	mockAds.EXPECT().
		CreateCampaignNegative("1002", "oculos", domain.MatchTypeExact).
		Return(assert.AnError)

	mockAds.EXPECT().
		CreateCampaignNegative("1002", "armacao", domain.MatchTypeExact).
		Return(nil)

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"[armacao]"}, result.Keywords())
}

func TestService_Run_FiltrosDeCampanhaSaoAplicados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{
		CampaignLevel:  true,
		IncludeFilters: []string{"Brand"},
		ExcludeFilters: []string{"US"},
	})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return([]domain.Campaign{
			{ID: "1001", Name: "Brand BR"},
			{ID: "1002", Name: "Brand US"},         // exclusão tem precedência
			{ID: "1003", Name: "Search Genérica"},  // não casa com a inclusão
		}, nil)

	// Só a Brand BR sobra; sem par, nada é aplicado
	mockAds.EXPECT().
		TopKeywordsByCampaign("1001", 20).
		Return([]domain.Keyword{{Text: "oculos", MatchType: domain.MatchTypeBroad}}, nil)

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.CampaignsProcessed)
	assert.Equal(t, 0, result.Applied)
}

func TestService_Run_ErroAoListarCampanhasEFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{CampaignLevel: true})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return(nil, assert.AnError)

	result, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "erro ao listar campanhas elegíveis")
}

func TestService_Run_TipoDesconhecidoEIgnorado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{
		CampaignLevel:     true,
		PreserveMatchType: true,
	})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return([]domain.Campaign{
			{ID: "1001", Name: "Campanha A"},
			{ID: "1002", Name: "Campanha B"},
		}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign("1001", 20).
		Return([]domain.Keyword{
			{Text: "oculos", MatchType: "UNSPECIFIED"},
			{Text: "armacao", MatchType: domain.MatchTypePhrase},
		}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign("1002", 20).
		Return([]domain.Keyword{}, nil)

	// Só a phrase é aplicada, com o tipo original preservado
	mockAds.EXPECT().
		CreateCampaignNegative("1002", "armacao", domain.MatchTypePhrase).
		Return(nil)

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, []string{`"armacao"`}, result.Keywords())
}

func TestService_Run_CrossNegativacaoEntreGruposDaMesmaCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{AdGroupLevel: true})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	campaign := domain.Campaign{ID: "1001", Name: "Campanha A"}

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return([]domain.Campaign{campaign}, nil)

	mockAds.EXPECT().
		ListAdGroups(gomock.Any()).
		Return([]domain.AdGroup{
			{ID: "2001", Name: "Grupo 1", CampaignID: "1001", CampaignName: "Campanha A"},
			{ID: "2002", Name: "Grupo 2", CampaignID: "1001", CampaignName: "Campanha A"},
		}, nil)

	mockAds.EXPECT().
		TopKeywordsByAdGroup("2001", 20).
		Return([]domain.Keyword{{Text: "oculos", MatchType: domain.MatchTypeBroad}}, nil)

	mockAds.EXPECT().
		TopKeywordsByAdGroup("2002", 20).
		Return([]domain.Keyword{{Text: "armacao", MatchType: domain.MatchTypeBroad}}, nil)

	mockAds.EXPECT().
		CreateAdGroupNegative("2002", "oculos", domain.MatchTypeExact).
		Return(nil)

	mockAds.EXPECT().
		CreateAdGroupNegative("2001", "armacao", domain.MatchTypeExact).
		Return(nil)

	result, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.NegationRunModeAdGroup, result.Mode)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, []string{"Campanha A > Grupo 2", "Campanha A > Grupo 1"}, result.Touched())
}

func TestService_Run_ContextoCanceladoInterrompeAExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := mocks.NewMockAdsService(ctrl)
	cfg := testConfig(config.Negation{CampaignLevel: true})

	service, err := NewService(cfg, mockAds)
	assert.NoError(t, err)

	mockAds.EXPECT().
		ListEligibleCampaigns().
		Return([]domain.Campaign{
			{ID: "1001", Name: "Campanha A"},
			{ID: "1002", Name: "Campanha B"},
		}, nil)

	mockAds.EXPECT().
		TopKeywordsByCampaign(gomock.Any(), 20).
		Return([]domain.Keyword{{Text: "oculos", MatchType: domain.MatchTypeBroad}}, nil).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := service.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
