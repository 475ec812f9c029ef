package domain

import "fmt"

// Campaign é o retrato de uma campanha elegível no início da execução
type Campaign struct {
	ID       string
	Name     string
	Keywords []Keyword
}

// Descriptor identifica a campanha nos registros e no relatório
func (c Campaign) Descriptor() string {
	return c.Name
}

// AdGroup é o retrato de um grupo de anúncios dentro de uma campanha elegível
type AdGroup struct {
	ID           string
	Name         string
	CampaignID   string
	CampaignName string
	Keywords     []Keyword
}

// Descriptor identifica o grupo com o prefixo da campanha dona
func (g AdGroup) Descriptor() string {
	return fmt.Sprintf("%s > %s", g.CampaignName, g.Name)
}
