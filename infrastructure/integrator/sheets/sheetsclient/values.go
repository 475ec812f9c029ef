package sheetsclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

type valueRange struct {
	Range          string  `json:"range,omitempty"`
	MajorDimension string  `json:"majorDimension,omitempty"`
	Values         [][]any `json:"values"`
}

type getValuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// GetValues lê um intervalo A1 da planilha
func (c *SheetsClient) GetValues(spreadsheetID, a1Range string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s",
		c.Cfg.Sheets.BaseURL, spreadsheetID, url.PathEscape(a1Range))

	body, err := c.doJSON(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var response getValuesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Values, nil
}

// UpdateValues escreve um intervalo A1 na planilha
func (c *SheetsClient) UpdateValues(spreadsheetID, a1Range string, values [][]any) error {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s?valueInputOption=RAW",
		c.Cfg.Sheets.BaseURL, spreadsheetID, url.PathEscape(a1Range))

	_, err := c.doJSON(http.MethodPut, endpoint, valueRange{Values: values})
	return err
}

type gridRange struct {
	SheetID          int `json:"sheetId"`
	StartRowIndex    int `json:"startRowIndex"`
	EndRowIndex      int `json:"endRowIndex"`
	StartColumnIndex int `json:"startColumnIndex"`
	EndColumnIndex   int `json:"endColumnIndex"`
}

type sortSpec struct {
	DimensionIndex int    `json:"dimensionIndex"`
	SortOrder      string `json:"sortOrder"`
}

type sortRangeRequest struct {
	Range     gridRange  `json:"range"`
	SortSpecs []sortSpec `json:"sortSpecs"`
}

type gridProperties struct {
	FrozenRowCount int `json:"frozenRowCount"`
}

type sheetProperties struct {
	SheetID        int            `json:"sheetId"`
	GridProperties gridProperties `json:"gridProperties"`
}

type updateSheetPropertiesRequest struct {
	Properties sheetProperties `json:"properties"`
	Fields     string          `json:"fields"`
}

type batchUpdateRequest struct {
	Requests []map[string]any `json:"requests"`
}

// SortRange ordena um bloco da planilha pela coluna indicada (índices 0-based,
// fim exclusivo, como a API espera)
func (c *SheetsClient) SortRange(spreadsheetID string, sheetID, startRow, endRow, startCol, endCol, sortCol int) error {
	payload := batchUpdateRequest{
		Requests: []map[string]any{
			{
				"sortRange": sortRangeRequest{
					Range: gridRange{
						SheetID:          sheetID,
						StartRowIndex:    startRow,
						EndRowIndex:      endRow,
						StartColumnIndex: startCol,
						EndColumnIndex:   endCol,
					},
					SortSpecs: []sortSpec{
						{DimensionIndex: sortCol, SortOrder: "ASCENDING"},
					},
				},
			},
		},
	}

	return c.batchUpdate(spreadsheetID, payload)
}

// FreezeRows congela as primeiras linhas da aba indicada
func (c *SheetsClient) FreezeRows(spreadsheetID string, sheetID, rows int) error {
	payload := batchUpdateRequest{
		Requests: []map[string]any{
			{
				"updateSheetProperties": updateSheetPropertiesRequest{
					Properties: sheetProperties{
						SheetID:        sheetID,
						GridProperties: gridProperties{FrozenRowCount: rows},
					},
					Fields: "gridProperties.frozenRowCount",
				},
			},
		},
	}

	return c.batchUpdate(spreadsheetID, payload)
}

func (c *SheetsClient) batchUpdate(spreadsheetID string, payload batchUpdateRequest) error {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s:batchUpdate", c.Cfg.Sheets.BaseURL, spreadsheetID)

	_, err := c.doJSON(http.MethodPost, endpoint, payload)
	return err
}
