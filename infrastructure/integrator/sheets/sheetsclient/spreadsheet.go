package sheetsclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type copyRequest struct {
	Name string `json:"name"`
}

// CopySpreadsheet duplica a planilha modelo no Drive com um novo título
func (c *SheetsClient) CopySpreadsheet(templateID, title string) (*SpreadsheetFile, error) {
	url := fmt.Sprintf("%s/files/%s/copy", c.Cfg.Sheets.DriveBaseURL, templateID)

	body, err := c.doJSON(http.MethodPost, url, copyRequest{Name: title})
	if err != nil {
		return nil, err
	}

	var file SpreadsheetFile
	if err := json.Unmarshal(body, &file); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &file, nil
}

type permissionRequest struct {
	Type         string `json:"type"`
	Role         string `json:"role"`
	EmailAddress string `json:"emailAddress"`
}

// ShareWithWriter concede acesso de edição ao e-mail informado
func (c *SheetsClient) ShareWithWriter(fileID, email string) error {
	url := fmt.Sprintf("%s/files/%s/permissions", c.Cfg.Sheets.DriveBaseURL, fileID)

	_, err := c.doJSON(http.MethodPost, url, permissionRequest{
		Type:         "user",
		Role:         "writer",
		EmailAddress: email,
	})

	return err
}
