package adsdomain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Detail ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google Ads
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Error permite devolver a resposta de erro da API diretamente como error
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("google ads api: %s (%d %s)", e.Detail.Message, e.Detail.Code, e.Detail.Status)
}

// IsTokenExpired verifica se o erro é de credencial expirada
func (e *ErrorResponse) IsTokenExpired() bool {
	// 401/UNAUTHENTICATED indica access token expirado ou inválido
	return e.Detail.Code == 401 || e.Detail.Status == "UNAUTHENTICATED"
}

// IsDuplicate verifica se o erro é de critério negativo já existente no alvo.
// A API devolve DUPLICATE_KEYWORD / CRITERION_EXISTS na mensagem do mutate.
func (e *ErrorResponse) IsDuplicate() bool {
	message := strings.ToUpper(e.Detail.Message)
	return strings.Contains(message, "DUPLICATE") || strings.Contains(message, "ALREADY EXISTS")
}
