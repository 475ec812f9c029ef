package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewRunID gera o identificador curto de uma execução de sincronização
func NewRunID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
