package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID cria identificadores curtos para ações e provas fictícias.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
