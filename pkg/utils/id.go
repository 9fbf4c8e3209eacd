package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// sem caracteres ambíguos (0/O, 1/I/l)
const shortIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const shortIDSize = 6

// ShortID gera um identificador curto com prefixo, ex.: MANUAL-7KQ2XA
func ShortID(prefix string) (string, error) {
	id, err := gonanoid.Generate(shortIDAlphabet, shortIDSize)
	if err != nil {
		return "", err
	}
	return prefix + id, nil
}
