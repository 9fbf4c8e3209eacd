// Package csvparser lê planilhas exportadas pelas plataformas de venda, que misturam
// vírgula e ponto e vírgula como separador
package csvparser

import "strings"

const quote = '"'

// Parse divide o texto em linhas e campos. Aspas alternam o modo citado e não são
// emitidas; fora delas tanto ',' quanto ';' encerram o campo. Linhas em branco são
// descartadas e os campos não são aparados.
func Parse(text string) [][]string {
	rows := make([][]string, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, parseLine(line))
	}

	return rows
}

func parseLine(line string) []string {
	fields := make([]string, 0)
	var current strings.Builder
	quoted := false

	for _, r := range line {
		switch {
		case r == quote:
			quoted = !quoted
		case !quoted && (r == ',' || r == ';'):
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, current.String())
}
