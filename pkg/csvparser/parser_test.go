package csvparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{
			name:     "Separador vírgula",
			input:    "transacao,cliente,valor\nABC123,Maria Silva,300",
			expected: [][]string{{"transacao", "cliente", "valor"}, {"ABC123", "Maria Silva", "300"}},
		},
		{
			name:     "Separador ponto e vírgula com quebra de linha do Windows",
			input:    "transacao;valor\r\nABC123;300,00\r\n",
			expected: [][]string{{"transacao", "valor"}, {"ABC123", "300", "00"}},
		},
		{
			name:     "Separadores misturados na mesma linha",
			input:    "a,b;c",
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name:     "Aspas protegem o separador e não são emitidas",
			input:    `ABC123,"Silva, Maria","300,00"`,
			expected: [][]string{{"ABC123", "Silva, Maria", "300,00"}},
		},
		{
			name:     "Aspas duplicadas não são convertidas",
			input:    `"diz ""oi""",x`,
			expected: [][]string{{"diz oi", "x"}},
		},
		{
			name:     "Aspas não fechadas engolem o resto da linha",
			input:    `a,"b,c;d`,
			expected: [][]string{{"a", "b,c;d"}},
		},
		{
			name:     "Linhas em branco são descartadas",
			input:    "a,b\n\n   \n\t\nc,d\n",
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:     "Campos não são aparados",
			input:    " a , b ",
			expected: [][]string{{" a ", " b "}},
		},
		{
			name:     "Campos vazios são mantidos",
			input:    "a,,c,",
			expected: [][]string{{"a", "", "c", ""}},
		},
		{
			name:     "Texto vazio",
			input:    "",
			expected: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestParse_IdaEVolta(t *testing.T) {
	rows := [][]string{
		{"transacao", "cliente", "e-mail", "valor"},
		{"ABC123", "Maria Silva", "maria@email.com", "300.00"},
		{"DEF456", " João ", "", "1.234"},
	}

	for _, delimiter := range []string{",", ";"} {
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, strings.Join(row, delimiter))
		}

		assert.Equal(t, rows, Parse(strings.Join(lines, "\n")), "delimitador %q", delimiter)
	}
}
