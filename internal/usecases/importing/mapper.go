package importing

import (
	"strings"
	"unicode"

	"github.com/vfg2006/sales-commission-api/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type vocabulary struct {
	terms []string
	words []string // termos curtos que só valem como palavra inteira
	set   func(m *domain.ColumnMapping, index int)
	get   func(m *domain.ColumnMapping) *int
}

// A ordem define a prioridade quando um cabeçalho casa com mais de um campo
var vocabularies = []vocabulary{
	{
		terms: []string{"email", "e-mail"},
		set:   func(m *domain.ColumnMapping, i int) { m.ClientEmail = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.ClientEmail },
	},
	{
		terms: []string{"telefone", "phone", "celular", "whatsapp"},
		set:   func(m *domain.ColumnMapping, i int) { m.ClientPhone = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.ClientPhone },
	},
	{
		terms: []string{"transacao", "transaction", "codigo", "pedido", "order", "external"},
		words: []string{"id"},
		set:   func(m *domain.ColumnMapping, i int) { m.ExternalID = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.ExternalID },
	},
	{
		terms: []string{"produto", "product", "plano", "curso"},
		set:   func(m *domain.ColumnMapping, i int) { m.Product = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.Product },
	},
	{
		terms: []string{"valor", "value", "total", "price", "preco", "amount"},
		set:   func(m *domain.ColumnMapping, i int) { m.TotalValue = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.TotalValue },
	},
	{
		terms: []string{"parcela", "installment", "vezes"},
		set:   func(m *domain.ColumnMapping, i int) { m.Installments = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.Installments },
	},
	{
		terms: []string{"data", "date", "criado", "created"},
		set:   func(m *domain.ColumnMapping, i int) { m.SaleDate = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.SaleDate },
	},
	{
		terms: []string{"cliente", "client", "comprador", "buyer", "nome", "name"},
		set:   func(m *domain.ColumnMapping, i int) { m.ClientName = &i },
		get:   func(m *domain.ColumnMapping) *int { return m.ClientName },
	},
}

// AutoMap sugere o mapeamento das colunas a partir do cabeçalho. Cada coluna fica com o
// primeiro campo ainda livre cujo vocabulário casa; um campo mapeado nunca é sobrescrito.
func AutoMap(headers []string) domain.ColumnMapping {
	mapping := domain.ColumnMapping{}

	for index, header := range headers {
		normalized := NormalizeHeader(header)
		if normalized == "" {
			continue
		}

		for _, v := range vocabularies {
			if v.get(&mapping) != nil {
				continue
			}
			if v.matches(normalized) {
				v.set(&mapping, index)
				break
			}
		}
	}

	return mapping
}

func (v vocabulary) matches(header string) bool {
	for _, term := range v.terms {
		if strings.Contains(header, term) {
			return true
		}
	}

	if len(v.words) == 0 {
		return false
	}

	fields := strings.FieldsFunc(header, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, field := range fields {
		for _, word := range v.words {
			if field == word {
				return true
			}
		}
	}

	return false
}

// NormalizeHeader deixa o cabeçalho em minúsculas, sem espaços nas pontas e sem acentos
func NormalizeHeader(header string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, header)
	if err != nil {
		result = header
	}
	return strings.ToLower(strings.TrimSpace(result))
}
