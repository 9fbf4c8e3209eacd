package importing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
)

const (
	defaultClientName  = "Cliente"
	defaultProductName = "Produto"
	// linha 1 é o cabeçalho
	firstDataLine = 2
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Accessor lê um campo da linha; devolve "" quando a coluna não existe na linha
type Accessor func(row []string) string

// Accessors é o mapeamento resolvido uma única vez em funções de leitura por campo
type Accessors struct {
	ExternalID   Accessor
	ClientName   Accessor
	ClientEmail  Accessor
	ClientPhone  Accessor
	Product      Accessor
	TotalValue   Accessor
	Installments Accessor
	SaleDate     Accessor
}

// SaleDraft é uma linha já interpretada, pronta para ser conciliada
type SaleDraft struct {
	Line         int
	ExternalID   string
	ClientName   string
	ClientEmail  *string
	ClientPhone  *string
	ProductName  string
	TotalValue   decimal.Decimal
	Installments int
	SaleDate     time.Time
}

type Plan struct {
	Drafts     []*SaleDraft
	Skipped    int
	Duplicates int
}

// ValidateImport bloqueia a importação antes de qualquer acesso ao banco
func ValidateImport(headers []string, mapping domain.ColumnMapping, defaults domain.ImportDefaults) error {
	if mapping.ExternalID == nil {
		return NewImportError(ErrExternalIDUnmapped, apiErrors.ErrMissingRequiredData, "Mapeie a coluna do identificador da transação")
	}
	if mapping.TotalValue == nil {
		return NewImportError(ErrTotalValueUnmapped, apiErrors.ErrMissingRequiredData, "Mapeie a coluna do valor total")
	}

	for _, index := range []*int{
		mapping.ExternalID,
		mapping.ClientName,
		mapping.ClientEmail,
		mapping.ClientPhone,
		mapping.Product,
		mapping.TotalValue,
		mapping.Installments,
		mapping.SaleDate,
	} {
		if index != nil && (*index < 0 || *index >= len(headers)) {
			return NewImportError(ErrMappingOutOfRange, apiErrors.ErrInvalidFormat, "Coluna mapeada não existe no arquivo")
		}
	}

	if strings.TrimSpace(defaults.SellerID) == "" {
		return NewImportError(ErrSellerRequired, apiErrors.ErrMissingRequiredData, "Selecione o vendedor da importação")
	}
	if !commissioning.ValidPercent(defaults.CommissionPercent) {
		return NewImportError(ErrInvalidPercent, apiErrors.ErrInvalidFormat, "Percentual de comissão deve estar entre 0 e 100")
	}
	if !defaults.Platform.IsValid() {
		return NewImportError(ErrInvalidPlatform, apiErrors.ErrInvalidFormat, "Plataforma inválida")
	}

	return nil
}

func ResolveMapping(mapping domain.ColumnMapping) Accessors {
	return Accessors{
		ExternalID:   column(mapping.ExternalID),
		ClientName:   column(mapping.ClientName),
		ClientEmail:  column(mapping.ClientEmail),
		ClientPhone:  column(mapping.ClientPhone),
		Product:      column(mapping.Product),
		TotalValue:   column(mapping.TotalValue),
		Installments: column(mapping.Installments),
		SaleDate:     column(mapping.SaleDate),
	}
}

func column(index *int) Accessor {
	if index == nil {
		return func([]string) string { return "" }
	}

	i := *index
	return func(row []string) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}
}

// PlanRows interpreta as linhas de dados (sem o cabeçalho). Linhas sem identificador são
// puladas e identificadores repetidos ficam com a última ocorrência, na posição da primeira.
func PlanRows(rows [][]string, accessors Accessors, defaults domain.ImportDefaults) *Plan {
	now := defaults.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	plan := &Plan{Drafts: make([]*SaleDraft, 0, len(rows))}
	positions := make(map[string]int, len(rows))

	for i, row := range rows {
		externalID := strings.TrimSpace(accessors.ExternalID(row))
		if externalID == "" {
			plan.Skipped++
			continue
		}

		draft := &SaleDraft{
			Line:         i + firstDataLine,
			ExternalID:   externalID,
			ClientName:   orDefault(accessors.ClientName(row), defaultClientName),
			ClientEmail:  optional(accessors.ClientEmail(row)),
			ClientPhone:  optional(accessors.ClientPhone(row)),
			ProductName:  orDefault(accessors.Product(row), orDefault(defaults.ProductName, defaultProductName)),
			TotalValue:   ParseValue(accessors.TotalValue(row)),
			Installments: ParseInstallments(accessors.Installments(row)),
			SaleDate:     ParseSaleDate(accessors.SaleDate(row), now()),
		}

		if pos, seen := positions[externalID]; seen {
			plan.Drafts[pos] = draft
			plan.Duplicates++
			continue
		}

		positions[externalID] = len(plan.Drafts)
		plan.Drafts = append(plan.Drafts, draft)
	}

	return plan
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// ParseValue aceita "1.234,56", "1234.56" e "R$ 300,00". Com vírgula presente os pontos
// são separadores de milhar. Valor ilegível vira zero.
func ParseValue(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value.Round(2)
}

// ParseInstallments lê o número inicial do texto ("3", "3x"); ausente ou menor que 1 vira 1
func ParseInstallments(raw string) int {
	raw = strings.TrimSpace(raw)

	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}

	count, err := strconv.Atoi(raw[:end])
	if err != nil || count < 1 {
		return 1
	}
	return count
}

// ParseSaleDate tenta formatos ISO e depois DD/MM/AAAA no primeiro trecho do texto.
// Sem data válida usa o dia de hoje.
func ParseSaleDate(raw string, today time.Time) time.Time {
	raw = strings.TrimSpace(raw)

	if raw != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return dateOnly(t)
			}
		}

		if t, ok := parseBrazilianDate(strings.Fields(raw)[0]); ok {
			return t
		}
	}

	return dateOnly(today)
}

func parseBrazilianDate(token string) (time.Time, bool) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, errDay := strconv.Atoi(parts[0])
	month, errMonth := strconv.Atoi(parts[1])
	year, errYear := strconv.Atoi(parts[2])
	if errDay != nil || errMonth != nil || errYear != nil {
		return time.Time{}, false
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
