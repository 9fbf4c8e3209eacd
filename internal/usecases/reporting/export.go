package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Resumo"
	detailSheet  = "Comissões"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var lineErrorPattern = regexp.MustCompile(`^linha (\d+): (.*)$`)

var commissionStatusLabels = map[domain.CommissionStatus]string{
	domain.CommissionStatusPending:   "Pendente",
	domain.CommissionStatusReleased:  "Liberada",
	domain.CommissionStatusSuspended: "Suspensa",
	domain.CommissionStatusCancelled: "Cancelada",
}

var installmentStatusLabels = map[domain.InstallmentStatus]string{
	domain.InstallmentStatusPending:   "Pendente",
	domain.InstallmentStatusPaid:      "Paga",
	domain.InstallmentStatusOverdue:   "Atrasada",
	domain.InstallmentStatusCancelled: "Cancelada",
	domain.InstallmentStatusRefunded:  "Reembolsada",
}

var detailHeader = []string{
	"Competência", "Vendedor", "Venda", "Cliente", "Produto", "Plataforma", "Data da venda",
	"Parcela", "Vencimento", "Valor da parcela", "Status da parcela", "Percentual", "Comissão", "Status da comissão",
}

var summaryHeader = []string{
	"Vendedor", "Vendas", "Receita", "Comissão liberada", "Comissão pendente", "Comissão suspensa",
	"Parcelas pagas", "Parcelas pendentes", "Parcelas atrasadas", "Recebido", "A receber", "Em atraso",
}

// FormatMoney escreve o valor com duas casas e vírgula decimal, ex.: 1234,56
func FormatMoney(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}

func FormatCompetence(t time.Time) string {
	return t.UTC().Format("01/2006")
}

func detailRow(d *domain.CommissionDetail) []string {
	seller := d.SellerName
	if d.SellerID == "" {
		seller = UnassignedSellerName
	}

	return []string{
		FormatCompetence(d.CompetenceMonth),
		seller,
		d.ExternalID,
		d.ClientName,
		d.ProductName,
		string(d.Platform),
		FormatDate(d.SaleDate),
		fmt.Sprintf("%d/%d", d.InstallmentNumber, d.TotalInstallments),
		FormatDate(d.DueDate),
		FormatMoney(d.InstallmentValue),
		statusLabel(installmentStatusLabels, d.InstallmentStatus),
		FormatMoney(d.CommissionPercent) + "%",
		FormatMoney(d.CommissionValue),
		statusLabel(commissionStatusLabels, d.CommissionStatus),
	}
}

func summaryRow(s *domain.SellerSummary) []string {
	return []string{
		s.SellerName,
		strconv.Itoa(s.SalesCount),
		FormatMoney(s.Revenue),
		FormatMoney(s.CommissionReleased),
		FormatMoney(s.CommissionPending),
		FormatMoney(s.CommissionSuspended),
		strconv.Itoa(s.InstallmentsPaid),
		strconv.Itoa(s.InstallmentsPending),
		strconv.Itoa(s.InstallmentsOverdue),
		FormatMoney(s.ReceivedValue),
		FormatMoney(s.PendingValue),
		FormatMoney(s.OverdueValue),
	}
}

func statusLabel[S ~string](labels map[S]string, status S) string {
	if label, ok := labels[status]; ok {
		return label
	}
	return string(status)
}

func newSemicolonWriter(w io.Writer) (*csv.Writer, error) {
	if _, err := w.Write(utf8BOM); err != nil {
		return nil, err
	}
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	return writer, nil
}

// ExportCSV escreve as linhas de detalhe separadas por ponto e vírgula, com BOM para o Excel
func ExportCSV(w io.Writer, details []*domain.CommissionDetail) error {
	writer, err := newSemicolonWriter(w)
	if err != nil {
		return fmt.Errorf("erro ao escrever CSV: %w", err)
	}

	if err := writer.Write(detailHeader); err != nil {
		return fmt.Errorf("erro ao escrever CSV: %w", err)
	}
	for _, d := range details {
		if err := writer.Write(detailRow(d)); err != nil {
			return fmt.Errorf("erro ao escrever CSV: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportXLSX gera a planilha com o resumo por vendedor e as linhas de comissão
func ExportXLSX(w io.Writer, report *domain.CommissionReport, details []*domain.CommissionDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("erro ao criar aba de resumo: %w", err)
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return fmt.Errorf("erro ao criar aba de comissões: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo: %w", err)
	}

	summary := [][]string{summaryHeader}
	for _, s := range report.Sellers {
		summary = append(summary, summaryRow(s))
	}
	summary = append(summary,
		[]string{},
		[]string{"Receita por data da venda", FormatMoney(report.Totals.RevenueBySaleDate)},
		[]string{"Vendas no período", strconv.Itoa(report.Totals.SalesBySaleDate)},
		[]string{"Recebido por competência", FormatMoney(report.Totals.ReceivedByCompetence)},
		[]string{"A receber por competência", FormatMoney(report.Totals.PendingByCompetence)},
		[]string{"Em atraso por competência", FormatMoney(report.Totals.OverdueByCompetence)},
		[]string{"Total de comissões", FormatMoney(report.Totals.CommissionTotal)},
	)

	if err := writeSheet(f, summarySheet, summary, len(summaryHeader), headerStyle); err != nil {
		return err
	}

	rows := [][]string{detailHeader}
	for _, d := range details {
		rows = append(rows, detailRow(d))
	}
	if err := writeSheet(f, detailSheet, rows, len(detailHeader), headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]string, columns int, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("erro ao escrever linha %d da aba %s: %w", i+1, sheet, err)
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo na aba %s: %w", sheet, err)
	}

	return nil
}

// ImportErrorsCSV exporta os erros guardados de uma importação com as colunas linha e erro
func ImportErrorsCSV(w io.Writer, log *domain.CsvImportLog) error {
	writer, err := newSemicolonWriter(w)
	if err != nil {
		return fmt.Errorf("erro ao escrever CSV: %w", err)
	}

	if err := writer.Write([]string{"linha", "erro"}); err != nil {
		return fmt.Errorf("erro ao escrever CSV: %w", err)
	}
	for _, message := range log.Errors {
		line, text := "", message
		if m := lineErrorPattern.FindStringSubmatch(message); m != nil {
			line, text = m[1], m[2]
		}
		if err := writer.Write([]string{line, text}); err != nil {
			return fmt.Errorf("erro ao escrever CSV: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
