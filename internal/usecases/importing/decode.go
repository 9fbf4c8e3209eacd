package importing

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-commission-api/pkg/csvparser"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var (
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
)

// DecodedUpload são as linhas do arquivo enviado (linha 0 = cabeçalho) e o hash do conteúdo
type DecodedUpload struct {
	Rows     [][]string
	FileHash string
}

// DecodeUpload lê CSV (UTF-8 ou ISO-8859-1) ou XLSX e devolve as linhas no mesmo formato
func DecodeUpload(filename string, data []byte) (*DecodedUpload, error) {
	upload := &DecodedUpload{FileHash: FileHash(data)}

	if isSpreadsheet(filename, data) {
		rows, err := readSpreadsheet(data)
		if err != nil {
			return nil, err
		}
		upload.Rows = rows
		return upload, nil
	}

	upload.Rows = csvparser.Parse(decodeText(data))
	return upload, nil
}

func FileHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func isSpreadsheet(filename string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return true
	}
	return bytes.HasPrefix(data, zipMagic)
}

// decodeText remove o BOM e converte de ISO-8859-1 quando o conteúdo não é UTF-8 válido,
// formato comum das planilhas exportadas no Excel em português
func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

func readSpreadsheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return [][]string{}, nil
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %s", sheets[0])
	}

	rows := make([][]string, 0, len(raw))
	for _, row := range raw {
		if isBlankRow(row) {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
