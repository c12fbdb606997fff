package importers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFile = errors.New("unsupported file type: upload a .csv or .xlsx file")

// DecodeUpload turns an uploaded file into CSV text. Spreadsheets are
// converted from their first sheet; CSV bytes that are not valid UTF-8
// have the offending sequences replaced.
func DecodeUpload(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FromXLSX(bytes.NewReader(content))
	case ".csv", ".txt", "":
		text := string(content)
		if !utf8.ValidString(text) {
			text = strings.ToValidUTF8(text, "�")
		}
		return text, nil
	default:
		return "", ErrUnsupportedFile
	}
}

// FromXLSX renders the first worksheet of a workbook as CSV text. Line
// breaks inside cells are flattened to spaces because the tokenizer reads
// one record per line.
func FromXLSX(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	flatten := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	var b strings.Builder
	w := csv.NewWriter(&b)
	for _, row := range rows {
		for i, cell := range row {
			row[i] = flatten.Replace(cell)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
