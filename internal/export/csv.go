// Package export renders ledger entries as a CSV balance sheet.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Dan9191/unidash/internal/models"
)

// FileName is the suggested download name of the balance sheet.
const FileName = "unidash_balance_sheet.csv"

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("no data to export")

var header = []string{"Date", "Description", "Category", "Type", "Amount"}

// WriteCSV writes entries to w, one row per entry, after a header row.
func WriteCSV(w io.Writer, entries []models.Entry) error {
	if len(entries) == 0 {
		return ErrNoData
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Category,
			e.Type,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// CSV returns the balance sheet as bytes.
func CSV(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
