package draws

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnCountError reports a raw row whose width is neither 10 nor 11.
type ColumnCountError struct {
	Count int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("unexpected number of columns: %d (expected 10 or 11)", e.Count)
}

// ReadFile reads a headerless raw export, CSV by default and XLSX when the
// extension says so.
func ReadFile(path string) ([]RawDraw, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}

// ReadCSV reads a no-header CSV and assigns the expected columns based on
// each row's width.
func ReadCSV(path string) ([]RawDraw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // widths are validated row by row below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := make([]RawDraw, 0, len(records))
	for _, rec := range records {
		d, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ReadXLSX reads the first worksheet of an Excel export with the same
// headerless contract as ReadCSV. GetRows drops trailing empty cells, so a
// row whose PowerPlay cell is blank arrives 10 wide and normalizes the same
// way a 10-column CSV row does.
func ReadXLSX(path string) ([]RawDraw, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	out := make([]RawDraw, 0, len(rows))
	for _, rec := range rows {
		d, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func fromRecord(rec []string) (RawDraw, error) {
	switch len(rec) {
	case 11:
	case 10:
		rec = append(rec, "")
	default:
		return RawDraw{}, &ColumnCountError{Count: len(rec)}
	}
	return RawDraw{
		Game:      rec[0],
		Month:     rec[1],
		Day:       rec[2],
		Year:      rec[3],
		Num1:      rec[4],
		Num2:      rec[5],
		Num3:      rec[6],
		Num4:      rec[7],
		Num5:      rec[8],
		Powerball: rec[9],
		PowerPlay: rec[10],
	}, nil
}
