// Package dictionary holds the static column documentation shipped next to
// every cleaned output.
package dictionary

import (
	"encoding/csv"
	"os"
)

// Entry documents one output column.
type Entry struct {
	Column      string
	Description string
}

// Entries returns the full data dictionary covering both the wide and long
// outputs, in output order.
func Entries() []Entry {
	return []Entry{
		{"Date", "Draw date (YYYY-MM-DD)"},
		{"Num1", "First main ball"},
		{"Num2", "Second main ball"},
		{"Num3", "Third main ball"},
		{"Num4", "Fourth main ball"},
		{"Num5", "Fifth main ball"},
		{"Powerball", "Powerball number"},
		{"PowerPlay", "Power Play multiplier (may be blank)"},
		{"Year", "Calendar year"},
		{"YearMonth", "YYYY-MM period string"},
		{"BallType", "Main or Powerball (long format only)"},
		{"BallNumber", "Ball number value"},
		{"Position", "Position: 1..5 for main, PB for Powerball (long only)"},
	}
}

// Describe returns the description for a column name, or the empty string
// when the column is not documented.
func Describe(column string) string {
	for _, e := range Entries() {
		if e.Column == column {
			return e.Description
		}
	}
	return ""
}

// WriteCSV writes the dictionary with its column,description header.
func WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"column", "description"}); err != nil {
		return err
	}
	for _, e := range Entries() {
		if err := w.Write([]string{e.Column, e.Description}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
