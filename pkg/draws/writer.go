package draws

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WideHeader is the column order of the cleaned wide CSV.
var WideHeader = []string{"Date", "Num1", "Num2", "Num3", "Num4", "Num5", "Powerball", "PowerPlay", "Year", "YearMonth"}

// LongHeader is the column order of the cleaned long CSV.
var LongHeader = []string{"Date", "BallType", "BallNumber", "Position", "PowerPlay", "Year", "YearMonth"}

// WriteWideCSV writes the wide table with its header row. Null values
// become empty fields.
func WriteWideCSV(path string, rows []WideRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(WideHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Date.Format(dateFormat),
			r.Num1.String(),
			r.Num2.String(),
			r.Num3.String(),
			r.Num4.String(),
			r.Num5.String(),
			r.Powerball.String(),
			r.PowerPlay.String(),
			strconv.Itoa(r.Year),
			r.YearMonth,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteLongCSV writes the long table with its header row.
func WriteLongCSV(path string, rows []BallRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(LongHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Date.Format(dateFormat),
			r.BallType,
			r.BallNumber.String(),
			r.Position,
			r.PowerPlay.String(),
			strconv.Itoa(r.Year),
			r.YearMonth,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
