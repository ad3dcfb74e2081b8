package draws

import (
	"database/sql/driver"
	"strconv"
	"strings"
	"time"
)

// Version returns the current version of the toolkit.
func Version() string { return "0.1.0" }

// RawColumns is the canonical 11-column order of a raw export row.
var RawColumns = []string{"Game", "Month", "Day", "Year", "Num1", "Num2", "Num3", "Num4", "Num5", "Powerball", "PowerPlay"}

const (
	dateFormat      = "2006-01-02"
	yearMonthFormat = "2006-01"
)

// Ball type labels used in the long form.
const (
	BallTypeMain      = "Main"
	BallTypePowerball = "Powerball"
	PositionPowerball = "PB"
)

// NullInt is an integer that can be absent. Absent is distinct from zero.
type NullInt struct {
	Int   int
	Valid bool
}

// ParseNullInt parses s as a nullable integer. Surrounding whitespace is
// ignored; the empty string and the tokens "NA" and "NaN" are null, and so
// is anything that does not parse as an integral number.
func ParseNullInt(s string) NullInt {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" || s == "NaN" {
		return NullInt{}
	}
	if v, err := strconv.Atoi(s); err == nil {
		return NullInt{Int: v, Valid: true}
	}
	// Integral floats ("3.0") still count; fractional values do not.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return NullInt{}
	}
	return NullInt{Int: int(f), Valid: true}
}

// Value implements driver.Valuer so a null maps to SQL NULL in
// parameterized inserts.
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return int64(n.Int), nil
}

// String renders the value for CSV output; null is the empty string.
func (n NullInt) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Int)
}

// RawDraw is one record of the headerless export, normalized to the fixed
// 11-column shape. Values are kept as read; a row that had only 10 columns
// carries an empty PowerPlay.
type RawDraw struct {
	Game      string
	Month     string
	Day       string
	Year      string
	Num1      string
	Num2      string
	Num3      string
	Num4      string
	Num5      string
	Powerball string
	PowerPlay string
}

// WideRow is one cleaned draw. Num1..Num5 and Powerball are non-null for
// every row that survives BuildWide; PowerPlay may stay null.
type WideRow struct {
	Date      time.Time
	Num1      NullInt
	Num2      NullInt
	Num3      NullInt
	Num4      NullInt
	Num5      NullInt
	Powerball NullInt
	PowerPlay NullInt
	Year      int
	YearMonth string
}

// BallRow is one ball of a draw in the long form.
type BallRow struct {
	Date       time.Time
	BallType   string
	BallNumber NullInt
	Position   string
	PowerPlay  NullInt
	Year       int
	YearMonth  string
}
