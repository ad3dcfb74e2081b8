package draws

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// BuildWide turns raw draws into the cleaned wide table: derive Date from
// the Month/Day/Year fields, coerce ball values to nullable integers, drop
// rows missing a date or any main number or the Powerball, sort ascending
// by Date and dedupe by draw identity.
func BuildWide(raws []RawDraw) []WideRow {
	rows := make([]WideRow, 0, len(raws))
	for _, r := range raws {
		date, ok := toDate(r.Month, r.Day, r.Year)
		if !ok {
			continue
		}
		w := WideRow{
			Date:      date,
			Num1:      ParseNullInt(r.Num1),
			Num2:      ParseNullInt(r.Num2),
			Num3:      ParseNullInt(r.Num3),
			Num4:      ParseNullInt(r.Num4),
			Num5:      ParseNullInt(r.Num5),
			Powerball: ParseNullInt(r.Powerball),
			PowerPlay: ParseNullInt(r.PowerPlay),
			Year:      date.Year(),
			YearMonth: date.Format(yearMonthFormat),
		}
		if !w.Num1.Valid || !w.Num2.Valid || !w.Num3.Valid || !w.Num4.Valid || !w.Num5.Valid || !w.Powerball.Valid {
			continue
		}
		rows = append(rows, w)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return dedupeByDraw(rows)
}

// BuildLong reshapes wide rows into one row per ball: five Main rows in
// position order followed by the draw's Powerball row.
func BuildLong(wide []WideRow) []BallRow {
	out := make([]BallRow, 0, len(wide)*6)
	for _, w := range wide {
		nums := [...]NullInt{w.Num1, w.Num2, w.Num3, w.Num4, w.Num5}
		for i, n := range nums {
			out = append(out, BallRow{
				Date:       w.Date,
				BallType:   BallTypeMain,
				BallNumber: n,
				Position:   strconv.Itoa(i + 1),
				PowerPlay:  w.PowerPlay,
				Year:       w.Year,
				YearMonth:  w.YearMonth,
			})
		}
		out = append(out, BallRow{
			Date:       w.Date,
			BallType:   BallTypePowerball,
			BallNumber: w.Powerball,
			Position:   PositionPowerball,
			PowerPlay:  w.PowerPlay,
			Year:       w.Year,
			YearMonth:  w.YearMonth,
		})
	}
	return out
}

// toDate builds a calendar date from numeric month/day/year text. The second
// return is false when any component fails to parse or the combination is
// not a real date (month 13, February 30, ...).
func toDate(month, day, year string) (time.Time, bool) {
	m := ParseNullInt(month)
	d := ParseNullInt(day)
	y := ParseNullInt(year)
	if !m.Valid || !d.Valid || !y.Valid {
		return time.Time{}, false
	}
	t := time.Date(y.Int, time.Month(m.Int), d.Int, 0, 0, 0, 0, time.UTC)
	if t.Year() != y.Int || t.Month() != time.Month(m.Int) || t.Day() != d.Int {
		return time.Time{}, false
	}
	return t, true
}

// dedupeByDraw keeps the first occurrence of each
// (Date, Num1..Num5, Powerball, PowerPlay) tuple, in order.
func dedupeByDraw(rows []WideRow) []WideRow {
	seen := make(map[string]struct{}, len(rows))
	out := make([]WideRow, 0, len(rows))
	for _, r := range rows {
		k := drawKey(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// drawKey renders the dedupe identity. NullInt.String keeps null distinct
// from zero ("" vs "0").
func drawKey(r WideRow) string {
	return strings.Join([]string{
		r.Date.Format(dateFormat),
		r.Num1.String(),
		r.Num2.String(),
		r.Num3.String(),
		r.Num4.String(),
		r.Num5.String(),
		r.Powerball.String(),
		r.PowerPlay.String(),
	}, "|")
}
