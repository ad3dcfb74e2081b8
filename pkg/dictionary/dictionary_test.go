package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEntriesCoverAllColumns(t *testing.T) {
	entries := Entries()
	if len(entries) != 13 {
		t.Fatalf("expected 13 documented columns, got %d", len(entries))
	}

	want := []string{
		"Date", "Num1", "Num2", "Num3", "Num4", "Num5", "Powerball",
		"PowerPlay", "Year", "YearMonth", "BallType", "BallNumber", "Position",
	}
	for i, e := range entries {
		if e.Column != want[i] {
			t.Errorf("entry %d column = %s, want %s", i, e.Column, want[i])
		}
		if e.Description == "" {
			t.Errorf("entry %s has empty description", e.Column)
		}
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe("PowerPlay"); got != "Power Play multiplier (may be blank)" {
		t.Errorf("Describe(PowerPlay) = %q", got)
	}
	if got := Describe("Position"); got != "Position: 1..5 for main, PB for Powerball (long only)" {
		t.Errorf("Describe(Position) = %q", got)
	}
	if got := Describe("NoSuchColumn"); got != "" {
		t.Errorf("expected empty description for unknown column, got %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_dictionary.csv")
	if err := WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 14 {
		t.Fatalf("expected header plus 13 rows, got %d lines", len(lines))
	}
	if lines[0] != "column,description" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Date,Draw date (YYYY-MM-DD)" {
		t.Errorf("first row = %q", lines[1])
	}
}
