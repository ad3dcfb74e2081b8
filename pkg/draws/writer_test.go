package draws

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteWideCSV(t *testing.T) {
	r := sampleRaw()
	noPlay := sampleRaw()
	noPlay.Day = "08"
	noPlay.PowerPlay = ""

	wide := BuildWide([]RawDraw{r, noPlay})
	path := filepath.Join(t.TempDir(), "wide.csv")
	if err := WriteWideCSV(path, wide); err != nil {
		t.Fatalf("WriteWideCSV failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "Date,Num1,Num2,Num3,Num4,Num5,Powerball,PowerPlay,Year,YearMonth\n" +
		"2020-01-05,3,14,22,35,41,9,2,2020,2020-01\n" +
		"2020-01-08,3,14,22,35,41,9,,2020,2020-01\n"
	if string(got) != want {
		t.Errorf("wide csv mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteLongCSV(t *testing.T) {
	long := BuildLong(BuildWide([]RawDraw{sampleRaw()}))
	path := filepath.Join(t.TempDir(), "long.csv")
	if err := WriteLongCSV(path, long); err != nil {
		t.Fatalf("WriteLongCSV failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "Date,BallType,BallNumber,Position,PowerPlay,Year,YearMonth\n" +
		"2020-01-05,Main,3,1,2,2020,2020-01\n" +
		"2020-01-05,Main,14,2,2,2020,2020-01\n" +
		"2020-01-05,Main,22,3,2,2020,2020-01\n" +
		"2020-01-05,Main,35,4,2,2020,2020-01\n" +
		"2020-01-05,Main,41,5,2,2020,2020-01\n" +
		"2020-01-05,Powerball,9,PB,2,2020,2020-01\n"
	if string(got) != want {
		t.Errorf("long csv mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteWideCSVEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.csv")
	if err := WriteWideCSV(path, nil); err != nil {
		t.Fatalf("WriteWideCSV failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "Date,Num1,Num2,Num3,Num4,Num5,Powerball,PowerPlay,Year,YearMonth\n" {
		t.Errorf("expected header only, got %q", got)
	}
}
