package draws

import (
	"strconv"
	"testing"
)

func generateBenchmarkRaws(n int) []RawDraw {
	raws := make([]RawDraw, 0, n)
	for i := 0; i < n; i++ {
		raws = append(raws, RawDraw{
			Game:      "Powerball",
			Month:     strconv.Itoa(i%12 + 1),
			Day:       strconv.Itoa(i%28 + 1),
			Year:      strconv.Itoa(2010 + i%15),
			Num1:      strconv.Itoa(i%69 + 1),
			Num2:      strconv.Itoa((i+7)%69 + 1),
			Num3:      strconv.Itoa((i+13)%69 + 1),
			Num4:      strconv.Itoa((i+29)%69 + 1),
			Num5:      strconv.Itoa((i+41)%69 + 1),
			Powerball: strconv.Itoa(i%26 + 1),
			PowerPlay: strconv.Itoa(i%5 + 2),
		})
	}
	return raws
}

func BenchmarkBuildWide(b *testing.B) {
	raws := generateBenchmarkRaws(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildWide(raws)
	}
}

func BenchmarkBuildLong(b *testing.B) {
	wide := BuildWide(generateBenchmarkRaws(1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildLong(wide)
	}
}

func BenchmarkParseNullInt(b *testing.B) {
	inputs := []string{"3", "41", "", "NA", "NaN", "3.0", "09", "garbage"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseNullInt(inputs[i%len(inputs)])
	}
}
