package tabular

import (
	"fmt"
	"testing"

	"github.com/Station-Manager/tabular/dataset"
)

type benchRow struct {
	ID    int
	Call  string
	Band  string
	Freq  float64
	Notes *string
}

func benchRows(n int) []benchRow {
	rows := make([]benchRow, n)
	for i := range rows {
		rows[i] = benchRow{ID: i, Call: fmt.Sprintf("CALL%d", i), Band: "20m", Freq: 14.074}
	}
	return rows
}

func BenchmarkFill_1000Rows(b *testing.B) {
	ad := New()
	ad.WarmMetadata(benchRow{})
	rows := benchRows(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table := dataset.NewDataTable("bench")
		if err := ad.Fill(table, rows); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetField(b *testing.B) {
	ad := New()
	row := benchRow{ID: 1, Call: "M0CMC"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ad.GetField(row, "Call"); err != nil {
			b.Fatal(err)
		}
	}
}
