package saver

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"stock-data/internal/model"
)

var testBars = []model.Bar{
	{Date: "2024-06-03", Timestamp: 1717372800, Open: 3050, High: 3080, Low: 3000, Close: 3060, AdjClose: 3060, Volume: 980000, StockSplits: 5},
	{Date: "2024-06-04", Timestamp: 1717459200, Open: 3100, High: 3150, Low: 3090, Close: 3120.5, AdjClose: 3082.25, Volume: 1200000, Dividends: 37.5},
}

func TestCSVSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "7203.csv")
	if err := (CSVSaver{}).Save(testBars, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Date" || len(rows[0]) != len(Header) {
		t.Errorf("unexpected header %v", rows[0])
	}
	want := []string{"2024-06-04", "3100", "3150", "3090", "3120.5", "3082.25", "1200000", "37.5", "0"}
	for i, v := range want {
		if rows[2][i] != v {
			t.Errorf("row 2 col %d: got %q, want %q", i, rows[2][i], v)
		}
	}
}

func TestJSONSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.json")
	if err := (JSONSaver{}).Save(testBars, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []model.Bar
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[1].Dividends != 37.5 {
		t.Errorf("unexpected content: %+v", got)
	}
}

func TestParquetSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.parquet")
	if err := (ParquetSaver{}).Save(testBars, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := parquet.ReadFile[model.Bar](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 2 || got[0].StockSplits != 5 {
		t.Errorf("unexpected content: %+v", got)
	}
}

func TestForPath(t *testing.T) {
	cases := []struct {
		path, format, ext string
		wantErr           bool
	}{
		{"out/7203.csv", "", "csv", false},
		{"out/7203.json", "", "json", false},
		{"out/7203.PARQUET", "", "parquet", false},
		{"out/7203.txt", "", "csv", false},
		{"out/7203", "", "csv", false},
		{"out/7203.csv", "json", "json", false},
		{"out/7203.csv", "xml", "", true},
	}
	for _, tc := range cases {
		s, err := ForPath(tc.path, tc.format)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ForPath(%q, %q): expected error", tc.path, tc.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForPath(%q, %q): %v", tc.path, tc.format, err)
			continue
		}
		if s.Extension() != tc.ext {
			t.Errorf("ForPath(%q, %q) = %s, want %s", tc.path, tc.format, s.Extension(), tc.ext)
		}
	}
}

func TestSavers_ReportWriteFailure(t *testing.T) {
	const full = "/dev/full"
	if _, err := os.Stat(full); err != nil {
		t.Skip("no /dev/full on this platform")
	}
	for _, s := range []Saver{CSVSaver{}, JSONSaver{}} {
		if err := s.Save(testBars, full); err == nil {
			t.Errorf("%s: expected error writing to %s", s.Extension(), full)
		}
	}
}
