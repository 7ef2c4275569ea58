package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

var noon = time.Date(2024, time.January, 25, 12, 0, 0, 0, astro.IST)

func sampleDay() *panchang.Day {
	d := panchang.Calculate(noon)
	return &d
}

func sampleChart(t *testing.T) *chart.Chart {
	t.Helper()
	c, err := chart.Calculate(chart.BirthDetails{
		Date:      "1990-06-15",
		Time:      "08:30",
		Latitude:  "28.6139",
		Longitude: "77.2090",
		Timezone:  "Asia/Kolkata",
	}, chart.Vedic, noon)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return c
}

func TestExportPanchang(t *testing.T) {
	day := sampleDay()
	fests := []festival.Festival{{Name: "Holi", Type: festival.Major, Duration: 2}}

	e := ExportPanchang(day, fests, noon)

	if !e.GeneratedAt.Equal(noon) {
		t.Errorf("GeneratedAt = %v, want %v", e.GeneratedAt, noon)
	}
	if e.Day != day {
		t.Error("Day should be the given day")
	}
	if len(e.ActiveWindows) != 1 || e.ActiveWindows[0].Name != panchang.WindowAbhijit {
		t.Errorf("ActiveWindows = %+v, want Abhijit Muhurat", e.ActiveWindows)
	}
	if len(e.Festivals) != 1 {
		t.Errorf("Festivals count = %d, want 1", len(e.Festivals))
	}
}

func TestExportPanchang_Nil(t *testing.T) {
	e := ExportPanchang(nil, nil, noon)

	if e.Day != nil {
		t.Error("Day should be nil")
	}
	if e.ActiveWindows == nil || e.Festivals == nil {
		t.Error("slices should be empty, not nil, so they encode as []")
	}
}

func TestPanchangExport_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportPanchang(sampleDay(), nil, noon).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"generated_at", "panchang", "active_windows", "upcoming_festivals"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if !strings.Contains(buf.String(), `"rahu_kaal"`) {
		t.Error("panchang should include rahu_kaal")
	}
}

func TestChartExport_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportChart(sampleChart(t)).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["period_label"] != "Dasha" {
		t.Errorf("period_label = %v, want Dasha", decoded["period_label"])
	}
	if decoded["ascendant_sign"] != "Sagittarius" {
		t.Errorf("ascendant_sign = %v, want Sagittarius", decoded["ascendant_sign"])
	}
}

func TestWritePanchangTable(t *testing.T) {
	var buf bytes.Buffer
	WritePanchangTable(&buf, sampleDay(), time.Date(2024, time.January, 25, 14, 0, 0, 0, astro.IST))

	out := buf.String()
	for _, want := range []string{"Panchang @ 2024-01-25 14:00 IST", "Pushya", "Thursday", "Sunrise"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Rahu Kaal is the only window running at 14:00
	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "* ") {
			marked = append(marked, line)
		}
	}
	if len(marked) != 1 || !strings.Contains(marked[0], panchang.WindowRahuKaal) {
		t.Errorf("marked windows = %q, want only Rahu Kaal", marked)
	}
}

func TestWritePanchangTable_Nil(t *testing.T) {
	var buf bytes.Buffer
	WritePanchangTable(&buf, nil, noon)

	if !strings.Contains(buf.String(), "No data") {
		t.Error("expected 'No data' message")
	}
}

func TestWriteChartSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteChartSummary(&buf, sampleChart(t))

	out := buf.String()
	for _, want := range []string{
		"Chart (vedic) for 1990-06-15 08:30 at 28.6139, 77.2090",
		"Sagittarius",
		"Gemini",
		"Purva Bhadrapada",
		"Air 100%",
		"Dasha",
		"career",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteFestivals(t *testing.T) {
	fests := festival.Default().ForYear(2024, astro.IST)

	var buf bytes.Buffer
	WriteFestivals(&buf, fests)

	out := buf.String()
	if !strings.Contains(out, "2024-03-25 Holi") {
		t.Errorf("output missing Holi row:\n%s", out)
	}
	if !strings.Contains(out, "Total: 17 festivals") {
		t.Errorf("output missing total:\n%s", out)
	}
}

func TestWriteFestivals_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteFestivals(&buf, nil)

	if !strings.Contains(buf.String(), "No festivals") {
		t.Error("expected 'No festivals' message")
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"Makar Sankranti long", 10, "Makar Sa.."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncateStr(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
