package phugoid

import (
	"os"
	"strings"
	"testing"
)

func TestStreamStatesCSV(t *testing.T) {
	defer func() { cfgLoaded = false }()
	cfgLoaded = true
	config = _phugoidconfig{outputDir: t.TempDir(), resolution: 1000}
	conf := ExportConfig{Filename: "test", AsCSV: true}
	tracer := NewTracer(64, 16, 0, 5, conf)
	if _, _, err := tracer.Trace(); err != nil {
		t.Fatal(err)
	}
	// Trace waits on the export stream, so the file is complete here.
	data, err := os.ReadFile(config.outputDir + "/path-test.csv")
	if err != nil {
		t.Fatalf("CSV file not written: %s", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	var rows []string
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") {
			rows = append(rows, line)
		}
	}
	// One column header plus one row per point.
	if len(rows) != 6 {
		t.Fatalf("expected 6 non-comment lines, got %d", len(rows))
	}
	if rows[0] != "step,x,z,theta,R" {
		t.Fatalf("unexpected header %q", rows[0])
	}
	if !strings.HasPrefix(rows[1], "0,0.000000,16.000000,") {
		t.Fatalf("unexpected first record %q", rows[1])
	}
}

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty config should be useless")
	}
	if !(ExportConfig{AsCSV: true}).IsUseless() {
		t.Fatal("config without a filename should be useless")
	}
	if (ExportConfig{Filename: "x", AsCSV: true}).IsUseless() {
		t.Fatal("CSV config with a filename should not be useless")
	}
}

func TestStreamStatesCustomColumns(t *testing.T) {
	defer func() { cfgLoaded = false }()
	cfgLoaded = true
	config = _phugoidconfig{outputDir: t.TempDir(), resolution: 1000}
	conf := ExportConfig{
		Filename:     "custom",
		AsCSV:        true,
		CSVAppendHdr: func() string { return "depthRatio" },
		CSVAppend:    func(st TraceState) string { return "n/a" },
	}
	if _, _, err := NewTracer(64, 16, 0, 3, conf).Trace(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(config.outputDir + "/path-custom.csv")
	if err != nil {
		t.Fatalf("CSV file not written: %s", err)
	}
	if !strings.Contains(string(data), "step,x,z,theta,R,depthRatio") {
		t.Fatal("custom header column missing")
	}
	if !strings.Contains(string(data), ",n/a") {
		t.Fatal("custom record column missing")
	}
}
