package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Particles: []int{320, 320, 60},
		Links:     []int{12, 14, 1},
		Metrics:   map[string]float64{"links": 9},
		Frames:    3,
	}
}

func TestWriteFramesCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteFramesCSV(&sb, testResult()); err != nil {
		t.Fatal(err)
	}
	want := "frame,particles,links\n0,320,12\n1,320,14\n2,60,1\n"
	if sb.String() != want {
		t.Errorf("csv = %q, want %q", sb.String(), want)
	}
}

func TestWriteReport(t *testing.T) {
	rep := NewReport("starfield", 7, 1200, 800, testResult())
	rep.Timestamp = time.Unix(1700000000, 0)

	dir, err := WriteReport(t.TempDir(), rep, testResult())
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if filepath.Base(dir) != "starfield_1700000000" {
		t.Errorf("unexpected run dir %s", dir)
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Seed != 7 || got.Frames != 3 || got.Metrics["links"] != 9 {
		t.Errorf("report lost values: %+v", got)
	}
	if got.MeanLinks != 9 {
		t.Errorf("mean links = %f, want 9", got.MeanLinks)
	}
	if _, err := os.Stat(filepath.Join(dir, "frames.csv")); err != nil {
		t.Error("frames.csv missing")
	}
}
