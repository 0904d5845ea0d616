package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yyx47882-sudo/Nakeroth.github.io/internal/sim"
)

// Report describes one headless run.
type Report struct {
	Variant   string             `json:"variant"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Frames    int                `json:"frames"`
	MeanLinks float64            `json:"mean_links"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewReport(variant string, seed int64, w, h int, result *sim.Result) Report {
	return Report{
		Variant:   variant,
		Timestamp: time.Now(),
		Seed:      seed,
		Width:     w,
		Height:    h,
		Frames:    result.Frames,
		MeanLinks: result.MeanLinks(),
		Metrics:   result.Metrics,
	}
}

// WriteReport writes report.json and frames.csv (particles and links per
// frame) into dir/<variant>_<unix time> and returns that directory.
func WriteReport(dir string, rep Report, result *sim.Result) (string, error) {
	runDir := filepath.Join(dir, fmt.Sprintf("%s_%d", rep.Variant, rep.Timestamp.Unix()))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "report.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := WriteFramesCSV(csvFile, result); err != nil {
		return "", err
	}
	return runDir, nil
}

func WriteFramesCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "particles", "links"}); err != nil {
		return err
	}
	for i := range result.Particles {
		links := 0
		if i < len(result.Links) {
			links = result.Links[i]
		}
		row := []string{strconv.Itoa(i), strconv.Itoa(result.Particles[i]), strconv.Itoa(links)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
