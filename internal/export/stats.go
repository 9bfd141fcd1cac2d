package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/stepviz/internal/metrics"
)

// StatsData is the JSON form of a recorded pass over a script.
type StatsData struct {
	Title   string        `json:"title"`
	Steps   int           `json:"steps"`
	Metrics []string      `json:"metrics"`
	Samples []StatsSample `json:"samples"`
}

type StatsSample struct {
	Step      int       `json:"step"`
	Direction string    `json:"direction"`
	Values    []float64 `json:"values"`
}

func newStatsData(title string, steps int, rec *metrics.Recorder) StatsData {
	data := StatsData{
		Title:   title,
		Steps:   steps,
		Metrics: rec.Names(),
		Samples: make([]StatsSample, len(rec.Samples())),
	}
	for i, s := range rec.Samples() {
		data.Samples[i] = StatsSample{Step: s.Step, Direction: s.Direction.String(), Values: s.Values}
	}
	return data
}

// StatsJSON writes the recorder's samples as indented JSON.
func StatsJSON(w io.Writer, title string, steps int, rec *metrics.Recorder) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newStatsData(title, steps, rec))
}

// StatsCSV writes one row per sample: step, direction, then each metric.
func StatsCSV(w io.Writer, rec *metrics.Recorder) error {
	cw := csv.NewWriter(w)
	header := append([]string{"step", "direction"}, rec.Names()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range rec.Samples() {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(s.Step), s.Direction.String())
		for _, v := range s.Values {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
