// Package anytime defines the append-only anytime log rows emitted by the
// search drivers and a CSV renderer for them.
package anytime

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Row is one anytime-log record. Generation is only meaningful for IBEA;
// GSEMO and PLS leave it at zero and omit it from rendered output.
type Row struct {
	Evaluation  int
	Generation  int
	Hypervolume float64
}

// HasGeneration distinguishes IBEA's three-column rows from GSEMO/PLS's
// two-column rows for CSV rendering purposes.
type Log struct {
	Rows          []Row
	HasGeneration bool
}

// WriteCSV renders the log with the header mandated by the output row
// schema: "evaluation,hypervolume" or "evaluation,generation,hypervolume".
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if l.HasGeneration {
		if err := cw.Write([]string{"evaluation", "generation", "hypervolume"}); err != nil {
			return err
		}
	} else {
		if err := cw.Write([]string{"evaluation", "hypervolume"}); err != nil {
			return err
		}
	}

	for _, r := range l.Rows {
		var rec []string
		if l.HasGeneration {
			rec = []string{
				strconv.Itoa(r.Evaluation),
				strconv.Itoa(r.Generation),
				strconv.FormatFloat(r.Hypervolume, 'g', -1, 64),
			}
		} else {
			rec = []string{
				strconv.Itoa(r.Evaluation),
				strconv.FormatFloat(r.Hypervolume, 'g', -1, 64),
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return cw.Error()
}
