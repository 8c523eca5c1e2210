package summary

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"Date", "Line Code", "ST Hours", "OT Hours", "Total Hours", "Notes"}

// WriteCSV writes one row per entry of r, with the note for the same day and line.
func WriteCSV(w io.Writer, r *Report) error {
	notes := make(map[[2]string]string, len(r.Notes))
	for _, n := range r.Notes {
		notes[[2]string{n.WorkDate, n.LineCode}] = n.Text
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range r.Entries {
		if err := cw.Write([]string{
			e.WorkDate,
			e.LineCode,
			strconv.Itoa(e.STHours),
			strconv.Itoa(e.OTHours),
			strconv.Itoa(e.TotalHours()),
			notes[[2]string{e.WorkDate, e.LineCode}],
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
