// Package export writes simulation results for downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gridcortex/bessval/core/montecarlo"
)

// WriteJSON writes the full results object to w in JSON format.
func WriteJSON(w io.Writer, res *montecarlo.Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes the per-iteration NPV-improvement distribution to w, one
// row per iteration in iteration order.
func WriteCSV(w io.Writer, res *montecarlo.Results) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iteration", "npv_improvement"}); err != nil {
		return err
	}
	for i, v := range res.NPVImprovement {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
