package app

import (
	"fmt"
	"io"

	"github.com/gridcortex/bessval/core/montecarlo"
	"github.com/gridcortex/bessval/pkg/export"
)

func writeResults(w io.Writer, format string, res *montecarlo.Results) error {
	switch format {
	case "json":
		return export.WriteJSON(w, res)
	case "csv":
		return export.WriteCSV(w, res)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
