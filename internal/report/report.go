// Package report renders distance results for terminal or machine output.
package report

import (
	"fmt"
	"geodistance/internal/ports"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type Format string

const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatGeoJSON Format = "geojson"
)

var formats = []Format{FormatText, FormatTable, FormatGeoJSON}

// ParseFormat matches name case-insensitively against the supported formats.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}

	names := make([]string, 0, len(formats))
	for _, known := range formats {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("unknown format %q (want one of: %s)", name, strings.Join(names, ", "))
}

// Write renders res to w in the given format.
func Write(w io.Writer, format Format, res ports.DistanceResult) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, meters(res.DistanceMeters))
		return err
	case FormatTable:
		return writeTable(w, res)
	case FormatGeoJSON:
		return writeGeoJSON(w, res)
	}
	return fmt.Errorf("write report: unsupported format %q", format)
}

func meters(d float64) string {
	return strconv.FormatFloat(d, 'f', 3, 64)
}

func writeTable(w io.Writer, res ports.DistanceResult) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Start", "End", "Distance (m)"})
	t.AppendRow(table.Row{res.Start.String(), res.End.String(), meters(res.DistanceMeters)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// writeGeoJSON emits a FeatureCollection with one start->end LineString.
func writeGeoJSON(w io.Writer, res ports.DistanceResult) error {
	f := geojson.NewFeature(orb.LineString{res.Start.Point(), res.End.Point()})
	f.Properties["distance_meters"] = res.DistanceMeters

	fc := geojson.NewFeatureCollection().Append(f)
	b, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal geojson: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
