package report

import (
	"bytes"
	"geodistance/internal/domain"
	"geodistance/internal/ports"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parisLondon = ports.DistanceResult{
	Start:          domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
	End:            domain.Coordinates{Lat: 51.5074, Lon: -0.1278},
	DistanceMeters: 343556.0634,
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" GeoJSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatGeoJSON, f)

	_, err = ParseFormat("xml")
	assert.EqualError(t, err, `unknown format "xml" (want one of: text, table, geojson)`)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, parisLondon))
	assert.Equal(t, "343556.063\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, parisLondon))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "DISTANCE (M)")
	assert.Contains(t, out, "48.8566,2.3522")
	assert.Contains(t, out, "51.5074,-0.1278")
	assert.Contains(t, out, "343556.063")
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatGeoJSON, parisLondon))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{2.3522, 48.8566}, {-0.1278, 51.5074}}, line)
	assert.InDelta(t, 343556.0634, fc.Features[0].Properties.MustFloat64("distance_meters"), 1e-9)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("xml"), parisLondon))
	assert.Zero(t, buf.Len())
}
