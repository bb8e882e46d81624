package services

import (
	"encoding/json"
	"geodistance/internal/domain"
	"math"
	"reflect"
)

// CoordinatesFrom validates a single [latitude, longitude] argument.
//
// v may be any Go slice or array of length 2, such as []float64, [2]float64,
// or the []any produced by JSON decoding. Both elements must be real numbers.
func CoordinatesFrom(v any) (domain.Coordinates, error) {
	pair, ok := asPair(v)
	if !ok {
		return domain.Coordinates{}, ErrInvalidShape
	}

	lat, latOK := asNumber(pair[0])
	lon, lonOK := asNumber(pair[1])
	if !latOK || !lonOK {
		return domain.Coordinates{}, ErrInvalidNumber
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

// asPair returns the two elements of a length-2 slice or array.
func asPair(v any) ([2]any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return [2]any{}, false
	}

	if rv.Len() != 2 {
		return [2]any{}, false
	}

	return [2]any{rv.Index(0).Interface(), rv.Index(1).Interface()}, true
}

// asNumber accepts integer and float kinds plus json.Number.
// NaN and infinities are rejected.
func asNumber(v any) (float64, bool) {
	var f float64

	if n, ok := v.(json.Number); ok {
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	} else {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(rv.Uint())
		default:
			return 0, false
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
