// Package oracle answers range and timing questions for strike planning.
// Callers consult it before building an action; the engine never does.
package oracle

import (
	"errors"
	"math"
)

// ErrOutOfRange is returned when the target lies beyond the platform's range
var ErrOutOfRange = errors.New("target out of range")

// ErrUnknown is returned for unknown nations, weapons or defense systems
var ErrUnknown = errors.New("unknown nation or platform")

const earthRadiusKm = 6371

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Platform is a missile or aircraft type
type Platform struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Speed float64 `json:"speed"` // km/h
	Range float64 `json:"range"` // km
	Class string  `json:"class"`
}

// RoundTrip is the flight time of an aircraft sortie in minutes
type RoundTrip struct {
	Outbound float64 `json:"outbound"`
	Return   float64 `json:"return"`
	Total    float64 `json:"total"`
}

// Window is the interception window in minutes after launch
type Window struct {
	InterceptTime float64 `json:"intercept_time"`
	Start         float64 `json:"window_start"`
	End           float64 `json:"window_end"`
}

var coordinates = map[string]Coordinates{
	"israel": {31.0461, 34.8516},
	"egypt":  {26.8206, 30.8025},
	"saudi":  {23.8859, 45.0792},
	"turkey": {38.9637, 35.2433},
	"iran":   {32.4279, 53.6880},
	"jordan": {30.5852, 36.2384},
	"syria":  {34.8021, 38.9968},
	"iraq":   {33.2232, 43.6793},
}

var missiles = map[string]Platform{
	"jericho3": {ID: "jericho3", Name: "Jericho III", Speed: 7000, Range: 4800, Class: "ballistic"},
	"delilah":  {ID: "delilah", Name: "Delilah", Speed: 900, Range: 250, Class: "cruise"},
	"spike":    {ID: "spike", Name: "Spike NLOS", Speed: 400, Range: 25, Class: "tactical"},
	"scud":     {ID: "scud", Name: "Scud", Speed: 2000, Range: 700, Class: "ballistic"},
	"fateh":    {ID: "fateh", Name: "Fateh", Speed: 3000, Range: 500, Class: "ballistic"},
	"qassam":   {ID: "qassam", Name: "Qassam", Speed: 800, Range: 40, Class: "tactical"},
}

var aircraft = map[string]Platform{
	"f35":    {ID: "f35", Name: "F-35", Speed: 1900, Range: 2200, Class: "fighter"},
	"f16":    {ID: "f16", Name: "F-16", Speed: 2100, Range: 4200, Class: "fighter"},
	"f15":    {ID: "f15", Name: "F-15", Speed: 2650, Range: 4800, Class: "fighter"},
	"apache": {ID: "apache", Name: "Apache", Speed: 365, Range: 480, Class: "fighter"},
}

// minutes before impact during which each system can engage
var defenseWindows = map[string]struct{ min, max float64 }{
	"iron_dome":   {0.5, 2},
	"arrow3":      {3, 8},
	"david_sling": {1, 4},
}

// Distance returns the great-circle distance in km
func Distance(from, to Coordinates) float64 {
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Lat*math.Pi/180)*math.Cos(to.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// NationDistance returns the distance in km between two nations
func NationDistance(fromID, toID string) (float64, error) {
	from, ok := coordinates[fromID]
	if !ok {
		return 0, ErrUnknown
	}
	to, ok := coordinates[toID]
	if !ok {
		return 0, ErrUnknown
	}
	return Distance(from, to), nil
}

// FlightTime returns minutes to target for a missile or aircraft (one way)
func FlightTime(fromID, toID, platformID string) (float64, error) {
	p, ok := missiles[platformID]
	if !ok {
		p, ok = aircraft[platformID]
	}
	if !ok {
		return 0, ErrUnknown
	}
	return flightMinutes(fromID, toID, p)
}

// AircraftFlightTime returns the round trip of an aircraft sortie
func AircraftFlightTime(fromID, toID, aircraftID string) (RoundTrip, error) {
	p, ok := aircraft[aircraftID]
	if !ok {
		return RoundTrip{}, ErrUnknown
	}
	oneWay, err := flightMinutes(fromID, toID, p)
	if err != nil {
		return RoundTrip{}, err
	}
	return RoundTrip{Outbound: oneWay, Return: oneWay, Total: oneWay * 2}, nil
}

// InterceptionWindow returns when a defense system can engage a missile
// with the given flight time in minutes
func InterceptionWindow(flightTime float64, system string) (Window, error) {
	r, ok := defenseWindows[system]
	if !ok {
		return Window{}, ErrUnknown
	}
	return Window{
		InterceptTime: flightTime - r.min,
		Start:         flightTime - r.max,
		End:           flightTime - r.min,
	}, nil
}

func flightMinutes(fromID, toID string, p Platform) (float64, error) {
	d, err := NationDistance(fromID, toID)
	if err != nil {
		return 0, err
	}
	if d > p.Range {
		return 0, ErrOutOfRange
	}
	return d / p.Speed * 60, nil
}
