package csvstore

import (
	"strings"

	"safarnama/internal/domain"
)

// TravelCosts is the static inter-city fare table. Pairs are stored in
// one direction; lookups try both.
type TravelCosts struct {
	byPair map[[2]string]domain.TravelCostEntry // key: lowercase (origin, destination)
}

func OpenTravelCosts(path string) (*TravelCosts, error) {
	cols, raw, err := readTable(path)
	if err != nil {
		return nil, err
	}

	t := &TravelCosts{byPair: make(map[[2]string]domain.TravelCostEntry, len(raw))}
	for _, row := range raw {
		origin, err := field(cols, row, "origin")
		if err != nil {
			return nil, err
		}
		dest, err := field(cols, row, "destination")
		if err != nil {
			return nil, err
		}
		car, err := floatField(cols, row, "car")
		if err != nil {
			return nil, err
		}
		bus, err := floatField(cols, row, "bus")
		if err != nil {
			return nil, err
		}
		train, err := floatField(cols, row, "train")
		if err != nil {
			return nil, err
		}
		flight, err := floatField(cols, row, "flight")
		if err != nil {
			return nil, err
		}

		t.byPair[pairKey(origin, dest)] = domain.TravelCostEntry{
			Origin: origin, Destination: dest,
			Car: car, Bus: bus, Train: train, Flight: flight,
		}
	}
	return t, nil
}

func (t *TravelCosts) Fare(origin, destination string) (domain.TravelCostEntry, bool) {
	if e, ok := t.byPair[pairKey(origin, destination)]; ok {
		return e, true
	}
	e, ok := t.byPair[pairKey(destination, origin)]
	return e, ok
}

func pairKey(a, b string) [2]string {
	return [2]string{
		strings.ToLower(strings.TrimSpace(a)),
		strings.ToLower(strings.TrimSpace(b)),
	}
}
