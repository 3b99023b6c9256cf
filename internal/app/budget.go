package app

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"safarnama/internal/domain"
)

// Default rates in Rs.
const (
	defaultFuelPrice     = 280.0 // per litre
	defaultBusPerKm      = 2.5
	defaultFlightPerKm   = 15.0
	defaultRoomPerNight  = 5000.0
	foodPerPersonDay     = 2000.0
	activityPerPersonDay = 1500.0
)

// BudgetService sums transportation, accommodation, food and activity
// costs for a trip. Estimate surfaces typed errors and lets the caller
// pick a policy; EstimateOrZero keeps the legacy best-effort behavior.
type BudgetService struct {
	routes *RouteService
	hotels domain.HotelCatalog
	fares  domain.TravelCostTable
}

func NewBudgetService(routes *RouteService, hotels domain.HotelCatalog, fares domain.TravelCostTable) *BudgetService {
	return &BudgetService{routes: routes, hotels: hotels, fares: fares}
}

func (s *BudgetService) Estimate(ctx context.Context, req domain.BudgetRequest) (domain.BudgetBreakdown, error) {
	if err := validate(req); err != nil {
		return domain.BudgetBreakdown{}, err
	}

	distance, err := s.routes.EstimateDistance(ctx, req.Origin, req.Destination)
	if err != nil {
		return domain.BudgetBreakdown{}, err
	}

	transportation, err := s.transportCost(req, distance)
	if err != nil {
		return domain.BudgetBreakdown{}, err
	}

	rooms := roomsNeeded(req.Travelers)
	nights := float64(req.Nights)

	var accommodation float64
	if req.HotelID != nil && *req.HotelID != "" {
		// Unknown hotel ids price at zero rather than failing the
		// whole estimate.
		price := 0.0
		if h, ok := s.hotels.ByID(*req.HotelID); ok {
			price = h.PricePerNight
		} else {
			log.Warn().Str("hotel_id", *req.HotelID).Msg("unknown hotel id in budget request")
		}
		accommodation = price * nights * float64(rooms)
	} else {
		accommodation = defaultRoomPerNight * nights * float64(rooms)
	}

	foodPerDay := foodPerPersonDay * float64(req.Travelers)
	activitiesPerDay := activityPerPersonDay * float64(req.Travelers)

	return domain.BudgetBreakdown{
		Transportation:   transportation,
		Accommodation:    accommodation,
		FoodPerDay:       foodPerDay,
		ActivitiesPerDay: activitiesPerDay,
		Nights:           req.Nights,
		Total:            transportation + accommodation + nights*foodPerDay + nights*activitiesPerDay,
	}, nil
}

// EstimateOrZero degrades any failure to the zeroed breakdown with
// Nights preserved, favoring availability over correctness signaling.
// Callers needing strict failures use Estimate.
func (s *BudgetService) EstimateOrZero(ctx context.Context, req domain.BudgetRequest) domain.BudgetBreakdown {
	b, err := s.Estimate(ctx, req)
	if err != nil {
		log.Error().Err(err).
			Str("origin", req.Origin).Str("destination", req.Destination).
			Msg("budget estimate failed, returning zeroed breakdown")
		return domain.BudgetBreakdown{Nights: req.Nights}
	}
	return b
}

func (s *BudgetService) transportCost(req domain.BudgetRequest, distanceKm float64) (float64, error) {
	switch req.Mode {
	case domain.ModeVehicle:
		fuelPrice := req.FuelPrice
		if fuelPrice <= 0 {
			fuelPrice = defaultFuelPrice
		}
		litres := distanceKm / *req.FuelEfficiency
		return litres * fuelPrice, nil

	case domain.ModeBus:
		if e, ok := s.fares.Fare(req.Origin, req.Destination); ok {
			return e.Bus, nil
		}
		return distanceKm * defaultBusPerKm, nil

	case domain.ModeFlight:
		// Per-km estimate only. The seeded fare table applies its own
		// 5000 floor; this estimator deliberately does not.
		return distanceKm * defaultFlightPerKm, nil

	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Mode)
	}
}

func validate(req domain.BudgetRequest) error {
	switch req.Mode {
	case domain.ModeVehicle, domain.ModeBus, domain.ModeFlight:
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Mode)
	}
	if req.Mode == domain.ModeVehicle && (req.FuelEfficiency == nil || *req.FuelEfficiency <= 0) {
		return fmt.Errorf("%w: fuel efficiency is required for vehicle mode", domain.ErrMissingParameter)
	}
	if req.Nights < 1 {
		return fmt.Errorf("%w: nights must be at least 1", domain.ErrMissingParameter)
	}
	if req.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", domain.ErrMissingParameter)
	}
	return nil
}

// roomsNeeded assumes double occupancy.
func roomsNeeded(travelers int) int {
	return int(math.Ceil(float64(travelers) / 2))
}
