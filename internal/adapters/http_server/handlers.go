package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"safarnama/internal/adapters/weather"
	"safarnama/internal/app"
	"safarnama/internal/domain"
)

type Handlers struct {
	Planning *app.PlanningService
	Routes   *app.RouteService
	Budget   *app.BudgetService
	Weather  *app.WeatherService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/cities", h.listCities)
	s.mux.Get("/v1/cities/{city}/weather", h.cityWeather)
	s.mux.Get("/v1/cities/{city}/hotels", h.cityHotels)
	s.mux.Get("/v1/cities/{city}/attractions", h.cityAttractions)
	s.mux.Get("/v1/cities/{city}/restaurants", h.cityRestaurants)
	s.mux.Get("/v1/cities/{city}/safety", h.citySafety)
	s.mux.Get("/v1/routes", h.route)
	s.mux.Get("/v1/fares", h.fare)
	s.mux.Get("/v1/budget", h.budget)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeCachable marshals once, hashes once and honors If-None-Match.
func writeCachable(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal response for ETag failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`

	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write response body failed")
	}
}

// ---- response shapes ----

type cityDTO struct {
	Name      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Province  string  `json:"province"`
}

type hotelDTO struct {
	ID            string   `json:"hotel_id"`
	City          string   `json:"city"`
	Name          string   `json:"name"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Category      string   `json:"category"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
}

type attractionDTO struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	EntryFee    float64 `json:"entry_fee"`
	Location    string  `json:"location"`
}

type restaurantDTO struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
	PriceRange  string   `json:"price_range"`
}

type safetyDTO struct {
	City      string            `json:"city"`
	General   []string          `json:"general"`
	Areas     []string          `json:"areas,omitempty"`
	Transport []string          `json:"transportation"`
	Emergency map[string]string `json:"emergency"`
}

type weatherDTO struct {
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	IconURL     string  `json:"icon_url"`
	LastUpdated string  `json:"last_updated"`
}

type weatherResponse struct {
	City    string      `json:"city"`
	Status  string      `json:"status"` // ok|unavailable
	Weather *weatherDTO `json:"weather,omitempty"`
	Advice  []string    `json:"advice,omitempty"`
}

type routeResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Mode        string  `json:"mode"`
	DistanceKm  float64 `json:"distance"`
	TimeHours   float64 `json:"time_hours"`
}

type fareResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Car         float64 `json:"car"`
	Bus         float64 `json:"bus"`
	Train       float64 `json:"train"`
	Flight      float64 `json:"flight"`
}

type budgetResponse struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Mode           string  `json:"mode"`
	Transportation float64 `json:"transportation"`
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`       // group total per day
	Activities     float64 `json:"activities"` // group total per day
	Nights         int     `json:"nights"`
	Total          float64 `json:"total"`
}

// ---- handlers ----

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	cities := h.Planning.Cities(r.Context())
	out := make([]cityDTO, 0, len(cities))
	for _, c := range cities {
		out = append(out, cityDTO{Name: c.Name, Country: c.Country, Latitude: c.Lat, Longitude: c.Lon, Province: c.Province})
	}
	writeCachable(w, r, out)
}

func (h *Handlers) cityWeather(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	rep, err := h.Weather.CityWeather(r.Context(), city)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "unknown city: "+city)
			return
		}
		// Weather trouble never fails the page.
		log.Warn().Err(err).Str("city", city).Msg("weather unavailable")
		writeJSON(w, http.StatusOK, weatherResponse{City: city, Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, weatherResponse{
		City:   city,
		Status: "ok",
		Weather: &weatherDTO{
			Temperature: rep.Temperature,
			FeelsLike:   rep.FeelsLike,
			Humidity:    rep.Humidity,
			WindSpeed:   rep.WindSpeed,
			Description: rep.Description,
			Icon:        rep.Icon,
			IconURL:     weather.IconURL(rep.Icon),
			LastUpdated: rep.LastUpdated,
		},
		Advice: app.WeatherAdvice(rep),
	})
}

func (h *Handlers) cityHotels(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	hotels := h.Planning.HotelsInCity(r.Context(), city)
	out := make([]hotelDTO, 0, len(hotels))
	for _, rec := range hotels {
		out = append(out, hotelDTO{
			ID: rec.ID, City: rec.City, Name: rec.Name,
			PricePerNight: rec.PricePerNight, Rating: rec.Rating, Category: rec.Category,
			Location: rec.Location, Description: rec.Description, Amenities: rec.Amenities,
		})
	}
	writeCachable(w, r, out)
}

func (h *Handlers) cityAttractions(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	items := h.Planning.TopAttractions(r.Context(), city, r.URL.Query().Get("category"), limit)
	out := make([]attractionDTO, 0, len(items))
	for _, a := range items {
		out = append(out, attractionDTO{
			Name: a.Name, Category: a.Category, Description: a.Description,
			Rating: a.Rating, EntryFee: a.EntryFee, Location: a.Location,
		})
	}
	writeCachable(w, r, out)
}

func (h *Handlers) cityRestaurants(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	items := h.Planning.TopRestaurants(r.Context(), city, r.URL.Query().Get("cuisine"), limit)
	out := make([]restaurantDTO, 0, len(items))
	for _, rr := range items {
		out = append(out, restaurantDTO{
			Name: rr.Name, Cuisine: rr.Cuisine, Specialties: rr.Specialties,
			Rating: rr.Rating, PriceRange: rr.PriceRange,
		})
	}
	writeCachable(w, r, out)
}

func (h *Handlers) citySafety(w http.ResponseWriter, r *http.Request) {
	info := app.SafetyTips(chi.URLParam(r, "city"))
	writeCachable(w, r, safetyDTO{
		City: info.City, General: info.General, Areas: info.Areas,
		Transport: info.Transport, Emergency: info.Emergency,
	})
}

func (h *Handlers) route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin, destination := q.Get("origin"), q.Get("destination")
	if origin == "" || destination == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "origin and destination are required")
		return
	}
	mode := domain.TravelMode(q.Get("mode"))
	if mode == "" {
		mode = domain.ModeVehicle
	}

	info, err := h.Routes.EstimateRoute(r.Context(), origin, destination, mode)
	if err != nil {
		writeRouteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, routeResponse{
		Origin: origin, Destination: destination, Mode: string(mode),
		DistanceKm: info.DistanceKm, TimeHours: info.TimeHours,
	})
}

func (h *Handlers) fare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin, destination := q.Get("origin"), q.Get("destination")
	if origin == "" || destination == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "origin and destination are required")
		return
	}
	e, ok := h.Planning.FareBetween(origin, destination)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "no fare data for this pair")
		return
	}
	writeCachable(w, r, fareResponse{
		Origin: e.Origin, Destination: e.Destination,
		Car: e.Car, Bus: e.Bus, Train: e.Train, Flight: e.Flight,
	})
}

func (h *Handlers) budget(w http.ResponseWriter, r *http.Request) {
	req, ok := parseBudgetRequest(w, r)
	if !ok {
		return
	}

	b, err := h.Budget.Estimate(r.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidMode), errors.Is(err, domain.ErrMissingParameter):
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	case errors.Is(err, domain.ErrCityNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	default:
		// Upstream trouble degrades to the zeroed breakdown rather
		// than failing the request.
		log.Warn().Err(err).Str("origin", req.Origin).Str("destination", req.Destination).
			Msg("budget degraded to zeroed breakdown")
		b = domain.BudgetBreakdown{Nights: req.Nights}
	}

	writeJSON(w, http.StatusOK, budgetResponse{
		Origin: req.Origin, Destination: req.Destination, Mode: string(req.Mode),
		Transportation: b.Transportation, Accommodation: b.Accommodation,
		Food: b.FoodPerDay, Activities: b.ActivitiesPerDay,
		Nights: b.Nights, Total: b.Total,
	})
}

// ---- request parsing ----

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	ls := r.URL.Query().Get("limit")
	if ls == "" {
		return 0, true // all
	}
	l, err := strconv.Atoi(ls)
	if err != nil || l <= 0 || l > 100 {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 100")
		return 0, false
	}
	return l, true
}

func parseBudgetRequest(w http.ResponseWriter, r *http.Request) (domain.BudgetRequest, bool) {
	q := r.URL.Query()
	req := domain.BudgetRequest{
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
		Mode:        domain.TravelMode(q.Get("mode")),
		Nights:      1,
		Travelers:   1,
	}
	if req.Origin == "" || req.Destination == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "origin and destination are required")
		return domain.BudgetRequest{}, false
	}

	if s := q.Get("nights"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "nights must be a positive integer")
			return domain.BudgetRequest{}, false
		}
		req.Nights = n
	}
	if s := q.Get("travelers"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "travelers must be a positive integer")
			return domain.BudgetRequest{}, false
		}
		req.Travelers = n
	}
	if s := q.Get("fuel_efficiency"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "fuel_efficiency must be a positive number")
			return domain.BudgetRequest{}, false
		}
		req.FuelEfficiency = &f
	}
	if s := q.Get("fuel_price"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid Request", "fuel_price must be a positive number")
			return domain.BudgetRequest{}, false
		}
		req.FuelPrice = f
	}
	if s := q.Get("hotel_id"); s != "" {
		req.HotelID = &s
	}
	return req, true
}

func writeRouteError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrCityNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	writeProblem(w, http.StatusBadGateway, "Upstream Failure", err.Error())
}
