package app

import (
	"context"
	"strings"
	"time"

	"safarnama/internal/domain"
)

// WeatherService resolves a city and fetches current conditions,
// cached per coordinate pair. Failures bubble up; the HTTP layer
// renders them as "unavailable", never a crash.
type WeatherService struct {
	resolver *LocationResolver
	provider domain.WeatherProvider
	cache    domain.Cache
	ttl      time.Duration
}

func NewWeatherService(r *LocationResolver, p domain.WeatherProvider, c domain.Cache, ttl time.Duration) *WeatherService {
	return &WeatherService{resolver: r, provider: p, cache: c, ttl: ttl}
}

func (s *WeatherService) CityWeather(ctx context.Context, city string) (domain.WeatherReport, error) {
	coords, err := s.resolver.Resolve(ctx, city)
	if err != nil {
		return domain.WeatherReport{}, err
	}

	key := weatherKey(coords)
	var rep domain.WeatherReport
	if ok, _ := s.cache.Get(ctx, key, &rep); ok {
		return rep, nil
	}

	rep, err = s.provider.Current(ctx, coords)
	if err != nil {
		return domain.WeatherReport{}, err
	}
	_ = s.cache.Set(ctx, key, rep, int(s.ttl.Seconds()))
	return rep, nil
}

// WeatherAdvice derives travel tips from a report. Band thresholds
// follow the planner UI's long-standing rules.
func WeatherAdvice(rep domain.WeatherReport) []string {
	var advice []string

	switch {
	case rep.Temperature > 35:
		advice = append(advice, "It's very hot! Stay hydrated and avoid outdoor activities during peak hours.")
	case rep.Temperature > 30:
		advice = append(advice, "It's warm. Wear light clothing and stay hydrated.")
	case rep.Temperature < 5:
		advice = append(advice, "It's very cold! Wear heavy winter clothing and limit outdoor activities.")
	case rep.Temperature < 10:
		advice = append(advice, "It's cold. Wear warm clothing and layer up.")
	}

	desc := strings.ToLower(rep.Description)
	switch {
	case strings.Contains(desc, "rain"):
		advice = append(advice, "Bring an umbrella and rain gear.")
	case strings.Contains(desc, "snow"):
		advice = append(advice, "Roads might be slippery. Drive carefully if traveling by vehicle.")
	case strings.Contains(desc, "thunderstorm"):
		advice = append(advice, "Consider postponing outdoor activities due to thunderstorms.")
	case strings.Contains(desc, "clear"):
		advice = append(advice, "Perfect weather for outdoor activities!")
	}

	switch {
	case rep.WindSpeed > 20:
		advice = append(advice, "Strong winds expected. Secure loose items and be cautious outdoors.")
	case rep.WindSpeed > 10:
		advice = append(advice, "Moderate winds. Consider this when planning outdoor activities.")
	}

	if len(advice) == 0 {
		advice = append(advice, "Weather conditions are suitable for travel.")
	}
	return advice
}
