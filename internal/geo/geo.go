// Package geo computes great-circle distances without touching the
// network. It backs the route estimator's fallback path when the
// routing service is unreachable.
package geo

import "math"

// WGS-84 ellipsoid.
const (
	semiMajorM = 6378137.0
	flattening = 1 / 298.257223563
	semiMinorM = semiMajorM * (1 - flattening)

	meanRadiusKm = 6371.0088
)

// DistanceKm returns the geodesic distance in kilometers between two
// latitude/longitude points on the WGS-84 ellipsoid. Uses the Vincenty
// inverse formula and falls back to the spherical haversine distance
// for the rare near-antipodal pairs where the iteration does not
// converge. Never fails for valid coordinates.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if d, ok := vincentyKm(lat1, lon1, lat2, lon2); ok {
		return d
	}
	return HaversineKm(lat1, lon1, lat2, lon2)
}

// HaversineKm returns the spherical great-circle distance in
// kilometers using the mean Earth radius.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return meanRadiusKm * c
}

// ValidLatLon reports whether the pair is a usable coordinate.
func ValidLatLon(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func vincentyKm(lat1, lon1, lat2, lon2 float64) (float64, bool) {
	if lat1 == lat2 && lon1 == lon2 {
		return 0, true
	}

	u1 := math.Atan((1 - flattening) * math.Tan(radians(lat1)))
	u2 := math.Atan((1 - flattening) * math.Tan(radians(lat2)))
	l := radians(lon2 - lon1)

	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := l
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64

	for i := 0; i < 200; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma = math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			return 0, true // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			cos2SigmaM = 0 // both points on the equator
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = l + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < 1e-12 {
			uSq := cosSqAlpha * (semiMajorM*semiMajorM - semiMinorM*semiMinorM) /
				(semiMinorM * semiMinorM)
			bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
				(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
					bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
			return semiMinorM * bigA * (sigma - deltaSigma) / 1000, true
		}
	}

	return 0, false
}
