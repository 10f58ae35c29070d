package handler

import "github.com/99minutos/geopoint/internal/core/ports"

func toDistanceResponse(r *ports.DistanceResult) distanceResponse {
	return distanceResponse{
		From:       r.From,
		To:         r.To,
		Radians:    r.Radians,
		Kilometers: r.Kilometers,
		Miles:      r.Miles,
		Unit:       string(r.Unit),
		Value:      r.Value,
	}
}
