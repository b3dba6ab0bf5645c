package dto

type RouteRequest struct {
	Locations []string `json:"locations"`
}

type RouteResponse struct {
	Stops               []string `json:"stops"`
	TotalDistanceMeters float64  `json:"total_distance_meters"`
	TotalDistanceKm     float64  `json:"total_distance_km"`
}
