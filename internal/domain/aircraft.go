package domain

type Aircraft struct {
	ID           int64  `json:"aircraft_id"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	SeatCapacity int    `json:"seat_capacity"`
}
