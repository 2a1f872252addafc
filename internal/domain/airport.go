package domain

type Airport struct {
	ID      int64  `json:"airport_id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
