package domain

type Passenger struct {
	ID          int64  `json:"passenger_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}
