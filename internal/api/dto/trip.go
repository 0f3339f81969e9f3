package dto

type StopResponse struct {
	StopID              string `json:"stop_id"`
	Destination         string `json:"destination"`
	DurationDays        int    `json:"duration_days"`
	ArrivalDate         string `json:"arrival_date"`
	DepartureDate       string `json:"departure_date"`
	IsDateLocked        bool   `json:"is_date_locked"`
	LockedArrivalDate   string `json:"locked_arrival_date,omitempty"`
	LockedDepartureDate string `json:"locked_departure_date,omitempty"`
}

type TripSummaryResponse struct {
	TripID          string `json:"trip_id"`
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	StartDateLocked bool   `json:"start_date_locked"`
	EndDateLocked   bool   `json:"end_date_locked"`
}

type TripResponse struct {
	TripSummaryResponse
	Stops []StopResponse `json:"stops"`
}

type ListTripsResponse struct {
	Trips []TripSummaryResponse `json:"trips"`
}
