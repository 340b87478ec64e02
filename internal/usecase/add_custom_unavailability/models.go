package add_custom_unavailability

// Request модель запроса на добавление недоступности зала по датам
type Request struct {
	TheaterID        int64
	ScreenID         int64
	UnavailableSlots []DateRange // Окна внутри конкретных дат
	UnavailableDates []string    // Даты, недоступные целиком (YYYY-MM-DD)
}

// DateRange окно времени в конкретную дату
type DateRange struct {
	Date  string // YYYY-MM-DD
	Start string // HH:MM
	End   string // HH:MM
}

// Response итог применения запроса
type Response struct {
	ScreenID     int64
	SlotsCreated int
	DaysCreated  int
}
