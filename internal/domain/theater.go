package domain

// Theater кинотеатр, владеет залами (удаление каскадное)
type Theater struct {
	ID       int64
	Name     string
	Location string
}

// Screen зал кинотеатра - единица, для которой ведутся расписание и доступность
type Screen struct {
	ID        int64
	TheaterID int64
	Name      string
}
