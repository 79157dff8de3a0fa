package models

// RecurringBooking is one weekly-recurring pattern row. All fields are
// localized display strings except Count.
type RecurringBooking struct {
	Room      string
	Service   string
	Provider  string
	Day       string // localized day name
	Time      string // localized 12-hour range
	DateRange string // first to last occurrence
	Count     int    // number of occurrences
}

// OneTimeBooking is one non-recurring booking row.
type OneTimeBooking struct {
	Room     string
	Service  string
	Provider string
	Date     string
	Time     string
}

// CrossLocationBooking is one pattern that repeats across two or more rooms.
type CrossLocationBooking struct {
	Rooms     string // sorted distinct room names, pipe-joined
	Service   string
	Provider  string
	Day       string
	DateRange string
	Time      string
	Count     int
}

// Report is the final classified output of one pipeline run.
type Report struct {
	Recurring     []RecurringBooking
	OneTime       []OneTimeBooking
	CrossLocation []CrossLocationBooking
}
