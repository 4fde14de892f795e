package models

type Confidence string

const (
	ConfidenceIdeal   Confidence = "ideal"
	ConfidenceGood    Confidence = "good"
	ConfidenceLimited Confidence = "limited"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities from high (0) to low (2).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type WorkoutSuggestion struct {
	Date        string      `json:"date"`     // YYYY-MM-DD format
	DayName     string      `json:"day_name"` // e.g. "Wednesday"
	WorkoutType WorkoutType `json:"workout_type"`
	WeekType    WeekType    `json:"week_type"`
	StartTime   string      `json:"start_time"` // HH:MM format
	EndTime     string      `json:"end_time"`   // HH:MM format
	Score       int         `json:"score"`
	Confidence  Confidence  `json:"confidence"`
	Reason      string      `json:"reason"`
	Tags        []string    `json:"tags"`
}

type ShiftSuggestion struct {
	Date          string    `json:"date"`
	DayName       string    `json:"day_name"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	ShiftType     ShiftType `json:"shift_type"`
	Priority      Priority  `json:"priority"`
	Reason        string    `json:"reason"`
	Tags          []string  `json:"tags"`
}
