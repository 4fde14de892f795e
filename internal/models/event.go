package models

type EventType string

const (
	EventWorkout EventType = "workout"
	EventPartner EventType = "partner"
	EventCooking EventType = "cooking"
	EventOther   EventType = "other"
)

type ScheduleEvent struct {
	ID          string    `json:"id" validate:"required"`
	Type        EventType `json:"type" validate:"oneof=workout partner cooking other"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string    `json:"end_time" validate:"required,datetime=15:04"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
}

// DisplayName returns the title, falling back to the event type.
func (e ScheduleEvent) DisplayName() string {
	if e.Title != "" {
		return e.Title
	}
	return string(e.Type)
}
