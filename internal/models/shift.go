package models

import (
	"math"
	"time"
)

type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftWeekend   ShiftType = "weekend"
)

// ShiftTypes lists every shift category in display order.
var ShiftTypes = []ShiftType{ShiftMorning, ShiftAfternoon, ShiftWeekend}

// morningCutoffHour is the start hour from which a weekday shift counts as afternoon.
const morningCutoffHour = 14

type WorkShift struct {
	ID            string    `json:"id" validate:"required"`
	Date          string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string    `json:"end_time" validate:"required,datetime=15:04"`
	DurationHours float64   `json:"duration_hours" validate:"gte=0,lte=24"`
	ShiftType     ShiftType `json:"shift_type" validate:"oneof=morning afternoon weekend"`
}

// ShiftPreset is a named start/end pair offered when logging a shift.
type ShiftPreset struct {
	Name      string
	StartTime string
	EndTime   string
	ShiftType ShiftType
}

var ShiftPresets = []ShiftPreset{
	{Name: "morning", StartTime: "06:00", EndTime: "14:00", ShiftType: ShiftMorning},
	{Name: "afternoon", StartTime: "14:00", EndTime: "22:00", ShiftType: ShiftAfternoon},
	{Name: "short-morning", StartTime: "08:00", EndTime: "12:00", ShiftType: ShiftMorning},
	{Name: "short-afternoon", StartTime: "14:00", EndTime: "18:00", ShiftType: ShiftAfternoon},
	{Name: "weekend", StartTime: "08:00", EndTime: "16:00", ShiftType: ShiftWeekend},
}

// FindShiftPreset returns the preset with the given name.
func FindShiftPreset(name string) (ShiftPreset, bool) {
	for _, p := range ShiftPresets {
		if p.Name == name {
			return p, true
		}
	}
	return ShiftPreset{}, false
}

// DeriveShiftType picks the category a new shift is filed under: weekend on
// Saturday and Sunday, otherwise morning when it starts before 14:00.
func DeriveShiftType(date time.Time, startTime string) ShiftType {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return ShiftWeekend
	}
	start, err := time.Parse("15:04", startTime)
	if err != nil || start.Hour() < morningCutoffHour {
		return ShiftMorning
	}
	return ShiftAfternoon
}

// ShiftDuration returns end minus start in hours, rounded to two decimals.
// Returns 0 if either time is invalid.
func ShiftDuration(startTime, endTime string) float64 {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0
	}
	return math.Round(end.Sub(start).Hours()*100) / 100
}
