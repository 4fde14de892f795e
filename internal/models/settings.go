package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/liftshift/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	CycleStartDate     string  `json:"cycle_start_date"`     // YYYY-MM-DD, empty until the cycle is configured
	Timezone           string  `json:"timezone"`             // IANA timezone name or "Local"
	MonthlyTargetHours float64 `json:"monthly_target_hours"` // total work hours to reach each month
	CategoryMinHours   float64 `json:"category_min_hours"`   // minimum monthly hours per shift category
	WeeklyTargetHours  float64 `json:"weekly_target_hours"`  // work hours to reach each week
}

// Quota holds the hour targets the shift suggestions try to reach.
type Quota struct {
	MonthlyTarget float64
	CategoryMin   float64
	WeeklyTarget  float64
}

// DefaultSettings returns the settings written on init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:           constants.DefaultTimezone,
		MonthlyTargetHours: constants.DefaultMonthlyTargetHours,
		CategoryMinHours:   constants.DefaultCategoryMinHours,
		WeeklyTargetHours:  constants.DefaultWeeklyTargetHours,
	}
}

// DefaultQuota returns the stock hour targets.
func DefaultQuota() Quota {
	return DefaultSettings().Quota()
}

func (s Settings) Quota() Quota {
	return Quota{
		MonthlyTarget: s.MonthlyTargetHours,
		CategoryMin:   s.CategoryMinHours,
		WeeklyTarget:  s.WeeklyTargetHours,
	}
}

// CycleStart parses CycleStartDate. It returns nil when no cycle is configured.
func (s Settings) CycleStart() (*time.Time, error) {
	if s.CycleStartDate == "" {
		return nil, nil
	}
	t, err := time.Parse(constants.DateFormat, s.CycleStartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid cycle start date %q: %w", s.CycleStartDate, err)
	}
	return &t, nil
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Missing keys keep their default values.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingCycleStartDate:
			settings.CycleStartDate = value
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingMonthlyTargetHours:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing monthly_target_hours: %w", err)
			}
			settings.MonthlyTargetHours = f
		case constants.SettingCategoryMinHours:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing category_min_hours: %w", err)
			}
			settings.CategoryMinHours = f
		case constants.SettingWeeklyTargetHours:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing weekly_target_hours: %w", err)
			}
			settings.WeeklyTargetHours = f
		}
	}

	return settings, nil
}

// SettingsToMap converts Settings to the key-value form stored in the settings table.
func SettingsToMap(s Settings) map[string]string {
	return map[string]string{
		constants.SettingCycleStartDate:     s.CycleStartDate,
		constants.SettingTimezone:           s.Timezone,
		constants.SettingMonthlyTargetHours: strconv.FormatFloat(s.MonthlyTargetHours, 'f', -1, 64),
		constants.SettingCategoryMinHours:   strconv.FormatFloat(s.CategoryMinHours, 'f', -1, 64),
		constants.SettingWeeklyTargetHours:  strconv.FormatFloat(s.WeeklyTargetHours, 'f', -1, 64),
	}
}
