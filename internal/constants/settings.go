package constants

const (
	// General Settings
	SettingCycleStartDate = "cycle_start_date"
	SettingTimezone       = "timezone"

	// Quota Settings
	SettingMonthlyTargetHours = "monthly_target_hours"
	SettingCategoryMinHours   = "category_min_hours"
	SettingWeeklyTargetHours  = "weekly_target_hours"

	// Default Settings Values
	DefaultTimezone           = "Local" // Use system local timezone by default
	DefaultMonthlyTargetHours = 60.0
	DefaultCategoryMinHours   = 8.0
	DefaultWeeklyTargetHours  = 12.0
)
