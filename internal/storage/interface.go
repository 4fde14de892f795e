package storage

import (
	"errors"

	"github.com/julianstephens/liftshift/internal/models"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// Provider persists everything the planner reads. Range queries take inclusive
// YYYY-MM-DD bounds and return records ordered by date and start time.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Work shifts
	AddShift(models.WorkShift) error
	GetShift(id string) (models.WorkShift, error)
	DeleteShift(id string) error
	GetShiftsInRange(startDate, endDate string) ([]models.WorkShift, error)

	// Schedule events
	AddEvent(models.ScheduleEvent) error
	GetEvent(id string) (models.ScheduleEvent, error)
	DeleteEvent(id string) error
	GetEventsInRange(startDate, endDate string) ([]models.ScheduleEvent, error)

	// Friend timetable
	AddFriendEntry(models.FriendScheduleEntry) error
	DeleteFriendEntry(id string) error
	GetFriendSchedule() ([]models.FriendScheduleEntry, error)

	// Friend night shifts
	AddNightShift(models.FriendNightShift) error
	DeleteNightShift(id string) error
	GetNightShiftsInRange(startDate, endDate string) ([]models.FriendNightShift, error)

	// Workout plans. Deleting a plan removes its exercises and their logs.
	AddPlan(models.WorkoutPlan) error
	GetPlan(id string) (models.WorkoutPlan, error)
	DeletePlan(id string) error
	GetPlans() ([]models.WorkoutPlan, error)

	// Exercises, ordered by plan and position. An empty planID lists every exercise.
	AddExercise(models.Exercise) error
	GetExercise(id string) (models.Exercise, error)
	DeleteExercise(id string) error
	GetExercises(planID string) ([]models.Exercise, error)

	// Set logs
	AddLog(models.WorkoutLog) error
	DeleteLog(id string) error
	GetLogsInRange(startDate, endDate string) ([]models.WorkoutLog, error)
	// GetExerciseLogs returns the newest logs of one exercise first, capped at limit.
	GetExerciseLogs(exerciseID string, limit int) ([]models.WorkoutLog, error)

	// SchemaStatus returns the applied and the latest embedded schema versions.
	SchemaStatus() (current, latest int, err error)

	// Utils
	GetConfigPath() string
}
