package progress

import (
	"sort"

	"github.com/julianstephens/liftshift/internal/models"
)

// Session is the sets of one exercise on one date.
type Session struct {
	Date      string              `json:"date"`
	Sets      []models.WorkoutLog `json:"sets"`
	MaxWeight float64             `json:"max_weight"`
}

// History groups logs by date, newest session first with sets in order, and
// returns the heaviest weight across all of them.
func History(logs []models.WorkoutLog) ([]Session, float64) {
	byDate := make(map[string][]models.WorkoutLog)
	for _, l := range logs {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	sessions := make([]Session, 0, len(byDate))
	var best float64
	for date, sets := range byDate {
		sort.Slice(sets, func(i, j int) bool { return sets[i].SetNumber < sets[j].SetNumber })
		s := Session{Date: date, Sets: sets}
		for _, l := range sets {
			if l.WeightKg > s.MaxWeight {
				s.MaxWeight = l.WeightKg
			}
		}
		if s.MaxWeight > best {
			best = s.MaxWeight
		}
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Date > sessions[j].Date })
	return sessions, best
}

// NextSetNumber is one past the highest set logged for the exercise on date.
func NextSetNumber(logs []models.WorkoutLog, exerciseID, date string) int {
	next := 1
	for _, l := range logs {
		if l.ExerciseID == exerciseID && l.Date == date && l.SetNumber >= next {
			next = l.SetNumber + 1
		}
	}
	return next
}
