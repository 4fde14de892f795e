// Package progress turns logged sets into per-exercise weekly trends and a
// progression verdict. Like the scheduler it is pure: callers load the logs.
package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/utils"
)

// DefaultWeeks is how far back the progress report looks.
const DefaultWeeks = 6

type Category string

const (
	CategoryExcellent  Category = "excellent"
	CategorySteady     Category = "steady"
	CategoryPlateau    Category = "plateau"
	CategoryRegression Category = "regression"
)

// WeekStats aggregates the sets of one exercise in one Monday-based week.
type WeekStats struct {
	WeekStart  string  `json:"week_start"`
	Sets       int     `json:"sets"`
	AvgWeight  float64 `json:"avg_weight"`
	AvgReps    float64 `json:"avg_reps"`
	VolumeLoad float64 `json:"volume_load"`
	MaxWeight  float64 `json:"max_weight"`
}

type ExerciseProgress struct {
	Exercise       models.Exercise `json:"exercise"`
	PlanName       string          `json:"plan_name"`
	Weeks          []WeekStats     `json:"weeks"`
	Category       Category        `json:"category"`
	ImprovementPct int             `json:"improvement_pct"`
	Recommendation string          `json:"recommendation"`
	TotalSets      int             `json:"total_sets"`
	LatestWeight   float64         `json:"latest_weight"`
	LatestReps     int             `json:"latest_reps"`
}

type Summary struct {
	Total          int `json:"total"`
	Excellent      int `json:"excellent"`
	Steady         int `json:"steady"`
	Plateau        int `json:"plateau"`
	Regression     int `json:"regression"`
	AvgImprovement int `json:"avg_improvement"`
}

// Since returns the first date included in a report covering weeks weeks up to today.
func Since(today time.Time, weeks int) string {
	return utils.FormatDate(today.AddDate(0, 0, -7*weeks))
}

// Analyze builds one entry per exercise that has logged sets, best improvement first.
// Logs with an unparsable date are ignored.
func Analyze(plans []models.WorkoutPlan, exercises []models.Exercise, logs []models.WorkoutLog) []ExerciseProgress {
	planNames := make(map[string]string, len(plans))
	for _, p := range plans {
		planNames[p.ID] = p.Name
	}

	sorted := make([]models.WorkoutLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].SetNumber < sorted[j].SetNumber
	})

	byExercise := make(map[string][]models.WorkoutLog)
	for _, l := range sorted {
		byExercise[l.ExerciseID] = append(byExercise[l.ExerciseID], l)
	}

	var out []ExerciseProgress
	for _, ex := range exercises {
		exLogs := byExercise[ex.ID]
		weeks := weekly(exLogs)
		if len(weeks) == 0 {
			continue
		}

		pct := improvement(weeks)
		category := Classify(pct, len(weeks))
		latest := exLogs[len(exLogs)-1]
		total := 0
		for _, w := range weeks {
			total += w.Sets
		}

		out = append(out, ExerciseProgress{
			Exercise:       ex,
			PlanName:       planNames[ex.PlanID],
			Weeks:          weeks,
			Category:       category,
			ImprovementPct: pct,
			Recommendation: Recommendation(category, ex.Name),
			TotalSets:      total,
			LatestWeight:   latest.WeightKg,
			LatestReps:     latest.RepsCompleted,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ImprovementPct > out[j].ImprovementPct
	})
	return out
}

// weekly groups date-ordered logs by the Monday of their week.
func weekly(logs []models.WorkoutLog) []WeekStats {
	var weeks []WeekStats
	var sumWeight, sumReps float64
	flush := func() {
		w := &weeks[len(weeks)-1]
		n := float64(w.Sets)
		w.AvgWeight = round1(sumWeight / n)
		w.AvgReps = round1(sumReps / n)
		w.VolumeLoad = roundHalfUp(w.VolumeLoad)
	}

	for _, l := range logs {
		date, err := utils.ParseDate(l.Date)
		if err != nil {
			continue
		}
		monday := utils.FormatDate(utils.WeekStart(date))
		if len(weeks) == 0 || weeks[len(weeks)-1].WeekStart != monday {
			if len(weeks) > 0 {
				flush()
			}
			weeks = append(weeks, WeekStats{WeekStart: monday})
			sumWeight, sumReps = 0, 0
		}
		w := &weeks[len(weeks)-1]
		w.Sets++
		w.VolumeLoad += l.VolumeLoad()
		w.MaxWeight = math.Max(w.MaxWeight, l.WeightKg)
		sumWeight += l.WeightKg
		sumReps += float64(l.RepsCompleted)
	}
	if len(weeks) > 0 {
		flush()
	}
	return weeks
}

// improvement is the rounded percentage change of volume load from the first
// to the last week. A zero first week has no baseline and yields 0.
func improvement(weeks []WeekStats) int {
	if len(weeks) < 2 {
		return 0
	}
	first, last := weeks[0].VolumeLoad, weeks[len(weeks)-1].VolumeLoad
	if first <= 0 {
		return 0
	}
	return int(roundHalfUp((last - first) / first * 100))
}

// Classify maps an improvement percentage to a category. Fewer than two weeks
// of data is always a plateau.
func Classify(pct, weeks int) Category {
	switch {
	case weeks < 2:
		return CategoryPlateau
	case pct > 10:
		return CategoryExcellent
	case pct > 0:
		return CategorySteady
	case pct == 0:
		return CategoryPlateau
	default:
		return CategoryRegression
	}
}

func Recommendation(c Category, exercise string) string {
	switch c {
	case CategoryExcellent:
		return fmt.Sprintf("Excellent progress on %s: the load keeps climbing. Keep the pace.", exercise)
	case CategorySteady:
		return fmt.Sprintf("Steady progress on %s. Try to add a little every week.", exercise)
	case CategoryRegression:
		return fmt.Sprintf("%s is going backwards. Check recovery and sleep, or consider a deload week.", exercise)
	default:
		return fmt.Sprintf("%s has stalled. Change the set count or tempo, or train closer to failure.", exercise)
	}
}

func Summarize(results []ExerciseProgress) Summary {
	s := Summary{Total: len(results)}
	sum := 0
	for _, r := range results {
		sum += r.ImprovementPct
		switch r.Category {
		case CategoryExcellent:
			s.Excellent++
		case CategorySteady:
			s.Steady++
		case CategoryPlateau:
			s.Plateau++
		case CategoryRegression:
			s.Regression++
		}
	}
	if s.Total > 0 {
		s.AvgImprovement = int(roundHalfUp(float64(sum) / float64(s.Total)))
	}
	return s
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func round1(v float64) float64 {
	return roundHalfUp(v*10) / 10
}
