package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
)

const (
	planColumns     = "id, name, week_type, order_in_cycle"
	exerciseColumns = "id, plan_id, name, sets, reps, rir, rest_seconds, order_index"
	logColumns      = "id, exercise_id, workout_date, set_number, reps_completed, weight_kg, rir_actual, notes"
)

func scanPlan(row scanner) (models.WorkoutPlan, error) {
	var p models.WorkoutPlan
	var weekType string
	if err := row.Scan(&p.ID, &p.Name, &weekType, &p.OrderInCycle); err != nil {
		return models.WorkoutPlan{}, err
	}
	p.WeekType = models.WeekType(weekType)
	return p, nil
}

func scanExercise(row scanner) (models.Exercise, error) {
	var e models.Exercise
	err := row.Scan(&e.ID, &e.PlanID, &e.Name, &e.Sets, &e.Reps, &e.RIR, &e.RestSeconds, &e.OrderIndex)
	return e, err
}

func scanLog(row scanner) (models.WorkoutLog, error) {
	var l models.WorkoutLog
	var rir sql.NullInt64
	if err := row.Scan(&l.ID, &l.ExerciseID, &l.Date, &l.SetNumber, &l.RepsCompleted, &l.WeightKg, &rir, &l.Notes); err != nil {
		return models.WorkoutLog{}, err
	}
	if rir.Valid {
		v := int(rir.Int64)
		l.RIRActual = &v
	}
	return l, nil
}

func (s *Store) AddPlan(p models.WorkoutPlan) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO workout_plans (`+planColumns+`)
		VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, string(p.WeekType), p.OrderInCycle,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) GetPlan(id string) (models.WorkoutPlan, error) {
	p, err := scanPlan(s.db.QueryRow("SELECT "+planColumns+" FROM workout_plans WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkoutPlan{}, fmt.Errorf("plan %s: %w", id, storage.ErrNotFound)
	}
	return p, err
}

// DeletePlan removes the plan with its exercises and their logs in one transaction.
func (s *Store) DeletePlan(id string) error {
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM workout_logs WHERE exercise_id IN (SELECT id FROM exercises WHERE plan_id = ?)`, id); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM exercises WHERE plan_id = ?", id); err != nil {
			return err
		}
		return deleteByID(tx, "workout_plans", "plan", id)
	})
}

func (s *Store) GetPlans() ([]models.WorkoutPlan, error) {
	rows, err := s.db.Query("SELECT " + planColumns + " FROM workout_plans ORDER BY week_type, order_in_cycle, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.WorkoutPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *Store) AddExercise(e models.Exercise) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO exercises (`+exerciseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.PlanID, e.Name, e.Sets, e.Reps, e.RIR, e.RestSeconds, e.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("failed to save exercise %s: %w", e.ID, err)
	}
	return nil
}

func (s *Store) GetExercise(id string) (models.Exercise, error) {
	e, err := scanExercise(s.db.QueryRow("SELECT "+exerciseColumns+" FROM exercises WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Exercise{}, fmt.Errorf("exercise %s: %w", id, storage.ErrNotFound)
	}
	return e, err
}

func (s *Store) DeleteExercise(id string) error {
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM workout_logs WHERE exercise_id = ?", id); err != nil {
			return err
		}
		return deleteByID(tx, "exercises", "exercise", id)
	})
}

func (s *Store) GetExercises(planID string) ([]models.Exercise, error) {
	query := "SELECT " + exerciseColumns + " FROM exercises"
	var args []any
	if planID != "" {
		query += " WHERE plan_id = ?"
		args = append(args, planID)
	}
	rows, err := s.db.Query(query+" ORDER BY plan_id, order_index, name", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (s *Store) AddLog(l models.WorkoutLog) error {
	var rir any
	if l.RIRActual != nil {
		rir = *l.RIRActual
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO workout_logs (`+logColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.ExerciseID, l.Date, l.SetNumber, l.RepsCompleted, l.WeightKg, rir, l.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save log %s: %w", l.ID, err)
	}
	return nil
}

func (s *Store) DeleteLog(id string) error {
	return deleteByID(s.db, "workout_logs", "log", id)
}

func (s *Store) GetLogsInRange(startDate, endDate string) ([]models.WorkoutLog, error) {
	return s.queryLogs(`
		SELECT `+logColumns+` FROM workout_logs
		WHERE workout_date >= ? AND workout_date <= ?
		ORDER BY workout_date, exercise_id, set_number`, startDate, endDate)
}

func (s *Store) GetExerciseLogs(exerciseID string, limit int) ([]models.WorkoutLog, error) {
	return s.queryLogs(`
		SELECT `+logColumns+` FROM workout_logs
		WHERE exercise_id = ?
		ORDER BY workout_date DESC, set_number
		LIMIT ?`, exerciseID, limit)
}

func (s *Store) queryLogs(query string, args ...any) ([]models.WorkoutLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.WorkoutLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
