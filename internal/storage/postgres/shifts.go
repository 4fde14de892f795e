package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
)

const shiftColumns = "id, date, start_time, end_time, duration_hours, shift_type"

type scanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func scanShift(row scanner) (models.WorkShift, error) {
	var sh models.WorkShift
	var shiftType string
	if err := row.Scan(&sh.ID, &sh.Date, &sh.StartTime, &sh.EndTime, &sh.DurationHours, &shiftType); err != nil {
		return models.WorkShift{}, err
	}
	sh.ShiftType = models.ShiftType(shiftType)
	return sh, nil
}

func (s *Store) AddShift(sh models.WorkShift) error {
	_, err := s.db.Exec(`
		INSERT INTO work_shifts (`+shiftColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			duration_hours = EXCLUDED.duration_hours,
			shift_type = EXCLUDED.shift_type`,
		sh.ID, sh.Date, sh.StartTime, sh.EndTime, sh.DurationHours, string(sh.ShiftType),
	)
	if err != nil {
		return fmt.Errorf("failed to save shift %s: %w", sh.ID, err)
	}
	return nil
}

func (s *Store) GetShift(id string) (models.WorkShift, error) {
	row := s.db.QueryRow("SELECT "+shiftColumns+" FROM work_shifts WHERE id = $1", id)
	sh, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkShift{}, fmt.Errorf("shift %s: %w", id, storage.ErrNotFound)
	}
	return sh, err
}

func (s *Store) DeleteShift(id string) error {
	return deleteByID(s.db, "work_shifts", "shift", id)
}

func (s *Store) GetShiftsInRange(startDate, endDate string) ([]models.WorkShift, error) {
	rows, err := s.db.Query(`
		SELECT `+shiftColumns+` FROM work_shifts
		WHERE date >= $1 AND date <= $2
		ORDER BY date, start_time`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []models.WorkShift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}

// deleteByID removes one row and reports storage.ErrNotFound when nothing matched.
// table is always a package constant, never user input.
func deleteByID(db execer, table, kind, id string) error {
	res, err := db.Exec("DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
