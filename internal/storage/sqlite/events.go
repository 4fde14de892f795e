package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/liftshift/internal/models"
	"github.com/julianstephens/liftshift/internal/storage"
)

const eventColumns = "id, type, date, start_time, end_time, title, description"

func scanEvent(row scanner) (models.ScheduleEvent, error) {
	var e models.ScheduleEvent
	var eventType string
	if err := row.Scan(&e.ID, &eventType, &e.Date, &e.StartTime, &e.EndTime, &e.Title, &e.Description); err != nil {
		return models.ScheduleEvent{}, err
	}
	e.Type = models.EventType(eventType)
	return e, nil
}

func (s *Store) AddEvent(e models.ScheduleEvent) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO schedule_events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Type), e.Date, e.StartTime, e.EndTime, e.Title, e.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to save event %s: %w", e.ID, err)
	}
	return nil
}

func (s *Store) GetEvent(id string) (models.ScheduleEvent, error) {
	row := s.db.QueryRow("SELECT "+eventColumns+" FROM schedule_events WHERE id = ?", id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScheduleEvent{}, fmt.Errorf("event %s: %w", id, storage.ErrNotFound)
	}
	return e, err
}

func (s *Store) DeleteEvent(id string) error {
	return deleteByID(s.db, "schedule_events", "event", id)
}

func (s *Store) GetEventsInRange(startDate, endDate string) ([]models.ScheduleEvent, error) {
	rows, err := s.db.Query(`
		SELECT `+eventColumns+` FROM schedule_events
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.ScheduleEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
