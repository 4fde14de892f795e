package postgres

import (
	"fmt"

	"github.com/julianstephens/liftshift/internal/models"
)

func (s *Store) AddFriendEntry(e models.FriendScheduleEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO friend_schedule (id, day_of_week, start_time, end_time, is_available, label)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			day_of_week = EXCLUDED.day_of_week,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			label = EXCLUDED.label`,
		e.ID, e.DayOfWeek, e.StartTime, e.EndTime, e.IsAvailable, e.Label,
	)
	if err != nil {
		return fmt.Errorf("failed to save friend entry %s: %w", e.ID, err)
	}
	return nil
}

func (s *Store) DeleteFriendEntry(id string) error {
	return deleteByID(s.db, "friend_schedule", "friend entry", id)
}

func (s *Store) GetFriendSchedule() ([]models.FriendScheduleEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, day_of_week, start_time, end_time, is_available, label
		FROM friend_schedule
		ORDER BY day_of_week, start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.FriendScheduleEntry
	for rows.Next() {
		var e models.FriendScheduleEntry
		if err := rows.Scan(&e.ID, &e.DayOfWeek, &e.StartTime, &e.EndTime, &e.IsAvailable, &e.Label); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) AddNightShift(n models.FriendNightShift) error {
	_, err := s.db.Exec(`
		INSERT INTO friend_night_shifts (id, date, start_time, end_time, sleep_until)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			sleep_until = EXCLUDED.sleep_until`,
		n.ID, n.Date, n.StartTime, n.EndTime, n.SleepUntil,
	)
	if err != nil {
		return fmt.Errorf("failed to save night shift %s: %w", n.ID, err)
	}
	return nil
}

func (s *Store) DeleteNightShift(id string) error {
	return deleteByID(s.db, "friend_night_shifts", "night shift", id)
}

func (s *Store) GetNightShiftsInRange(startDate, endDate string) ([]models.FriendNightShift, error) {
	rows, err := s.db.Query(`
		SELECT id, date, start_time, end_time, sleep_until
		FROM friend_night_shifts
		WHERE date >= $1 AND date <= $2
		ORDER BY date, start_time`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nights []models.FriendNightShift
	for rows.Next() {
		var n models.FriendNightShift
		if err := rows.Scan(&n.ID, &n.Date, &n.StartTime, &n.EndTime, &n.SleepUntil); err != nil {
			return nil, err
		}
		nights = append(nights, n)
	}
	return nights, rows.Err()
}
