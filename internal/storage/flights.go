package storage

import (
	"fmt"
	"time"
)

// FlightRecord summarizes one flight: how long it lasted and how the pool was used.
type FlightRecord struct {
	ID           int64
	GameID       string
	Ticks        int
	ShotsFired   int
	ShotsDropped int
	Distance     int
	Boundary     string
	TickRate     int // ticks per second the flight ran at
	CreatedAt    time.Time
}

// DefaultTickRate is assumed for flights saved without a rate.
const DefaultTickRate = 60

// Seconds converts the flight's tick count to whole seconds.
func (f FlightRecord) Seconds() int {
	rate := f.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return f.Ticks / rate
}

// SaveFlight records a finished flight. Returns the ID of the inserted record.
func (s *Store) SaveFlight(f FlightRecord) (int64, error) {
	if f.TickRate <= 0 {
		f.TickRate = DefaultTickRate
	}
	result, err := s.db.Exec(
		`INSERT INTO flights (game_id, ticks, shots_fired, shots_dropped, distance, boundary, tick_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.GameID, f.Ticks, f.ShotsFired, f.ShotsDropped, f.Distance, f.Boundary, f.TickRate,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flight: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentFlights retrieves the latest flights for the given game, newest first.
// An empty gameID selects every game.
func (s *Store) RecentFlights(gameID string, limit int) ([]FlightRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, ticks, shots_fired, shots_dropped, distance, boundary, tick_rate, created_at
		 FROM flights
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	var flights []FlightRecord
	for rows.Next() {
		var f FlightRecord
		var createdAt any
		if err := rows.Scan(&f.ID, &f.GameID, &f.Ticks, &f.ShotsFired, &f.ShotsDropped,
			&f.Distance, &f.Boundary, &f.TickRate, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		f.CreatedAt = parseTime(createdAt)
		flights = append(flights, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return flights, nil
}
