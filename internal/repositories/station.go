package repositories

import (
	"database/sql"
	"fmt"

	"train-booking-platform/internal/models"
)

// StationRepository handles station data operations
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// Create creates a new station
func (r *StationRepository) Create(req *models.StationCreateRequest) (*models.Station, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO stations (name, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id, name, latitude, longitude`

	station := &models.Station{}
	err := r.db.QueryRow(query, req.Name, req.Latitude, req.Longitude).Scan(
		&station.ID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create station: %w", translateStorageErr(err))
	}

	return station, nil
}

// GetByID retrieves a station by ID
func (r *StationRepository) GetByID(id int) (*models.Station, error) {
	query := `SELECT id, name, latitude, longitude FROM stations WHERE id = $1`

	station := &models.Station{}
	err := r.db.QueryRow(query, id).Scan(
		&station.ID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrStationNotFound
		}
		return nil, fmt.Errorf("failed to get station: %w", translateStorageErr(err))
	}

	return station, nil
}

// List retrieves all stations
func (r *StationRepository) List() ([]*models.Station, error) {
	rows, err := r.db.Query(`SELECT id, name, latitude, longitude FROM stations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var stations []*models.Station
	for rows.Next() {
		station := &models.Station{}
		if err := rows.Scan(&station.ID, &station.Name, &station.Latitude, &station.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, station)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	return stations, nil
}
