package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"train-booking-platform/internal/models"
)

// RouteRepository handles route data operations
type RouteRepository struct {
	db *sql.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Create creates a new route between two stations
func (r *RouteRepository) Create(req *models.RouteCreateRequest) (*models.Route, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO routes (source_id, destination_id, distance)
		VALUES ($1, $2, $3)
		RETURNING id, source_id, destination_id, distance`

	route := &models.Route{}
	err := r.db.QueryRow(query, req.SourceID, req.DestinationID, req.Distance).Scan(
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", translateStorageErr(err))
	}

	return route, nil
}

// List retrieves routes with station names resolved, optionally filtered by
// source station IDs
func (r *RouteRepository) List(sourceIDs []int) ([]*models.RouteListItem, error) {
	query := `
		SELECT r.id, s.name, d.name, r.distance
		FROM routes r
		JOIN stations s ON r.source_id = s.id
		JOIN stations d ON r.destination_id = d.id`

	var args []interface{}
	if len(sourceIDs) > 0 {
		placeholders := make([]string, len(sourceIDs))
		for i, id := range sourceIDs {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args = append(args, id)
		}
		query += fmt.Sprintf(" WHERE r.source_id IN (%s)", strings.Join(placeholders, ", "))
	}

	query += " ORDER BY r.id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var routes []*models.RouteListItem
	for rows.Next() {
		route := &models.RouteListItem{}
		if err := rows.Scan(&route.ID, &route.Source, &route.Destination, &route.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, route)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routes: %w", err)
	}

	return routes, nil
}

// GetDetail retrieves a route with its full station records
func (r *RouteRepository) GetDetail(id int) (*models.RouteDetail, error) {
	query := `
		SELECT r.id, r.distance,
			s.id, s.name, s.latitude, s.longitude,
			d.id, d.name, d.latitude, d.longitude
		FROM routes r
		JOIN stations s ON r.source_id = s.id
		JOIN stations d ON r.destination_id = d.id
		WHERE r.id = $1`

	detail := &models.RouteDetail{}
	err := r.db.QueryRow(query, id).Scan(
		&detail.ID,
		&detail.Distance,
		&detail.Source.ID,
		&detail.Source.Name,
		&detail.Source.Latitude,
		&detail.Source.Longitude,
		&detail.Destination.ID,
		&detail.Destination.Name,
		&detail.Destination.Latitude,
		&detail.Destination.Longitude,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", translateStorageErr(err))
	}

	return detail, nil
}
