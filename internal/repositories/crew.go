package repositories

import (
	"database/sql"
	"fmt"

	"train-booking-platform/internal/models"
)

// CrewRepository handles crew data operations
type CrewRepository struct {
	db *sql.DB
}

// NewCrewRepository creates a new crew repository
func NewCrewRepository(db *sql.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

// Create creates a new crew member
func (r *CrewRepository) Create(req *models.CrewCreateRequest) (*models.Crew, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO crews (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, first_name, last_name`

	crew := &models.Crew{}
	err := r.db.QueryRow(query, req.FirstName, req.LastName).Scan(
		&crew.ID,
		&crew.FirstName,
		&crew.LastName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", translateStorageErr(err))
	}

	return crew, nil
}

// List retrieves all crew members
func (r *CrewRepository) List() ([]*models.Crew, error) {
	rows, err := r.db.Query(`SELECT id, first_name, last_name FROM crews ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var crews []*models.Crew
	for rows.Next() {
		crew := &models.Crew{}
		if err := rows.Scan(&crew.ID, &crew.FirstName, &crew.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		crews = append(crews, crew)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crew members: %w", err)
	}

	return crews, nil
}
