package repositories

import (
	"database/sql"
	"fmt"

	"train-booking-platform/internal/models"
)

// TrainRepository handles train and train type data operations
type TrainRepository struct {
	db *sql.DB
}

// NewTrainRepository creates a new train repository
func NewTrainRepository(db *sql.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

// CreateTrainType creates a new train type
func (r *TrainRepository) CreateTrainType(req *models.TrainTypeCreateRequest) (*models.TrainType, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `INSERT INTO train_types (name) VALUES ($1) RETURNING id, name`

	trainType := &models.TrainType{}
	err := r.db.QueryRow(query, req.Name).Scan(&trainType.ID, &trainType.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create train type: %w", translateStorageErr(err))
	}

	return trainType, nil
}

// ListTrainTypes retrieves all train types
func (r *TrainRepository) ListTrainTypes() ([]*models.TrainType, error) {
	rows, err := r.db.Query(`SELECT id, name FROM train_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list train types: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var types []*models.TrainType
	for rows.Next() {
		trainType := &models.TrainType{}
		if err := rows.Scan(&trainType.ID, &trainType.Name); err != nil {
			return nil, fmt.Errorf("failed to scan train type: %w", err)
		}
		types = append(types, trainType)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating train types: %w", err)
	}

	return types, nil
}

// Create creates a new train
func (r *TrainRepository) Create(req *models.TrainCreateRequest) (*models.Train, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO trains (name, cargo_num, places_in_cargo, train_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, cargo_num, places_in_cargo, train_type_id, image`

	train := &models.Train{}
	err := r.db.QueryRow(query, req.Name, req.CargoNum, req.PlacesInCargo, req.TrainTypeID).Scan(
		&train.ID,
		&train.Name,
		&train.CargoNum,
		&train.PlacesInCargo,
		&train.TrainTypeID,
		&train.Image,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create train: %w", translateStorageErr(err))
	}

	return train, nil
}

// GetByID retrieves a train by ID
func (r *TrainRepository) GetByID(id int) (*models.Train, error) {
	query := `
		SELECT id, name, cargo_num, places_in_cargo, train_type_id, image
		FROM trains
		WHERE id = $1`

	train := &models.Train{}
	err := r.db.QueryRow(query, id).Scan(
		&train.ID,
		&train.Name,
		&train.CargoNum,
		&train.PlacesInCargo,
		&train.TrainTypeID,
		&train.Image,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTrainNotFound
		}
		return nil, fmt.Errorf("failed to get train: %w", translateStorageErr(err))
	}

	return train, nil
}

// GetResponse retrieves the API view of a train with its type name resolved
func (r *TrainRepository) GetResponse(id int) (*models.TrainResponse, error) {
	query := `
		SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, tt.name, t.image
		FROM trains t
		JOIN train_types tt ON t.train_type_id = tt.id
		WHERE t.id = $1`

	train := &models.TrainResponse{}
	err := r.db.QueryRow(query, id).Scan(
		&train.ID,
		&train.Name,
		&train.CargoNum,
		&train.PlacesInCargo,
		&train.TrainType,
		&train.Image,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTrainNotFound
		}
		return nil, fmt.Errorf("failed to get train: %w", translateStorageErr(err))
	}

	train.Capacity = train.CargoNum * train.PlacesInCargo
	return train, nil
}

// List retrieves all trains with their type names resolved
func (r *TrainRepository) List() ([]*models.TrainResponse, error) {
	query := `
		SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, tt.name, t.image
		FROM trains t
		JOIN train_types tt ON t.train_type_id = tt.id
		ORDER BY t.id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trains: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var trains []*models.TrainResponse
	for rows.Next() {
		train := &models.TrainResponse{}
		err := rows.Scan(
			&train.ID,
			&train.Name,
			&train.CargoNum,
			&train.PlacesInCargo,
			&train.TrainType,
			&train.Image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		train.Capacity = train.CargoNum * train.PlacesInCargo
		trains = append(trains, train)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trains: %w", err)
	}

	return trains, nil
}
