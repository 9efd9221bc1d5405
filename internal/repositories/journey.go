package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"train-booking-platform/internal/models"
)

// JourneyRepository handles journey data operations
type JourneyRepository struct {
	db *sql.DB
}

// NewJourneyRepository creates a new journey repository
func NewJourneyRepository(db *sql.DB) *JourneyRepository {
	return &JourneyRepository{db: db}
}

// Create schedules a new journey and assigns its crew in one transaction
func (r *JourneyRepository) Create(req *models.JourneyCreateRequest) (*models.Journey, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", translateStorageErr(err))
	}
	defer tx.Rollback()

	query := `
		INSERT INTO journeys (route_id, train_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, route_id, train_id, departure_time, arrival_time`

	journey := &models.Journey{}
	err = tx.QueryRow(query, req.RouteID, req.TrainID, req.DepartureTime, req.ArrivalTime).Scan(
		&journey.ID,
		&journey.RouteID,
		&journey.TrainID,
		&journey.DepartureTime,
		&journey.ArrivalTime,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create journey: %w", translateStorageErr(err))
	}

	for _, crewID := range req.CrewIDs {
		if _, err := tx.Exec(`INSERT INTO journey_crews (journey_id, crew_id) VALUES ($1, $2)`, journey.ID, crewID); err != nil {
			return nil, fmt.Errorf("failed to assign crew member %d: %w", crewID, translateStorageErr(err))
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit journey creation: %w", translateStorageErr(err))
	}

	journey.CrewIDs = req.CrewIDs
	return journey, nil
}

// List retrieves journeys with occupancy metrics computed from the current
// ticket set at query time. Date filters match the calendar date only.
func (r *JourneyRepository) List(filters models.JourneyFilters) ([]*models.JourneyListItem, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if len(filters.TrainIDs) > 0 {
		placeholders := make([]string, len(filters.TrainIDs))
		for i, id := range filters.TrainIDs {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, id)
			argIndex++
		}
		conditions = append(conditions, fmt.Sprintf("j.train_id IN (%s)", strings.Join(placeholders, ", ")))
	}

	if filters.DepartureDate != "" {
		conditions = append(conditions, fmt.Sprintf("date(j.departure_time) = date($%d)", argIndex))
		args = append(args, filters.DepartureDate)
		argIndex++
	}

	if filters.ArrivalDate != "" {
		conditions = append(conditions, fmt.Sprintf("date(j.arrival_time) = date($%d)", argIndex))
		args = append(args, filters.ArrivalDate)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			j.id, j.departure_time, j.arrival_time,
			t.id, t.name, t.cargo_num, t.places_in_cargo, tt.name, t.image,
			r.distance,
			COUNT(tk.id) AS count_taken
		FROM journeys j
		JOIN trains t ON j.train_id = t.id
		JOIN train_types tt ON t.train_type_id = tt.id
		JOIN routes r ON j.route_id = r.id
		LEFT JOIN tickets tk ON tk.journey_id = j.id
		%s
		GROUP BY j.id
		ORDER BY j.departure_time DESC`, whereClause)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journeys: %w", translateStorageErr(err))
	}
	defer rows.Close()

	var journeys []*models.JourneyListItem
	for rows.Next() {
		item := &models.JourneyListItem{}
		var countTaken int
		err := rows.Scan(
			&item.ID,
			&item.DepartureTime,
			&item.ArrivalTime,
			&item.Train.ID,
			&item.Train.Name,
			&item.Train.CargoNum,
			&item.Train.PlacesInCargo,
			&item.Train.TrainType,
			&item.Train.Image,
			&item.RouteDistance,
			&countTaken,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}

		item.Train.Capacity = item.Train.CargoNum * item.Train.PlacesInCargo
		item.CountTakenSeats = countTaken
		item.CountTakenCargo = countTaken
		item.SeatsAvailable = item.Train.PlacesInCargo - countTaken
		item.CargoAvailable = item.Train.CargoNum - countTaken
		journeys = append(journeys, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journeys: %w", err)
	}

	for _, item := range journeys {
		names, err := r.crewNames(item.ID)
		if err != nil {
			return nil, err
		}
		item.Crews = names
	}

	return journeys, nil
}

// GetDetail retrieves a journey with its route, crew and ticket sets embedded
func (r *JourneyRepository) GetDetail(id int) (*models.JourneyDetail, error) {
	query := `
		SELECT
			j.id, j.departure_time, j.arrival_time,
			t.id, t.name, t.cargo_num, t.places_in_cargo, tt.name, t.image,
			r.id, r.distance,
			s.id, s.name, s.latitude, s.longitude,
			d.id, d.name, d.latitude, d.longitude
		FROM journeys j
		JOIN trains t ON j.train_id = t.id
		JOIN train_types tt ON t.train_type_id = tt.id
		JOIN routes r ON j.route_id = r.id
		JOIN stations s ON r.source_id = s.id
		JOIN stations d ON r.destination_id = d.id
		WHERE j.id = $1`

	detail := &models.JourneyDetail{}
	err := r.db.QueryRow(query, id).Scan(
		&detail.ID,
		&detail.DepartureTime,
		&detail.ArrivalTime,
		&detail.Train.ID,
		&detail.Train.Name,
		&detail.Train.CargoNum,
		&detail.Train.PlacesInCargo,
		&detail.Train.TrainType,
		&detail.Train.Image,
		&detail.Route.ID,
		&detail.Route.Distance,
		&detail.Route.Source.ID,
		&detail.Route.Source.Name,
		&detail.Route.Source.Latitude,
		&detail.Route.Source.Longitude,
		&detail.Route.Destination.ID,
		&detail.Route.Destination.Name,
		&detail.Route.Destination.Latitude,
		&detail.Route.Destination.Longitude,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrJourneyNotFound
		}
		return nil, fmt.Errorf("failed to get journey: %w", translateStorageErr(err))
	}

	detail.Train.Capacity = detail.Train.CargoNum * detail.Train.PlacesInCargo

	crews, err := r.crewMembers(id)
	if err != nil {
		return nil, err
	}
	detail.Crews = crews

	tickets, err := r.journeyTickets(id)
	if err != nil {
		return nil, err
	}
	detail.Tickets = tickets
	detail.TakenSeats = make([]int, 0, len(tickets))
	detail.TakenCargo = make([]int, 0, len(tickets))
	for _, ticket := range tickets {
		detail.TakenSeats = append(detail.TakenSeats, ticket.Seat)
		detail.TakenCargo = append(detail.TakenCargo, ticket.Cargo)
	}

	return detail, nil
}

// GetTrainForJourney resolves the train currently assigned to a journey.
// The allocator calls this at validation time so that a train swap shifts
// capacity constraints immediately for future bookings.
func (r *JourneyRepository) GetTrainForJourney(journeyID int) (*models.Train, error) {
	query := `
		SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, t.train_type_id, t.image
		FROM journeys j
		JOIN trains t ON j.train_id = t.id
		WHERE j.id = $1`

	train := &models.Train{}
	err := r.db.QueryRow(query, journeyID).Scan(
		&train.ID,
		&train.Name,
		&train.CargoNum,
		&train.PlacesInCargo,
		&train.TrainTypeID,
		&train.Image,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrJourneyNotFound
		}
		return nil, fmt.Errorf("failed to resolve journey train: %w", translateStorageErr(err))
	}

	return train, nil
}

func (r *JourneyRepository) crewNames(journeyID int) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT c.first_name, c.last_name
		FROM journey_crews jc
		JOIN crews c ON jc.crew_id = c.id
		WHERE jc.journey_id = $1
		ORDER BY c.id`, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journey crews: %w", translateStorageErr(err))
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var first, last string
		if err := rows.Scan(&first, &last); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		names = append(names, first+" "+last)
	}

	return names, rows.Err()
}

func (r *JourneyRepository) crewMembers(journeyID int) ([]models.CrewResponse, error) {
	rows, err := r.db.Query(`
		SELECT c.id, c.first_name, c.last_name
		FROM journey_crews jc
		JOIN crews c ON jc.crew_id = c.id
		WHERE jc.journey_id = $1
		ORDER BY c.id`, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journey crews: %w", translateStorageErr(err))
	}
	defer rows.Close()

	crews := []models.CrewResponse{}
	for rows.Next() {
		crew := models.Crew{}
		if err := rows.Scan(&crew.ID, &crew.FirstName, &crew.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		crews = append(crews, crew.Response())
	}

	return crews, rows.Err()
}

func (r *JourneyRepository) journeyTickets(journeyID int) ([]models.Ticket, error) {
	rows, err := r.db.Query(`
		SELECT id, journey_id, order_id, cargo, seat
		FROM tickets
		WHERE journey_id = $1
		ORDER BY cargo, seat`, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journey tickets: %w", translateStorageErr(err))
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		ticket := models.Ticket{}
		if err := rows.Scan(&ticket.ID, &ticket.JourneyID, &ticket.OrderID, &ticket.Cargo, &ticket.Seat); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}
