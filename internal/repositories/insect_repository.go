package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/models"
)

type InsectRepository struct {
	pool *pgxpool.Pool
}

func NewInsectRepository(pool *pgxpool.Pool) *InsectRepository {
	return &InsectRepository{pool: pool}
}

// Create inserts the insect and fills in its generated id. A name collision
// is reported as a CreationError naming the duplicate key.
func (r *InsectRepository) Create(ctx context.Context, insect *models.Insect) error {
	query := `
		INSERT INTO insects (name, description, fact, territory, millimeters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		insect.Name,
		insect.Description,
		insect.Fact,
		insect.Territory,
		insect.Millimeters,
	).Scan(&insect.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &apperrors.CreationError{
			Entity:  "insect",
			Details: fmt.Sprintf("%s is already in the database. Name must be unique.", insect.Name),
		}
	}

	return err
}

// GetByID returns (nil, nil) when no row matches.
func (r *InsectRepository) GetByID(ctx context.Context, id int64) (*models.Insect, error) {
	query := `
		SELECT id, name, description, fact, territory, millimeters
		FROM insects WHERE id = $1
	`

	var insect models.Insect
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&insect.ID,
		&insect.Name,
		&insect.Description,
		&insect.Fact,
		&insect.Territory,
		&insect.Millimeters,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &insect, nil
}

// GetByName looks an insect up by its natural key. Returns (nil, nil) on a
// miss.
func (r *InsectRepository) GetByName(ctx context.Context, name string) (*models.Insect, error) {
	query := `
		SELECT id, name, description, fact, territory, millimeters
		FROM insects WHERE name = $1
	`

	var insect models.Insect
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&insect.ID,
		&insect.Name,
		&insect.Description,
		&insect.Fact,
		&insect.Territory,
		&insect.Millimeters,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &insect, nil
}

// List returns every insect projected to the summary shape, smallest first.
func (r *InsectRepository) List(ctx context.Context) ([]models.InsectSummary, error) {
	query := `
		SELECT id, name, millimeters
		FROM insects
		ORDER BY millimeters ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insects []models.InsectSummary
	for rows.Next() {
		var insect models.InsectSummary
		if err := rows.Scan(&insect.ID, &insect.Name, &insect.Millimeters); err != nil {
			return nil, err
		}
		insects = append(insects, insect)
	}

	return insects, rows.Err()
}

// SearchByName returns full rows for insects whose name contains value.
func (r *InsectRepository) SearchByName(ctx context.Context, value string) ([]models.Insect, error) {
	query := `
		SELECT id, name, description, fact, territory, millimeters
		FROM insects
		WHERE name LIKE '%' || $1 || '%'
	`

	rows, err := r.pool.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insects []models.Insect
	for rows.Next() {
		var insect models.Insect
		err := rows.Scan(
			&insect.ID,
			&insect.Name,
			&insect.Description,
			&insect.Fact,
			&insect.Territory,
			&insect.Millimeters,
		)
		if err != nil {
			return nil, err
		}
		insects = append(insects, insect)
	}

	return insects, rows.Err()
}

// ListOrderedByName returns every insect ordered alphabetically. This is the
// parent query of the lazy joined listing; trees are fetched per insect
// afterwards.
func (r *InsectRepository) ListOrderedByName(ctx context.Context) ([]models.Insect, error) {
	query := `
		SELECT id, name, description, fact, territory, millimeters
		FROM insects
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insects []models.Insect
	for rows.Next() {
		var insect models.Insect
		err := rows.Scan(
			&insect.ID,
			&insect.Name,
			&insect.Description,
			&insect.Fact,
			&insect.Territory,
			&insect.Millimeters,
		)
		if err != nil {
			return nil, err
		}
		insects = append(insects, insect)
	}

	return insects, rows.Err()
}

// Update overwrites every column of the row with the given id.
func (r *InsectRepository) Update(ctx context.Context, insect *models.Insect) error {
	query := `
		UPDATE insects SET
			name = $2, description = $3, fact = $4, territory = $5, millimeters = $6
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		insect.ID,
		insect.Name,
		insect.Description,
		insect.Fact,
		insect.Territory,
		insect.Millimeters,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &apperrors.CreationError{
				Entity:  "insect",
				Details: fmt.Sprintf("%s is already in the database. Name must be unique.", insect.Name),
			}
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return &apperrors.NotFoundError{Entity: "insect", Key: fmt.Sprint(insect.ID)}
	}

	return nil
}

// Delete removes the row by id; a missing row is a NotFoundError, never a
// silent no-op.
func (r *InsectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM insects WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return &apperrors.NotFoundError{Entity: "insect", Key: fmt.Sprint(id)}
	}

	return nil
}
