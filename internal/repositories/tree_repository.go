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

const uniqueViolation = "23505"

type TreeRepository struct {
	pool *pgxpool.Pool
}

func NewTreeRepository(pool *pgxpool.Pool) *TreeRepository {
	return &TreeRepository{pool: pool}
}

// Create inserts the tree and fills in its generated id. A name collision is
// reported as a CreationError naming the duplicate key.
func (r *TreeRepository) Create(ctx context.Context, tree *models.Tree) error {
	query := `
		INSERT INTO trees (tree, location, height_ft, ground_circumference_ft)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		tree.Name,
		tree.Location,
		tree.HeightFt,
		tree.GroundCircumferenceFt,
	).Scan(&tree.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &apperrors.CreationError{
			Entity:  "tree",
			Details: fmt.Sprintf("%s is already in the database. Name must be unique.", tree.Name),
		}
	}

	return err
}

// GetByID returns (nil, nil) when no row matches.
func (r *TreeRepository) GetByID(ctx context.Context, id int64) (*models.Tree, error) {
	query := `
		SELECT id, tree, location, height_ft, ground_circumference_ft
		FROM trees WHERE id = $1
	`

	var tree models.Tree
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tree.ID,
		&tree.Name,
		&tree.Location,
		&tree.HeightFt,
		&tree.GroundCircumferenceFt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &tree, nil
}

// GetByName looks a tree up by its natural key. Returns (nil, nil) on a miss.
func (r *TreeRepository) GetByName(ctx context.Context, name string) (*models.Tree, error) {
	query := `
		SELECT id, tree, location, height_ft, ground_circumference_ft
		FROM trees WHERE tree = $1
	`

	var tree models.Tree
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&tree.ID,
		&tree.Name,
		&tree.Location,
		&tree.HeightFt,
		&tree.GroundCircumferenceFt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &tree, nil
}

// List returns every tree projected to the summary shape, tallest first.
func (r *TreeRepository) List(ctx context.Context) ([]models.TreeSummary, error) {
	query := `
		SELECT height_ft, tree, id
		FROM trees
		ORDER BY height_ft DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trees []models.TreeSummary
	for rows.Next() {
		var tree models.TreeSummary
		if err := rows.Scan(&tree.HeightFt, &tree.Name, &tree.ID); err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}

	return trees, rows.Err()
}

// SearchByName returns summaries of trees whose name contains value, tallest
// first.
func (r *TreeRepository) SearchByName(ctx context.Context, value string) ([]models.TreeSummary, error) {
	query := `
		SELECT height_ft, tree, id
		FROM trees
		WHERE tree LIKE '%' || $1 || '%'
		ORDER BY height_ft DESC
	`

	rows, err := r.pool.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trees []models.TreeSummary
	for rows.Next() {
		var tree models.TreeSummary
		if err := rows.Scan(&tree.HeightFt, &tree.Name, &tree.ID); err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}

	return trees, rows.Err()
}

// Update overwrites every column of the row with the given id.
func (r *TreeRepository) Update(ctx context.Context, tree *models.Tree) error {
	query := `
		UPDATE trees SET
			tree = $2, location = $3, height_ft = $4, ground_circumference_ft = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		tree.ID,
		tree.Name,
		tree.Location,
		tree.HeightFt,
		tree.GroundCircumferenceFt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &apperrors.CreationError{
				Entity:  "tree",
				Details: fmt.Sprintf("%s is already in the database. Name must be unique.", tree.Name),
			}
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return &apperrors.NotFoundError{Entity: "tree", Key: fmt.Sprint(tree.ID)}
	}

	return nil
}

// Delete removes the row by id; a missing row is a NotFoundError, never a
// silent no-op.
func (r *TreeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM trees WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return &apperrors.NotFoundError{Entity: "tree", Key: fmt.Sprint(id)}
	}

	return nil
}

// ListWithInsects runs the eager joined query: every tree with at least one
// associated insect, tallest tree first, insects alphabetical within a tree.
func (r *TreeRepository) ListWithInsects(ctx context.Context) ([]models.TreeWithInsects, error) {
	query := `
		SELECT t.id, t.tree, t.location, t.height_ft, i.id, i.name
		FROM trees t
		JOIN insect_trees it ON it.tree_id = t.id
		JOIN insects i ON i.id = it.insect_id
		ORDER BY t.height_ft DESC, t.id, i.name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trees []models.TreeWithInsects
	for rows.Next() {
		var (
			tree   models.TreeWithInsects
			insect models.InsectRef
		)
		err := rows.Scan(&tree.ID, &tree.Name, &tree.Location, &tree.HeightFt, &insect.ID, &insect.Name)
		if err != nil {
			return nil, err
		}

		if n := len(trees); n > 0 && trees[n-1].ID == tree.ID {
			trees[n-1].Insects = append(trees[n-1].Insects, insect)
			continue
		}
		tree.Insects = []models.InsectRef{insect}
		trees = append(trees, tree)
	}

	return trees, rows.Err()
}
