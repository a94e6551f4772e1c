package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tree_habitat/internal/models"
)

// ErrDuplicateAssociation is returned when the (insect, tree) pair is already
// linked. The unique constraint on insect_trees is the sole duplicate check;
// there is no read before the insert, so concurrent identical requests cannot
// both slip through.
var ErrDuplicateAssociation = errors.New("association already exists")

type AssociationRepository struct {
	pool *pgxpool.Pool
}

func NewAssociationRepository(pool *pgxpool.Pool) *AssociationRepository {
	return &AssociationRepository{pool: pool}
}

// Create inserts exactly one join row linking the two ids.
func (r *AssociationRepository) Create(ctx context.Context, insectID, treeID int64) (*models.InsectTree, error) {
	query := `
		INSERT INTO insect_trees (insect_id, tree_id)
		VALUES ($1, $2)
		RETURNING id
	`

	link := &models.InsectTree{InsectID: insectID, TreeID: treeID}
	err := r.pool.QueryRow(ctx, query, insectID, treeID).Scan(&link.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateAssociation
		}
		return nil, err
	}

	return link, nil
}

// TreesForInsect returns the trees linked to an insect, alphabetical by name.
// This is the follow-up query of the lazy joined listing.
func (r *AssociationRepository) TreesForInsect(ctx context.Context, insectID int64) ([]models.TreeRef, error) {
	query := `
		SELECT t.id, t.tree
		FROM trees t
		JOIN insect_trees it ON it.tree_id = t.id
		WHERE it.insect_id = $1
		ORDER BY t.tree ASC
	`

	rows, err := r.pool.Query(ctx, query, insectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trees []models.TreeRef
	for rows.Next() {
		var tree models.TreeRef
		if err := rows.Scan(&tree.ID, &tree.Name); err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}

	return trees, rows.Err()
}

// Delete removes the join row for the pair, if present. Used by explicit
// deletion flows only.
func (r *AssociationRepository) Delete(ctx context.Context, insectID, treeID int64) error {
	query := `DELETE FROM insect_trees WHERE insect_id = $1 AND tree_id = $2`
	_, err := r.pool.Exec(ctx, query, insectID, treeID)
	return err
}
