package services

import (
	"context"

	"tree_habitat/internal/models"
)

// The store interfaces mirror the pgx repositories. Services depend on these
// so the business rules can be exercised against in-memory fakes in tests.

type TreeStore interface {
	Create(ctx context.Context, tree *models.Tree) error
	GetByID(ctx context.Context, id int64) (*models.Tree, error)
	GetByName(ctx context.Context, name string) (*models.Tree, error)
	List(ctx context.Context) ([]models.TreeSummary, error)
	SearchByName(ctx context.Context, value string) ([]models.TreeSummary, error)
	Update(ctx context.Context, tree *models.Tree) error
	Delete(ctx context.Context, id int64) error
	ListWithInsects(ctx context.Context) ([]models.TreeWithInsects, error)
}

type InsectStore interface {
	Create(ctx context.Context, insect *models.Insect) error
	GetByID(ctx context.Context, id int64) (*models.Insect, error)
	GetByName(ctx context.Context, name string) (*models.Insect, error)
	List(ctx context.Context) ([]models.InsectSummary, error)
	SearchByName(ctx context.Context, value string) ([]models.Insect, error)
	ListOrderedByName(ctx context.Context) ([]models.Insect, error)
	Update(ctx context.Context, insect *models.Insect) error
	Delete(ctx context.Context, id int64) error
}

type AssociationStore interface {
	Create(ctx context.Context, insectID, treeID int64) (*models.InsectTree, error)
	TreesForInsect(ctx context.Context, insectID int64) ([]models.TreeRef, error)
	Delete(ctx context.Context, insectID, treeID int64) error
}
