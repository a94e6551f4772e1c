package services

import (
	"context"
	"fmt"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/models"
)

type TreeService struct {
	treeStore TreeStore
}

func NewTreeService(treeStore TreeStore) *TreeService {
	return &TreeService{treeStore: treeStore}
}

// TreeRequest is the write payload for tree create and update. The wire names
// differ from the column names: height maps to heightFt and size to
// groundCircumferenceFt.
type TreeRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Height   float64 `json:"height"`
	Size     float64 `json:"size"`
}

func (s *TreeService) List(ctx context.Context) ([]models.TreeSummary, error) {
	return s.treeStore.List(ctx)
}

func (s *TreeService) Get(ctx context.Context, id int64) (*models.Tree, error) {
	tree, err := s.treeStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}
	if tree == nil {
		return nil, &apperrors.NotFoundError{Entity: "tree", Key: fmt.Sprint(id)}
	}
	return tree, nil
}

func (s *TreeService) Create(ctx context.Context, req TreeRequest) (*models.Tree, error) {
	tree := &models.Tree{
		Name:                  req.Name,
		Location:              req.Location,
		HeightFt:              req.Height,
		GroundCircumferenceFt: req.Size,
	}

	if errs := tree.Validate(); len(errs) > 0 {
		return nil, &apperrors.ValidationError{Errors: errs}
	}

	if err := s.treeStore.Create(ctx, tree); err != nil {
		return nil, err
	}

	return tree, nil
}

// Update applies a partial update: only fields present and truthy in the
// request overwrite stored values. The body id must match the path id.
func (s *TreeService) Update(ctx context.Context, id int64, req TreeRequest) (*models.Tree, error) {
	tree, err := s.treeStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}
	if tree == nil {
		return nil, &apperrors.NotFoundError{Entity: "tree", Key: fmt.Sprint(id)}
	}

	if id != req.ID {
		return nil, &apperrors.ValidationError{
			Errors: []string{fmt.Sprintf("%d does not match %d", id, req.ID)},
		}
	}

	if req.Name != "" {
		tree.Name = req.Name
	}
	if req.Location != "" {
		tree.Location = req.Location
	}
	if req.Height != 0 {
		tree.HeightFt = req.Height
	}
	if req.Size != 0 {
		tree.GroundCircumferenceFt = req.Size
	}

	if err := s.treeStore.Update(ctx, tree); err != nil {
		return nil, err
	}

	return tree, nil
}

func (s *TreeService) Delete(ctx context.Context, id int64) error {
	return s.treeStore.Delete(ctx, id)
}

// Search returns summaries of trees whose name contains value. An empty
// result is not an error here.
func (s *TreeService) Search(ctx context.Context, value string) ([]models.TreeSummary, error) {
	return s.treeStore.SearchByName(ctx, value)
}

// ListWithInsects is the eager joined listing.
func (s *TreeService) ListWithInsects(ctx context.Context) ([]models.TreeWithInsects, error) {
	return s.treeStore.ListWithInsects(ctx)
}
