package services

import (
	"context"
	"fmt"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/models"
)

type InsectService struct {
	insectStore InsectStore
	assocStore  AssociationStore
}

func NewInsectService(insectStore InsectStore, assocStore AssociationStore) *InsectService {
	return &InsectService{insectStore: insectStore, assocStore: assocStore}
}

// InsectRequest is the write payload for insect create and update.
type InsectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fact        string  `json:"fact"`
	Territory   string  `json:"territory"`
	Millimeters float64 `json:"millimeters"`
}

func (s *InsectService) List(ctx context.Context) ([]models.InsectSummary, error) {
	return s.insectStore.List(ctx)
}

func (s *InsectService) Get(ctx context.Context, id int64) (*models.Insect, error) {
	insect, err := s.insectStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get insect: %w", err)
	}
	if insect == nil {
		return nil, &apperrors.NotFoundError{Entity: "insect", Key: fmt.Sprint(id)}
	}
	return insect, nil
}

func (s *InsectService) Create(ctx context.Context, req InsectRequest) (*models.Insect, error) {
	insect := &models.Insect{
		Name:        req.Name,
		Description: req.Description,
		Fact:        req.Fact,
		Territory:   req.Territory,
		Millimeters: req.Millimeters,
	}

	if errs := insect.Validate(); len(errs) > 0 {
		return nil, &apperrors.ValidationError{Errors: errs}
	}

	if err := s.insectStore.Create(ctx, insect); err != nil {
		return nil, err
	}

	return insect, nil
}

// Update applies a partial update: only fields present and truthy in the
// request overwrite stored values. The merged row is re-validated before the
// write.
func (s *InsectService) Update(ctx context.Context, id int64, req InsectRequest) (*models.Insect, error) {
	insect, err := s.insectStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get insect: %w", err)
	}
	if insect == nil {
		return nil, &apperrors.NotFoundError{Entity: "insect", Key: fmt.Sprint(id)}
	}

	if req.Name != "" {
		insect.Name = req.Name
	}
	if req.Description != "" {
		insect.Description = req.Description
	}
	if req.Fact != "" {
		insect.Fact = req.Fact
	}
	if req.Territory != "" {
		insect.Territory = req.Territory
	}
	if req.Millimeters != 0 {
		insect.Millimeters = req.Millimeters
	}

	if errs := insect.Validate(); len(errs) > 0 {
		return nil, &apperrors.ValidationError{Errors: errs}
	}

	if err := s.insectStore.Update(ctx, insect); err != nil {
		return nil, err
	}

	return insect, nil
}

func (s *InsectService) Delete(ctx context.Context, id int64) error {
	return s.insectStore.Delete(ctx, id)
}

// Search returns insects whose name contains value. Zero matches is a
// NotFoundError: the route distinguishes "no results" from "entity missing"
// in its payload, not here.
func (s *InsectService) Search(ctx context.Context, value string) ([]models.Insect, error) {
	insects, err := s.insectStore.SearchByName(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("failed to search insects: %w", err)
	}
	if len(insects) == 0 {
		return nil, &apperrors.NotFoundError{Entity: "insects", Key: value}
	}
	return insects, nil
}

// ListWithTrees is the lazy joined listing: the parent query fetches insects
// ordered by name, then each insect's trees are fetched separately. Insects
// with no associated tree are omitted.
func (s *InsectService) ListWithTrees(ctx context.Context) ([]models.InsectWithTrees, error) {
	insects, err := s.insectStore.ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list insects: %w", err)
	}

	var result []models.InsectWithTrees
	for _, insect := range insects {
		trees, err := s.assocStore.TreesForInsect(ctx, insect.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list trees for insect %d: %w", insect.ID, err)
		}
		if len(trees) == 0 {
			continue
		}
		result = append(result, models.InsectWithTrees{
			ID:          insect.ID,
			Name:        insect.Name,
			Description: insect.Description,
			Trees:       trees,
		})
	}

	return result, nil
}
