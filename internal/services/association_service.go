package services

import (
	"context"
	"errors"
	"fmt"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/models"
	"tree_habitat/internal/repositories"
)

// AssociationService records that an insect was found near a tree. Both sides
// of the link go through the find-or-create resolver before the join row is
// written.
type AssociationService struct {
	treeStore   TreeStore
	insectStore InsectStore
	assocStore  AssociationStore
}

func NewAssociationService(treeStore TreeStore, insectStore InsectStore, assocStore AssociationStore) *AssociationService {
	return &AssociationService{
		treeStore:   treeStore,
		insectStore: insectStore,
		assocStore:  assocStore,
	}
}

// AssociateRequest carries the two entity descriptors. Each may name an
// existing row by id or natural key, or carry the attributes for a new one.
type AssociateRequest struct {
	Tree   TreeDescriptor   `json:"tree"`
	Insect InsectDescriptor `json:"insect"`
}

type TreeDescriptor struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Height   float64 `json:"height"`
	Size     float64 `json:"size"`
}

type InsectDescriptor struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fact        string  `json:"fact"`
	Territory   string  `json:"territory"`
	Millimeters float64 `json:"millimeters"`
}

// AssociationResult returns both resolved entities alongside the new link.
type AssociationResult struct {
	Tree   *models.Tree       `json:"tree"`
	Insect *models.Insect     `json:"insect"`
	Link   *models.InsectTree `json:"-"`
}

// Associate resolves the tree, then the insect, then links them. A pair that
// is already linked fails with an AssociationError and writes nothing.
func (s *AssociationService) Associate(ctx context.Context, req AssociateRequest) (*AssociationResult, error) {
	tree, err := resolve(ctx, resolverFuncs[models.Tree]{
		entity:     "tree",
		findByID:   s.treeStore.GetByID,
		findByName: s.treeStore.GetByName,
		validate:   (*models.Tree).Validate,
		create:     s.treeStore.Create,
	}, req.Tree.ID, req.Tree.Name, func() *models.Tree {
		return &models.Tree{
			Name:                  req.Tree.Name,
			Location:              req.Tree.Location,
			HeightFt:              req.Tree.Height,
			GroundCircumferenceFt: req.Tree.Size,
		}
	})
	if err != nil {
		return nil, err
	}

	insect, err := resolve(ctx, resolverFuncs[models.Insect]{
		entity:     "insect",
		findByID:   s.insectStore.GetByID,
		findByName: s.insectStore.GetByName,
		validate:   (*models.Insect).Validate,
		create:     s.insectStore.Create,
	}, req.Insect.ID, req.Insect.Name, func() *models.Insect {
		return &models.Insect{
			Name:        req.Insect.Name,
			Description: req.Insect.Description,
			Fact:        req.Insect.Fact,
			Territory:   req.Insect.Territory,
			Millimeters: req.Insect.Millimeters,
		}
	})
	if err != nil {
		return nil, err
	}

	link, err := s.assocStore.Create(ctx, insect.ID, tree.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateAssociation) {
			return nil, &apperrors.AssociationError{Tree: tree.Name, Insect: insect.Name}
		}
		return nil, fmt.Errorf("failed to create association: %w", err)
	}

	return &AssociationResult{Tree: tree, Insect: insect, Link: link}, nil
}
