// Package storetest provides in-memory store implementations for tests.
// They mirror the repository contracts: (nil, nil) on lookup misses,
// CreationError on natural-key collisions, NotFoundError on update/delete of
// absent rows, and ErrDuplicateAssociation on an already-linked pair.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/models"
	"tree_habitat/internal/repositories"
)

type FakeTreeStore struct {
	Trees       map[int64]models.Tree
	NextID      int64
	CreateCalls int
	Assoc       *FakeAssociationStore
}

func NewFakeTreeStore() *FakeTreeStore {
	return &FakeTreeStore{Trees: make(map[int64]models.Tree), NextID: 1}
}

func (f *FakeTreeStore) Create(_ context.Context, tree *models.Tree) error {
	f.CreateCalls++
	for _, existing := range f.Trees {
		if existing.Name == tree.Name {
			return &apperrors.CreationError{
				Entity:  "tree",
				Details: fmt.Sprintf("%s is already in the database. Name must be unique.", tree.Name),
			}
		}
	}
	tree.ID = f.NextID
	f.NextID++
	f.Trees[tree.ID] = *tree
	return nil
}

func (f *FakeTreeStore) GetByID(_ context.Context, id int64) (*models.Tree, error) {
	tree, ok := f.Trees[id]
	if !ok {
		return nil, nil
	}
	return &tree, nil
}

func (f *FakeTreeStore) GetByName(_ context.Context, name string) (*models.Tree, error) {
	for _, tree := range f.Trees {
		if tree.Name == name {
			t := tree
			return &t, nil
		}
	}
	return nil, nil
}

func (f *FakeTreeStore) List(_ context.Context) ([]models.TreeSummary, error) {
	var summaries []models.TreeSummary
	for _, tree := range f.Trees {
		summaries = append(summaries, models.TreeSummary{HeightFt: tree.HeightFt, Name: tree.Name, ID: tree.ID})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].HeightFt > summaries[j].HeightFt })
	return summaries, nil
}

func (f *FakeTreeStore) SearchByName(_ context.Context, value string) ([]models.TreeSummary, error) {
	var summaries []models.TreeSummary
	for _, tree := range f.Trees {
		if strings.Contains(tree.Name, value) {
			summaries = append(summaries, models.TreeSummary{HeightFt: tree.HeightFt, Name: tree.Name, ID: tree.ID})
		}
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].HeightFt > summaries[j].HeightFt })
	return summaries, nil
}

func (f *FakeTreeStore) Update(_ context.Context, tree *models.Tree) error {
	if _, ok := f.Trees[tree.ID]; !ok {
		return &apperrors.NotFoundError{Entity: "tree", Key: fmt.Sprint(tree.ID)}
	}
	f.Trees[tree.ID] = *tree
	return nil
}

func (f *FakeTreeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.Trees[id]; !ok {
		return &apperrors.NotFoundError{Entity: "tree", Key: fmt.Sprint(id)}
	}
	delete(f.Trees, id)
	return nil
}

// ListWithInsects needs link data, so the tree store delegates to the
// association store when one is attached.
func (f *FakeTreeStore) ListWithInsects(ctx context.Context) ([]models.TreeWithInsects, error) {
	if f.Assoc == nil {
		return nil, nil
	}
	return f.Assoc.treesWithInsects(ctx)
}

type FakeInsectStore struct {
	Insects     map[int64]models.Insect
	NextID      int64
	CreateCalls int
}

func NewFakeInsectStore() *FakeInsectStore {
	return &FakeInsectStore{Insects: make(map[int64]models.Insect), NextID: 1}
}

func (f *FakeInsectStore) Create(_ context.Context, insect *models.Insect) error {
	f.CreateCalls++
	for _, existing := range f.Insects {
		if existing.Name == insect.Name {
			return &apperrors.CreationError{
				Entity:  "insect",
				Details: fmt.Sprintf("%s is already in the database. Name must be unique.", insect.Name),
			}
		}
	}
	insect.ID = f.NextID
	f.NextID++
	f.Insects[insect.ID] = *insect
	return nil
}

func (f *FakeInsectStore) GetByID(_ context.Context, id int64) (*models.Insect, error) {
	insect, ok := f.Insects[id]
	if !ok {
		return nil, nil
	}
	return &insect, nil
}

func (f *FakeInsectStore) GetByName(_ context.Context, name string) (*models.Insect, error) {
	for _, insect := range f.Insects {
		if insect.Name == name {
			i := insect
			return &i, nil
		}
	}
	return nil, nil
}

func (f *FakeInsectStore) List(_ context.Context) ([]models.InsectSummary, error) {
	var summaries []models.InsectSummary
	for _, insect := range f.Insects {
		summaries = append(summaries, models.InsectSummary{ID: insect.ID, Name: insect.Name, Millimeters: insect.Millimeters})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Millimeters < summaries[j].Millimeters })
	return summaries, nil
}

func (f *FakeInsectStore) SearchByName(_ context.Context, value string) ([]models.Insect, error) {
	var matches []models.Insect
	for _, insect := range f.Insects {
		if strings.Contains(insect.Name, value) {
			matches = append(matches, insect)
		}
	}
	return matches, nil
}

func (f *FakeInsectStore) ListOrderedByName(_ context.Context) ([]models.Insect, error) {
	var insects []models.Insect
	for _, insect := range f.Insects {
		insects = append(insects, insect)
	}
	sort.Slice(insects, func(i, j int) bool { return insects[i].Name < insects[j].Name })
	return insects, nil
}

func (f *FakeInsectStore) Update(_ context.Context, insect *models.Insect) error {
	if _, ok := f.Insects[insect.ID]; !ok {
		return &apperrors.NotFoundError{Entity: "insect", Key: fmt.Sprint(insect.ID)}
	}
	f.Insects[insect.ID] = *insect
	return nil
}

func (f *FakeInsectStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.Insects[id]; !ok {
		return &apperrors.NotFoundError{Entity: "insect", Key: fmt.Sprint(id)}
	}
	delete(f.Insects, id)
	return nil
}

type Pair struct {
	InsectID int64
	TreeID   int64
}

type FakeAssociationStore struct {
	Links   map[Pair]int64
	NextID  int64
	Trees   *FakeTreeStore
	Insects *FakeInsectStore
}

func NewFakeAssociationStore(trees *FakeTreeStore, insects *FakeInsectStore) *FakeAssociationStore {
	f := &FakeAssociationStore{
		Links:   make(map[Pair]int64),
		NextID:  1,
		Trees:   trees,
		Insects: insects,
	}
	trees.Assoc = f
	return f
}

func (f *FakeAssociationStore) Create(_ context.Context, insectID, treeID int64) (*models.InsectTree, error) {
	p := Pair{InsectID: insectID, TreeID: treeID}
	if _, ok := f.Links[p]; ok {
		return nil, repositories.ErrDuplicateAssociation
	}
	id := f.NextID
	f.NextID++
	f.Links[p] = id
	return &models.InsectTree{ID: id, InsectID: insectID, TreeID: treeID}, nil
}

func (f *FakeAssociationStore) TreesForInsect(_ context.Context, insectID int64) ([]models.TreeRef, error) {
	var refs []models.TreeRef
	for p := range f.Links {
		if p.InsectID != insectID {
			continue
		}
		if tree, ok := f.Trees.Trees[p.TreeID]; ok {
			refs = append(refs, models.TreeRef{ID: tree.ID, Name: tree.Name})
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (f *FakeAssociationStore) Delete(_ context.Context, insectID, treeID int64) error {
	delete(f.Links, Pair{InsectID: insectID, TreeID: treeID})
	return nil
}

func (f *FakeAssociationStore) treesWithInsects(_ context.Context) ([]models.TreeWithInsects, error) {
	byTree := make(map[int64][]models.InsectRef)
	for p := range f.Links {
		insect, ok := f.Insects.Insects[p.InsectID]
		if !ok {
			continue
		}
		byTree[p.TreeID] = append(byTree[p.TreeID], models.InsectRef{ID: insect.ID, Name: insect.Name})
	}

	var result []models.TreeWithInsects
	for treeID, insects := range byTree {
		tree, ok := f.Trees.Trees[treeID]
		if !ok {
			continue
		}
		sort.Slice(insects, func(i, j int) bool { return insects[i].Name < insects[j].Name })
		result = append(result, models.TreeWithInsects{
			ID:       tree.ID,
			Name:     tree.Name,
			Location: tree.Location,
			HeightFt: tree.HeightFt,
			Insects:  insects,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].HeightFt > result[j].HeightFt })
	return result, nil
}
