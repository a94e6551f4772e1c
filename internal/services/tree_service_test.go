package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/models"
	"tree_habitat/internal/storetest"
)

func seedTree(t *testing.T, store *storetest.FakeTreeStore, tree models.Tree) models.Tree {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &tree))
	return tree
}

func TestTreeServiceCreate(t *testing.T) {
	store := storetest.NewFakeTreeStore()
	svc := NewTreeService(store)
	ctx := context.Background()

	tree, err := svc.Create(ctx, TreeRequest{Name: "Stagg", Location: "Alder Creek Grove", Height: 243.0, Size: 109.0})
	require.NoError(t, err)
	assert.NotZero(t, tree.ID)
	assert.Equal(t, "Stagg", tree.Name)
	assert.Equal(t, 243.0, tree.HeightFt)

	got, err := svc.Get(ctx, tree.ID)
	require.NoError(t, err)
	assert.Equal(t, tree, got)
}

func TestTreeServiceCreateMissingFields(t *testing.T) {
	store := storetest.NewFakeTreeStore()
	svc := NewTreeService(store)

	_, err := svc.Create(context.Background(), TreeRequest{Name: "Stagg"})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Len(t, validation.Errors, 3)
	assert.Zero(t, store.CreateCalls, "invalid payload must not reach the store")
}

func TestTreeServiceCreateDuplicateName(t *testing.T) {
	store := storetest.NewFakeTreeStore()
	svc := NewTreeService(store)
	seedTree(t, store, models.Tree{Name: "Stagg", Location: "Alder Creek Grove", HeightFt: 243.0, GroundCircumferenceFt: 109.0})

	_, err := svc.Create(context.Background(), TreeRequest{Name: "Stagg", Location: "elsewhere", Height: 1, Size: 1})

	var creation *apperrors.CreationError
	require.ErrorAs(t, err, &creation)
	assert.Contains(t, creation.Details, "Name must be unique")
}

func TestTreeServiceUpdatePartial(t *testing.T) {
	store := storetest.NewFakeTreeStore()
	svc := NewTreeService(store)
	tree := seedTree(t, store, models.Tree{Name: "Lincoln", Location: "Sequoia National Park", HeightFt: 255.8, GroundCircumferenceFt: 98.3})

	// Only truthy fields overwrite; zero-valued height and empty location
	// leave the stored values alone.
	updated, err := svc.Update(context.Background(), tree.ID, TreeRequest{ID: tree.ID, Name: "Lincoln Giant", Size: 99.0})
	require.NoError(t, err)

	assert.Equal(t, "Lincoln Giant", updated.Name)
	assert.Equal(t, "Sequoia National Park", updated.Location)
	assert.Equal(t, 255.8, updated.HeightFt)
	assert.Equal(t, 99.0, updated.GroundCircumferenceFt)
}

func TestTreeServiceUpdateIDMismatch(t *testing.T) {
	store := storetest.NewFakeTreeStore()
	svc := NewTreeService(store)
	tree := seedTree(t, store, models.Tree{Name: "Lincoln", Location: "Sequoia National Park", HeightFt: 255.8, GroundCircumferenceFt: 98.3})

	_, err := svc.Update(context.Background(), tree.ID, TreeRequest{ID: tree.ID + 5, Name: "Renamed"})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Errors[0], "does not match")

	stored, getErr := store.GetByID(context.Background(), tree.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "Lincoln", stored.Name, "mismatch must not write")
}

func TestTreeServiceUpdateNotFound(t *testing.T) {
	svc := NewTreeService(storetest.NewFakeTreeStore())

	_, err := svc.Update(context.Background(), 42, TreeRequest{ID: 42, Name: "Ghost"})

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "tree", notFound.Entity)
}

func TestTreeServiceDeleteNotFound(t *testing.T) {
	svc := NewTreeService(storetest.NewFakeTreeStore())

	err := svc.Delete(context.Background(), 42)

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestTreeServiceListOrdering(t *testing.T) {
	store := storetest.NewFakeTreeStore()
	svc := NewTreeService(store)
	seedTree(t, store, models.Tree{Name: "Lincoln", Location: "a", HeightFt: 255.8, GroundCircumferenceFt: 1})
	seedTree(t, store, models.Tree{Name: "General Sherman", Location: "b", HeightFt: 274.9, GroundCircumferenceFt: 1})
	seedTree(t, store, models.Tree{Name: "Stagg", Location: "c", HeightFt: 243.0, GroundCircumferenceFt: 1})

	trees, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trees, 3)
	assert.Equal(t, "General Sherman", trees[0].Name)
	assert.Equal(t, "Lincoln", trees[1].Name)
	assert.Equal(t, "Stagg", trees[2].Name)
}

func TestTreeServiceSearchEmptyIsNotAnError(t *testing.T) {
	svc := NewTreeService(storetest.NewFakeTreeStore())

	trees, err := svc.Search(context.Background(), "Butterfly")
	require.NoError(t, err)
	assert.Empty(t, trees)
}
