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

func seedInsect(t *testing.T, store *storetest.FakeInsectStore, insect models.Insect) models.Insect {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &insect))
	return insect
}

func newInsectService() (*InsectService, *storetest.FakeInsectStore, *storetest.FakeAssociationStore, *storetest.FakeTreeStore) {
	trees := storetest.NewFakeTreeStore()
	insects := storetest.NewFakeInsectStore()
	assocs := storetest.NewFakeAssociationStore(trees, insects)
	return NewInsectService(insects, assocs), insects, assocs, trees
}

func TestInsectServiceCreateRequiresAllFields(t *testing.T) {
	svc, store, _, _ := newInsectService()

	_, err := svc.Create(context.Background(), InsectRequest{Name: "Patu Digua Spider", Description: "tiny"})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Len(t, validation.Errors, 3)
	assert.Zero(t, store.CreateCalls)
}

func TestInsectServiceCreateDuplicateName(t *testing.T) {
	svc, store, _, _ := newInsectService()
	seedInsect(t, store, models.Insect{Name: "Patu Digua Spider", Description: "d", Fact: "f", Territory: "t", Millimeters: 0.37})

	_, err := svc.Create(context.Background(), InsectRequest{
		Name: "Patu Digua Spider", Description: "d", Fact: "f", Territory: "t", Millimeters: 0.37,
	})

	var creation *apperrors.CreationError
	require.ErrorAs(t, err, &creation)
}

func TestInsectServiceUpdatePartial(t *testing.T) {
	svc, store, _, _ := newInsectService()
	insect := seedInsect(t, store, models.Insect{
		Name: "Western Pygmy Blue Butterfly", Description: "smallest butterfly", Fact: "desert dweller",
		Territory: "Western United States", Millimeters: 12,
	})

	updated, err := svc.Update(context.Background(), insect.ID, InsectRequest{Fact: "found in wastelands", Millimeters: 0})
	require.NoError(t, err)

	assert.Equal(t, "found in wastelands", updated.Fact)
	assert.Equal(t, "Western Pygmy Blue Butterfly", updated.Name)
	assert.Equal(t, 12.0, updated.Millimeters, "zero-valued field must not overwrite")
}

func TestInsectServiceUpdateNotFound(t *testing.T) {
	svc, _, _, _ := newInsectService()

	_, err := svc.Update(context.Background(), 9, InsectRequest{Name: "Ghost"})

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "insect", notFound.Entity)
}

func TestInsectServiceDeleteNotFound(t *testing.T) {
	svc, _, _, _ := newInsectService()

	err := svc.Delete(context.Background(), 9)

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestInsectServiceSearchMissIsNotFound(t *testing.T) {
	svc, _, _, _ := newInsectService()

	_, err := svc.Search(context.Background(), "Butterfly")

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Butterfly", notFound.Key)
}

func TestInsectServiceListWithTreesOmitsUnlinked(t *testing.T) {
	svc, insects, assocs, trees := newInsectService()
	ctx := context.Background()

	stagg := models.Tree{Name: "Stagg", Location: "Alder Creek Grove", HeightFt: 243.0, GroundCircumferenceFt: 109.0}
	require.NoError(t, trees.Create(ctx, &stagg))
	sherman := models.Tree{Name: "General Sherman", Location: "Sequoia National Park", HeightFt: 274.9, GroundCircumferenceFt: 102.6}
	require.NoError(t, trees.Create(ctx, &sherman))

	spider := seedInsect(t, insects, models.Insect{Name: "Patu Digua Spider", Description: "tiny spider", Fact: "f", Territory: "t", Millimeters: 0.37})
	seedInsect(t, insects, models.Insect{Name: "Unlinked Beetle", Description: "d", Fact: "f", Territory: "t", Millimeters: 5})

	_, err := assocs.Create(ctx, spider.ID, stagg.ID)
	require.NoError(t, err)
	_, err = assocs.Create(ctx, spider.ID, sherman.ID)
	require.NoError(t, err)

	listing, err := svc.ListWithTrees(ctx)
	require.NoError(t, err)

	require.Len(t, listing, 1, "insects with no trees are omitted")
	assert.Equal(t, "Patu Digua Spider", listing[0].Name)
	require.Len(t, listing[0].Trees, 2)
	assert.Equal(t, "General Sherman", listing[0].Trees[0].Name, "trees sorted alphabetically")
	assert.Equal(t, "Stagg", listing[0].Trees[1].Name)
}
