package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"tree_habitat/internal/apperrors"
	"tree_habitat/internal/database"
	"tree_habitat/internal/models"
	"tree_habitat/internal/repositories"
)

// setupPool starts a throwaway Postgres container and applies the schema.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test: requires Docker")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("habitat_test"),
		tcpostgres.WithUsername("habitat"),
		tcpostgres.WithPassword("habitat"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(pool))
	return pool
}

func TestRepositoriesIntegration(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	treeRepo := repositories.NewTreeRepository(pool)
	insectRepo := repositories.NewInsectRepository(pool)
	assocRepo := repositories.NewAssociationRepository(pool)

	t.Run("tree crud", func(t *testing.T) {
		tree := &models.Tree{Name: "General Sherman", Location: "Sequoia National Park", HeightFt: 274.9, GroundCircumferenceFt: 102.6}
		require.NoError(t, treeRepo.Create(ctx, tree))
		require.NotZero(t, tree.ID)

		got, err := treeRepo.GetByID(ctx, tree.ID)
		require.NoError(t, err)
		assert.Equal(t, tree, got)

		byName, err := treeRepo.GetByName(ctx, "General Sherman")
		require.NoError(t, err)
		assert.Equal(t, tree.ID, byName.ID)

		missing, err := treeRepo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, missing)

		dup := &models.Tree{Name: "General Sherman", Location: "elsewhere", HeightFt: 1, GroundCircumferenceFt: 1}
		err = treeRepo.Create(ctx, dup)
		var creation *apperrors.CreationError
		require.ErrorAs(t, err, &creation)
		assert.Contains(t, creation.Details, "Name must be unique")

		tree.Location = "Giant Forest"
		require.NoError(t, treeRepo.Update(ctx, tree))
		updated, err := treeRepo.GetByID(ctx, tree.ID)
		require.NoError(t, err)
		assert.Equal(t, "Giant Forest", updated.Location)

		var notFound *apperrors.NotFoundError
		err = treeRepo.Delete(ctx, 99999)
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("tree list and search ordering", func(t *testing.T) {
		for _, tree := range []models.Tree{
			{Name: "General Grant", Location: "Kings Canyon National Park", HeightFt: 268.1, GroundCircumferenceFt: 107.5},
			{Name: "Stagg", Location: "Alder Creek Grove", HeightFt: 243.0, GroundCircumferenceFt: 109.0},
		} {
			tr := tree
			require.NoError(t, treeRepo.Create(ctx, &tr))
		}

		trees, err := treeRepo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(trees), 3)
		for i := 1; i < len(trees); i++ {
			assert.GreaterOrEqual(t, trees[i-1].HeightFt, trees[i].HeightFt, "tallest first")
		}

		matches, err := treeRepo.SearchByName(ctx, "General")
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "General Sherman", matches[0].Name)
		assert.Equal(t, "General Grant", matches[1].Name)

		none, err := treeRepo.SearchByName(ctx, "Butterfly")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("insect crud and search", func(t *testing.T) {
		spider := &models.Insect{Name: "Patu Digua Spider", Description: "tiny", Fact: "f", Territory: "Colombia", Millimeters: 0.37}
		require.NoError(t, insectRepo.Create(ctx, spider))

		butterfly := &models.Insect{Name: "Western Pygmy Blue Butterfly", Description: "smallest", Fact: "f", Territory: "Western United States", Millimeters: 12}
		require.NoError(t, insectRepo.Create(ctx, butterfly))

		insects, err := insectRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, insects, 2)
		assert.Equal(t, "Patu Digua Spider", insects[0].Name, "smallest first")

		matches, err := insectRepo.SearchByName(ctx, "Butterfly")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, butterfly.ID, matches[0].ID)

		byName, err := insectRepo.ListOrderedByName(ctx)
		require.NoError(t, err)
		require.Len(t, byName, 2)
		assert.Equal(t, "Patu Digua Spider", byName[0].Name)
	})

	t.Run("association constraint as duplicate signal", func(t *testing.T) {
		stagg, err := treeRepo.GetByName(ctx, "Stagg")
		require.NoError(t, err)
		spider, err := insectRepo.GetByName(ctx, "Patu Digua Spider")
		require.NoError(t, err)

		link, err := assocRepo.Create(ctx, spider.ID, stagg.ID)
		require.NoError(t, err)
		assert.NotZero(t, link.ID)

		_, err = assocRepo.Create(ctx, spider.ID, stagg.ID)
		require.ErrorIs(t, err, repositories.ErrDuplicateAssociation)

		trees, err := assocRepo.TreesForInsect(ctx, spider.ID)
		require.NoError(t, err)
		require.Len(t, trees, 1)
		assert.Equal(t, "Stagg", trees[0].Name)

		require.NoError(t, assocRepo.Delete(ctx, spider.ID, stagg.ID))
		trees, err = assocRepo.TreesForInsect(ctx, spider.ID)
		require.NoError(t, err)
		assert.Empty(t, trees)
	})

	t.Run("eager joined listing", func(t *testing.T) {
		sherman, err := treeRepo.GetByName(ctx, "General Sherman")
		require.NoError(t, err)
		stagg, err := treeRepo.GetByName(ctx, "Stagg")
		require.NoError(t, err)
		spider, err := insectRepo.GetByName(ctx, "Patu Digua Spider")
		require.NoError(t, err)
		butterfly, err := insectRepo.GetByName(ctx, "Western Pygmy Blue Butterfly")
		require.NoError(t, err)

		_, err = assocRepo.Create(ctx, spider.ID, stagg.ID)
		require.NoError(t, err)
		_, err = assocRepo.Create(ctx, butterfly.ID, stagg.ID)
		require.NoError(t, err)
		_, err = assocRepo.Create(ctx, butterfly.ID, sherman.ID)
		require.NoError(t, err)

		listing, err := treeRepo.ListWithInsects(ctx)
		require.NoError(t, err)
		require.Len(t, listing, 2, "trees without insects are omitted")
		assert.Equal(t, "General Sherman", listing[0].Name, "tallest first")
		assert.Equal(t, "Stagg", listing[1].Name)
		require.Len(t, listing[1].Insects, 2)
		assert.Equal(t, "Patu Digua Spider", listing[1].Insects[0].Name, "insects alphabetical")
	})

	t.Run("seed is idempotent and rolls back", func(t *testing.T) {
		require.NoError(t, database.Seed(pool))
		require.NoError(t, database.Seed(pool))

		lincoln, err := treeRepo.GetByName(ctx, "Lincoln")
		require.NoError(t, err)
		require.NotNil(t, lincoln)

		butterfly, err := insectRepo.GetByName(ctx, "Western Pygmy Blue Butterfly")
		require.NoError(t, err)
		trees, err := assocRepo.TreesForInsect(ctx, butterfly.ID)
		require.NoError(t, err)
		assert.Len(t, trees, 4)

		require.NoError(t, database.RollbackSeed(pool))
		trees, err = assocRepo.TreesForInsect(ctx, butterfly.ID)
		require.NoError(t, err)
		assert.Empty(t, trees)
	})
}
