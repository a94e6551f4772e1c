package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedTree struct {
	name          string
	location      string
	heightFt      float64
	circumference float64
}

type seedInsect struct {
	name        string
	description string
	fact        string
	territory   string
	millimeters float64
}

var seedTrees = []seedTree{
	{"General Sherman", "Sequoia National Park", 274.9, 102.6},
	{"General Grant", "Kings Canyon National Park", 268.1, 107.5},
	{"Lincoln", "Sequoia National Park", 255.8, 98.3},
	{"Stagg", "Alder Creek Grove", 243.0, 109.0},
}

var seedInsects = []seedInsect{
	{
		name:        "Western Pygmy Blue Butterfly",
		description: "The smallest butterfly in North America",
		fact:        "It is commonly found in deserts and wastelands",
		territory:   "Western United States",
		millimeters: 12,
	},
	{
		name:        "Patu Digua Spider",
		description: "One of the smallest spiders in the world",
		fact:        "Males are less than half the size of a pinhead",
		territory:   "Rio Digua, Colombia",
		millimeters: 0.37,
	},
}

// seedAssociations maps an insect to the trees it has been observed near.
var seedAssociations = map[string][]string{
	"Western Pygmy Blue Butterfly": {"General Sherman", "General Grant", "Lincoln", "Stagg"},
	"Patu Digua Spider":            {"Stagg"},
}

// Seed inserts the starter trees, insects, and associations. Re-running is a
// no-op thanks to ON CONFLICT DO NOTHING on every statement.
func Seed(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, t := range seedTrees {
		_, err := pool.Exec(ctx, `
			INSERT INTO trees (tree, location, height_ft, ground_circumference_ft)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (tree) DO NOTHING
		`, t.name, t.location, t.heightFt, t.circumference)
		if err != nil {
			return fmt.Errorf("failed to seed tree %q: %w", t.name, err)
		}
	}

	for _, i := range seedInsects {
		_, err := pool.Exec(ctx, `
			INSERT INTO insects (name, description, fact, territory, millimeters)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING
		`, i.name, i.description, i.fact, i.territory, i.millimeters)
		if err != nil {
			return fmt.Errorf("failed to seed insect %q: %w", i.name, err)
		}
	}

	for insectName, treeNames := range seedAssociations {
		for _, treeName := range treeNames {
			_, err := pool.Exec(ctx, `
				INSERT INTO insect_trees (insect_id, tree_id)
				SELECT i.id, t.id FROM insects i, trees t
				WHERE i.name = $1 AND t.tree = $2
				ON CONFLICT (insect_id, tree_id) DO NOTHING
			`, insectName, treeName)
			if err != nil {
				return fmt.Errorf("failed to seed association %q / %q: %w", insectName, treeName, err)
			}
		}
	}

	log.Println("Seed data loaded")
	return nil
}

// RollbackSeed removes the seeded associations. Tree and insect rows are left
// in place; only the join rows created by Seed are destroyed.
func RollbackSeed(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for insectName, treeNames := range seedAssociations {
		for _, treeName := range treeNames {
			_, err := pool.Exec(ctx, `
				DELETE FROM insect_trees it
				USING insects i, trees t
				WHERE it.insect_id = i.id AND it.tree_id = t.id
				  AND i.name = $1 AND t.tree = $2
			`, insectName, treeName)
			if err != nil {
				return fmt.Errorf("failed to roll back association %q / %q: %w", insectName, treeName, err)
			}
		}
	}

	log.Println("Seed associations removed")
	return nil
}
