package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies the schema in order. Every statement is written to be
// safe to run repeatedly.
func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createTreesTable,
		createInsectsTable,
		createInsectTreesTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createTreesTable = `
CREATE TABLE IF NOT EXISTS trees (
  id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  tree TEXT NOT NULL UNIQUE,
  location TEXT NOT NULL DEFAULT '',
  height_ft DOUBLE PRECISION NOT NULL DEFAULT 0,
  ground_circumference_ft DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_trees_height_ft ON trees(height_ft);
`

const createInsectsTable = `
CREATE TABLE IF NOT EXISTS insects (
  id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL,
  fact TEXT NOT NULL,
  territory TEXT NOT NULL,
  millimeters DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_insects_millimeters ON insects(millimeters);
`

// The pair constraint is what makes duplicate associations detectable without
// a prior read; the insert either succeeds or fails with 23505.
const createInsectTreesTable = `
CREATE TABLE IF NOT EXISTS insect_trees (
  id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  insect_id BIGINT NOT NULL REFERENCES insects(id) ON DELETE CASCADE,
  tree_id BIGINT NOT NULL REFERENCES trees(id) ON DELETE CASCADE,
  UNIQUE (insect_id, tree_id)
);

CREATE INDEX IF NOT EXISTS idx_insect_trees_tree_id ON insect_trees(tree_id);
`
