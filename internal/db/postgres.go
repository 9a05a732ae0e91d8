package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS (operator accounts)
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'OPERATOR',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPES
	// -------------------------------
	recipesSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			slug VARCHAR(255) UNIQUE NOT NULL,
			title VARCHAR(500) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			story TEXT NOT NULL DEFAULT '',
			prep_time_minutes INT,
			cook_time_minutes INT,
			rest_time_minutes INT,
			servings INT NOT NULL DEFAULT 4,
			servings_unit VARCHAR(50) NOT NULL DEFAULT 'servings',
			cuisine TEXT[] NOT NULL DEFAULT '{}',
			course TEXT[] NOT NULL DEFAULT '{}',
			keywords TEXT[] NOT NULL DEFAULT '{}',
			featured_image_url VARCHAR(1000) NOT NULL DEFAULT '',
			source VARCHAR(255) NOT NULL DEFAULT '',
			source_url VARCHAR(1000) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'draft',
			published_at TIMESTAMP NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, recipesSQL); err != nil {
		return err
	}

	// -------------------------------
	// INGREDIENT GROUPS + INGREDIENTS
	// -------------------------------
	groupsSQL := `
		CREATE TABLE IF NOT EXISTS ingredient_groups (
			id UUID PRIMARY KEY,
			recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			title VARCHAR(255),
			sort_order INT NOT NULL
		)
	`
	if _, err := db.Exec(ctx, groupsSQL); err != nil {
		return err
	}

	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id UUID PRIMARY KEY,
			group_id UUID NOT NULL REFERENCES ingredient_groups(id) ON DELETE CASCADE,
			amount DOUBLE PRECISION,
			unit VARCHAR(100),
			name VARCHAR(500) NOT NULL,
			notes TEXT,
			sort_order INT NOT NULL
		)
	`
	if _, err := db.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// INSTRUCTIONS
	// -------------------------------
	instructionsSQL := `
		CREATE TABLE IF NOT EXISTS instructions (
			id UUID PRIMARY KEY,
			recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			step_number INT NOT NULL,
			text TEXT NOT NULL,
			tip TEXT,
			image_url VARCHAR(1000)
		)
	`
	if _, err := db.Exec(ctx, instructionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// NUTRITION (one row per recipe)
	// -------------------------------
	nutritionSQL := `
		CREATE TABLE IF NOT EXISTS nutrition (
			recipe_id UUID PRIMARY KEY REFERENCES recipes(id) ON DELETE CASCADE,
			serving_size VARCHAR(100),
			calories DOUBLE PRECISION,
			carbs_g DOUBLE PRECISION,
			protein_g DOUBLE PRECISION,
			fat_g DOUBLE PRECISION,
			saturated_fat_g DOUBLE PRECISION,
			fiber_g DOUBLE PRECISION,
			sugar_g DOUBLE PRECISION,
			sodium_mg DOUBLE PRECISION,
			vitamin_a_iu DOUBLE PRECISION,
			vitamin_c_mg DOUBLE PRECISION,
			calcium_mg DOUBLE PRECISION,
			iron_mg DOUBLE PRECISION,
			potassium_mg DOUBLE PRECISION
		)
	`
	if _, err := db.Exec(ctx, nutritionSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_recipes_status ON recipes(status);
		CREATE INDEX IF NOT EXISTS idx_groups_recipe ON ingredient_groups(recipe_id);
		CREATE INDEX IF NOT EXISTS idx_ingredients_group ON ingredients(group_id);
		CREATE INDEX IF NOT EXISTS idx_instructions_recipe ON instructions(recipe_id);
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
