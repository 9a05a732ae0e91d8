package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ----------------------------------------------------------------------
// Postgres repository
// ----------------------------------------------------------------------

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM recipes WHERE slug = $1 LIMIT 1`, slug).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertDraft writes the recipe and all its relations in one transaction.
// Insertion order matches the in-memory order exactly: groups, then each
// group's ingredients, then instructions, then nutrition.
func (r *PostgresRepository) InsertDraft(ctx context.Context, d *Draft) (*Recipe, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	recipeID := uuid.New().String()
	now := time.Now().UTC()

	_, err = tx.Exec(ctx, `
		INSERT INTO recipes (
			id, slug, title, description, story,
			prep_time_minutes, cook_time_minutes, rest_time_minutes,
			servings, servings_unit, cuisine, course, keywords,
			featured_image_url, source, source_url, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`, recipeID, d.Slug, d.Title, d.Description, d.Story,
		d.PrepTimeMinutes, d.CookTimeMinutes, d.RestTimeMinutes,
		d.Servings, d.ServingsUnit, d.Cuisine, d.Course, d.Keywords,
		d.FeaturedImageURL, d.Source, d.SourceURL, string(d.Status),
		now, now)
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}

	for i, g := range d.IngredientGroups {
		groupID := uuid.New().String()
		_, err = tx.Exec(ctx, `
			INSERT INTO ingredient_groups (id, recipe_id, title, sort_order)
			VALUES ($1, $2, $3, $4)
		`, groupID, recipeID, g.Title, i)
		if err != nil {
			return nil, fmt.Errorf("insert ingredient group %d: %w", i, err)
		}

		for j, ing := range g.Ingredients {
			_, err = tx.Exec(ctx, `
				INSERT INTO ingredients (id, group_id, amount, unit, name, notes, sort_order)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, uuid.New().String(), groupID, ing.Amount, ing.Unit, ing.Name, ing.Notes, j)
			if err != nil {
				return nil, fmt.Errorf("insert ingredient %q: %w", ing.Name, err)
			}
		}
	}

	for _, inst := range d.Instructions {
		_, err = tx.Exec(ctx, `
			INSERT INTO instructions (id, recipe_id, step_number, text, tip, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.New().String(), recipeID, inst.StepNumber, inst.Text, inst.Tip, inst.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("insert instruction %d: %w", inst.StepNumber, err)
		}
	}

	if d.Nutrition != nil {
		n := d.Nutrition
		_, err = tx.Exec(ctx, `
			INSERT INTO nutrition (
				recipe_id, serving_size, calories, carbs_g, protein_g, fat_g,
				saturated_fat_g, fiber_g, sugar_g, sodium_mg,
				vitamin_a_iu, vitamin_c_mg, calcium_mg, iron_mg, potassium_mg
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, recipeID, n.ServingSize, n.Calories, n.CarbsG, n.ProteinG, n.FatG,
			n.SaturatedFatG, n.FiberG, n.SugarG, n.SodiumMg,
			n.VitaminAIU, n.VitaminCMg, n.CalciumMg, n.IronMg, n.PotassiumMg)
		if err != nil {
			return nil, fmt.Errorf("insert nutrition: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &Recipe{ID: recipeID, Draft: *d, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*Recipe, error) {
	return r.getOne(ctx, `WHERE slug = $1`, slug)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Recipe, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*Recipe, error) {
	rec := &Recipe{}
	var status string
	err := r.db.QueryRow(ctx, `
		SELECT id, slug, title, description, story,
			prep_time_minutes, cook_time_minutes, rest_time_minutes,
			servings, servings_unit, cuisine, course, keywords,
			featured_image_url, source, source_url, status,
			published_at, created_at, updated_at
		FROM recipes `+where, arg,
	).Scan(&rec.ID, &rec.Slug, &rec.Title, &rec.Description, &rec.Story,
		&rec.PrepTimeMinutes, &rec.CookTimeMinutes, &rec.RestTimeMinutes,
		&rec.Servings, &rec.ServingsUnit, &rec.Cuisine, &rec.Course, &rec.Keywords,
		&rec.FeaturedImageURL, &rec.Source, &rec.SourceURL, &status,
		&rec.PublishedAt, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.Status = Status(status)

	if rec.IngredientGroups, err = r.loadGroups(ctx, rec.ID); err != nil {
		return nil, err
	}
	if rec.Instructions, err = r.loadInstructions(ctx, rec.ID); err != nil {
		return nil, err
	}
	if rec.Nutrition, err = r.loadNutrition(ctx, rec.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *PostgresRepository) loadGroups(ctx context.Context, recipeID string) ([]IngredientGroup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, sort_order FROM ingredient_groups
		WHERE recipe_id = $1 ORDER BY sort_order
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type groupRow struct {
		id    string
		group IngredientGroup
	}
	var groupRows []groupRow
	for rows.Next() {
		var gr groupRow
		if err := rows.Scan(&gr.id, &gr.group.Title, &gr.group.SortOrder); err != nil {
			return nil, err
		}
		groupRows = append(groupRows, gr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var groups []IngredientGroup
	for _, gr := range groupRows {
		ingRows, err := r.db.Query(ctx, `
			SELECT amount, unit, name, notes, sort_order FROM ingredients
			WHERE group_id = $1 ORDER BY sort_order
		`, gr.id)
		if err != nil {
			return nil, err
		}
		for ingRows.Next() {
			var ing Ingredient
			if err := ingRows.Scan(&ing.Amount, &ing.Unit, &ing.Name, &ing.Notes, &ing.SortOrder); err != nil {
				ingRows.Close()
				return nil, err
			}
			gr.group.Ingredients = append(gr.group.Ingredients, ing)
		}
		ingRows.Close()
		if err := ingRows.Err(); err != nil {
			return nil, err
		}
		groups = append(groups, gr.group)
	}
	return groups, nil
}

func (r *PostgresRepository) loadInstructions(ctx context.Context, recipeID string) ([]Instruction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT step_number, text, tip, image_url FROM instructions
		WHERE recipe_id = $1 ORDER BY step_number
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Instruction
	for rows.Next() {
		var inst Instruction
		if err := rows.Scan(&inst.StepNumber, &inst.Text, &inst.Tip, &inst.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) loadNutrition(ctx context.Context, recipeID string) (*Nutrition, error) {
	n := &Nutrition{}
	err := r.db.QueryRow(ctx, `
		SELECT serving_size, calories, carbs_g, protein_g, fat_g,
			saturated_fat_g, fiber_g, sugar_g, sodium_mg,
			vitamin_a_iu, vitamin_c_mg, calcium_mg, iron_mg, potassium_mg
		FROM nutrition WHERE recipe_id = $1
	`, recipeID).Scan(&n.ServingSize, &n.Calories, &n.CarbsG, &n.ProteinG, &n.FatG,
		&n.SaturatedFatG, &n.FiberG, &n.SugarG, &n.SodiumMg,
		&n.VitaminAIU, &n.VitaminCMg, &n.CalciumMg, &n.IronMg, &n.PotassiumMg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status Status) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, slug, title, status, COALESCE(featured_image_url, ''), created_at
		FROM recipes WHERE status = $1 ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		var st string
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title, &st, &s.FeaturedImageURL, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Status = Status(st)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	var tag string
	switch status {
	case StatusPublished:
		tag = `UPDATE recipes SET status = $1, published_at = COALESCE(published_at, NOW()), updated_at = NOW() WHERE id = $2`
	default:
		tag = `UPDATE recipes SET status = $1, updated_at = NOW() WHERE id = $2`
	}
	res, err := r.db.Exec(ctx, tag, string(status), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
