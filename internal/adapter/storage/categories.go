package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
)

var _ port.CategoriesRepository = (*CategoriesRepository)(nil)

type CategoriesRepository struct {
	sqldb sqldb
}

func NewCategoriesRepository(sqldb sqldb) CategoriesRepository {
	return CategoriesRepository{sqldb}
}

func (r CategoriesRepository) FetchCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CategoriesRepository.FetchCategories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT slug, name, COALESCE(description, ''),
			COALESCE(image, ''), product_count
		FROM categories
		ORDER BY name ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cs []domain.Category
	for rows.Next() {
		var c domain.Category
		err := rows.Scan(
			&c.Slug, &c.Name, &c.Description, &c.Image, &c.ProductCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (r CategoriesRepository) ResolveCategoryID(
	ctx context.Context, slug string,
) (string, error) {
	const op = "CategoriesRepository.ResolveCategoryID"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var id string
	err := r.sqldb.QueryRowContext(ctx,
		"SELECT id FROM categories WHERE slug = $1;", slug).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (r CategoriesRepository) CreateCategory(
	ctx context.Context, c domain.Category,
) error {
	const op = "CategoriesRepository.CreateCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO categories (slug, name, description, image)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''));`

	_, err := r.sqldb.ExecContext(ctx,
		query, c.Slug, c.Name, c.Description, c.Image)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CategoriesRepository) UpdateCategory(
	ctx context.Context, c domain.Category,
) error {
	const op = "CategoriesRepository.UpdateCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE categories SET
			name = $2,
			description = NULLIF($3, ''),
			image = NULLIF($4, '')
		WHERE slug = $1;`

	res, err := r.sqldb.ExecContext(ctx,
		query, c.Slug, c.Name, c.Description, c.Image)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// DeleteCategory removes the category row. Products referencing it are
// left in place with a NULL category.
func (r CategoriesRepository) DeleteCategory(
	ctx context.Context, slug string,
) error {
	const op = "CategoriesRepository.DeleteCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		"DELETE FROM categories WHERE slug = $1;", slug)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
