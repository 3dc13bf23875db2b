package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
)

var _ port.ProductsRepository = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

const productColumns = `
	p.id, p.name, p.part_number, COALESCE(p.oem_number, ''),
	COALESCE(c.slug, ''), p.brand, p.price,
	COALESCE(p.description, ''), p.in_stock, p.featured`

// FetchProducts narrows the stored collection by equality and pattern
// criteria before transfer. Criteria AND-combine; zero values impose no
// constraint. Rows come back newest-created first.
func (r ProductsRepository) FetchProducts(
	ctx context.Context, q domain.StoreQuery,
) ([]domain.Product, error) {
	const op = "ProductsRepository.FetchProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`

	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.CategoryID != "" {
		conds = append(conds, "p.category_id = "+arg(q.CategoryID))
	}
	if q.Brand != "" {
		conds = append(conds, "p.brand = "+arg(q.Brand))
	}
	if q.Featured {
		conds = append(conds, "p.featured = TRUE")
	}
	if q.InStock {
		conds = append(conds, "p.in_stock = TRUE")
	}
	if q.Search != "" {
		pattern := arg("%" + q.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(p.name ILIKE %[1]s OR p.part_number ILIKE %[1]s OR p.description ILIKE %[1]s)",
			pattern,
		))
	}

	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY p.created_at DESC;"

	rows, err := r.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var (
		ps   []domain.Product
		byID = make(map[string]int)
	)
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ProductID, &p.Name, &p.PartNumber, &p.OEMNumber,
			&p.Category, &p.Brand, &p.Price,
			&p.Description, &p.InStock, &p.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		byID[p.ProductID] = len(ps)
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.loadDetails(ctx, ps, byID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) FetchProductByID(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "ProductsRepository.FetchProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1;`

	var p domain.Product
	err := r.sqldb.QueryRowContext(ctx, query, id).Scan(
		&p.ProductID, &p.Name, &p.PartNumber, &p.OEMNumber,
		&p.Category, &p.Brand, &p.Price,
		&p.Description, &p.InStock, &p.Featured,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	ps := []domain.Product{p}
	err = r.loadDetails(ctx, ps, map[string]int{p.ProductID: 0})
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return ps[0], nil
}

func (r ProductsRepository) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductsRepository.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.ProductID == "" {
		p.ProductID = uuid.NewString()
	}

	err := r.inTx(ctx, op, func(tx *sql.Tx) error {
		query := `
			INSERT INTO products (
				id, name, part_number, oem_number, category_id,
				brand, price, description, in_stock, featured
			)
			VALUES (
				$1, $2, $3, NULLIF($4, ''),
				(SELECT id FROM categories WHERE slug = $5),
				$6, $7, $8, $9, $10
			);`

		_, err := tx.ExecContext(ctx, query,
			p.ProductID, p.Name, p.PartNumber, p.OEMNumber, p.Category,
			p.Brand, p.Price, p.Description, p.InStock, p.Featured,
		)
		if err != nil {
			return err
		}
		return r.insertDetails(ctx, tx, p)
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdateProduct replaces the product row and all of its detail rows in
// one transaction, preserving the incoming display order.
func (r ProductsRepository) UpdateProduct(
	ctx context.Context, p domain.Product,
) error {
	const op = "ProductsRepository.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := r.inTx(ctx, op, func(tx *sql.Tx) error {
		query := `
			UPDATE products SET
				name = $2,
				part_number = $3,
				oem_number = NULLIF($4, ''),
				category_id = (SELECT id FROM categories WHERE slug = $5),
				brand = $6,
				price = $7,
				description = $8,
				in_stock = $9,
				featured = $10
			WHERE id = $1;`

		res, err := tx.ExecContext(ctx, query,
			p.ProductID, p.Name, p.PartNumber, p.OEMNumber, p.Category,
			p.Brand, p.Price, p.Description, p.InStock, p.Featured,
		)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.ErrNotFound
		}

		for _, table := range detailTables {
			_, err := tx.ExecContext(ctx,
				"DELETE FROM "+table+" WHERE product_id = $1;", p.ProductID)
			if err != nil {
				return err
			}
		}
		return r.insertDetails(ctx, tx, p)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) DeleteProduct(ctx context.Context, id string) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		"DELETE FROM products WHERE id = $1;", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

var detailTables = []string{
	"product_specifications",
	"product_compatibility",
	"product_images",
}

// loadDetails fills specifications, compatibility and images for every
// product in ps. byID maps product id to its index in ps.
func (r ProductsRepository) loadDetails(
	ctx context.Context, ps []domain.Product, byID map[string]int,
) error {
	if len(ps) == 0 {
		return nil
	}

	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ProductID)
	}

	err := r.scanDetail(ctx, `
		SELECT product_id, spec_key, spec_value
		FROM product_specifications
		WHERE product_id = ANY($1)
		ORDER BY display_order ASC;`, ids,
		func(rows *sql.Rows) error {
			var id string
			var s domain.Specification
			if err := rows.Scan(&id, &s.Name, &s.Value); err != nil {
				return err
			}
			p := &ps[byID[id]]
			p.Specifications = append(p.Specifications, s)
			return nil
		})
	if err != nil {
		return err
	}

	err = r.scanDetail(ctx, `
		SELECT product_id, make, model, year_start, year_end,
			COALESCE(engine_type, '')
		FROM product_compatibility
		WHERE product_id = ANY($1)
		ORDER BY id ASC;`, ids,
		func(rows *sql.Rows) error {
			var id string
			var c domain.VehicleCompatibility
			err := rows.Scan(
				&id, &c.Make, &c.Model, &c.YearStart, &c.YearEnd, &c.EngineType,
			)
			if err != nil {
				return err
			}
			p := &ps[byID[id]]
			p.Compatibility = append(p.Compatibility, c)
			return nil
		})
	if err != nil {
		return err
	}

	return r.scanDetail(ctx, `
		SELECT product_id, url
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY display_order ASC;`, ids,
		func(rows *sql.Rows) error {
			var id, url string
			if err := rows.Scan(&id, &url); err != nil {
				return err
			}
			p := &ps[byID[id]]
			p.Images = append(p.Images, url)
			return nil
		})
}

func (r ProductsRepository) scanDetail(
	ctx context.Context, query string, ids []string, scan func(*sql.Rows) error,
) error {
	rows, err := r.sqldb.QueryContext(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r ProductsRepository) insertDetails(
	ctx context.Context, tx *sql.Tx, p domain.Product,
) error {
	for i, s := range p.Specifications {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_specifications
				(product_id, spec_key, spec_value, display_order)
			VALUES ($1, $2, $3, $4);`,
			p.ProductID, s.Name, s.Value, i,
		)
		if err != nil {
			return err
		}
	}

	for _, c := range p.Compatibility {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_compatibility
				(product_id, make, model, year_start, year_end, engine_type)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''));`,
			p.ProductID, c.Make, c.Model, c.YearStart, c.YearEnd, c.EngineType,
		)
		if err != nil {
			return err
		}
	}

	for i, url := range p.Images {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_images (product_id, url, display_order)
			VALUES ($1, $2, $3);`,
			p.ProductID, url, i,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r ProductsRepository) inTx(
	ctx context.Context, op string, fn func(*sql.Tx) error,
) (txErr error) {
	log := slog.With("op", op)

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	defer func() {
		if txErr == nil {
			if err := tx.Commit(); err != nil {
				txErr = fmt.Errorf("failed to commit: %w", err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	return fn(tx)
}
