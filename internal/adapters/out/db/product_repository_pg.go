// internal/adapters/out/db/product_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbcommon "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/db/common"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	productdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/product"
)

// ProductRepositoryPG implements product.Repository on the products table.
type ProductRepositoryPG struct {
	DB *sql.DB
}

func NewProductRepositoryPG(db *sql.DB) *ProductRepositoryPG {
	return &ProductRepositoryPG{DB: db}
}

const productColumns = `product_id, name, description, price, image_url`

func (r *ProductRepositoryPG) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	row := run.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = $1`, strings.TrimSpace(id))
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) List(ctx context.Context) ([]productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	rows, err := run.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []productdom.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepositoryPG) Create(ctx context.Context, v productdom.Product) (productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	const q = `
INSERT INTO products (product_id, name, description, price, image_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + productColumns

	row := run.QueryRowContext(ctx, q,
		v.ProductID,
		v.Name,
		v.Description,
		v.Price.WireString(),
		v.ImageURL,
	)
	out, err := scanProduct(row)
	if err != nil {
		if dbcommon.IsUniqueViolation(err) {
			return productdom.Product{}, productdom.ErrConflict
		}
		return productdom.Product{}, err
	}
	return out, nil
}

func (r *ProductRepositoryPG) Update(ctx context.Context, v productdom.Product) (productdom.Product, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	const q = `
UPDATE products
SET name = $2, description = $3, price = $4, image_url = $5
WHERE product_id = $1
RETURNING ` + productColumns

	row := run.QueryRowContext(ctx, q,
		v.ProductID,
		v.Name,
		v.Description,
		v.Price.WireString(),
		v.ImageURL,
	)
	out, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return out, nil
}

// Delete is idempotent: zero affected rows is not an error.
func (r *ProductRepositoryPG) Delete(ctx context.Context, id string) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	_, err := run.ExecContext(ctx, `DELETE FROM products WHERE product_id = $1`, strings.TrimSpace(id))
	return err
}

func scanProduct(s dbcommon.RowScanner) (productdom.Product, error) {
	var (
		p     productdom.Product
		price string
	)
	if err := s.Scan(&p.ProductID, &p.Name, &p.Description, &price, &p.ImageURL); err != nil {
		return productdom.Product{}, err
	}
	d, err := common.ParseDecimal(price)
	if err != nil {
		return productdom.Product{}, err
	}
	p.Price = d
	return p, nil
}
