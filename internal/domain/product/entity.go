// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

// Product is a catalog record keyed by ProductID.
type Product struct {
	ProductID   string         `json:"productId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       common.Decimal `json:"price"`
	ImageURL    string         `json:"imageUrl"`
}

var (
	ErrInvalidID    = errors.New("product: invalid productId")
	ErrInvalidName  = errors.New("product: name is required")
	ErrInvalidPrice = errors.New("product: price must be non-negative")
)

// New builds a product. description and imageURL may be empty.
func New(id, name, description string, price common.Decimal, imageURL string) (Product, error) {
	p := Product{
		ProductID:   strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		ImageURL:    strings.TrimSpace(imageURL),
	}
	if err := p.validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Replace overwrites name, description and price. Every field is taken as given:
// an empty description clears the previous one. ImageURL is left untouched.
func (p *Product) Replace(name, description string, price common.Decimal) error {
	next := *p
	next.Name = strings.TrimSpace(name)
	next.Description = description
	next.Price = price
	if err := next.validate(); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p Product) validate() error {
	if p.ProductID == "" {
		return ErrInvalidID
	}
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// ProductsTableDDL defines the SQL for the products table (postgres backend).
const ProductsTableDDL = `
-- Products DDL generated from domain/product entity.
CREATE TABLE IF NOT EXISTS products (
  product_id   TEXT    PRIMARY KEY,
  name         TEXT    NOT NULL CHECK (name <> ''),
  description  TEXT    NOT NULL DEFAULT '',
  price        NUMERIC NOT NULL CHECK (price >= 0),
  image_url    TEXT    NOT NULL DEFAULT ''
);
`
