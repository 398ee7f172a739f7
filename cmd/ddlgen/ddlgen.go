// cmd/ddlgen/ddlgen.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	// ドメインごとに import（アルファベット順）
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/cart"
	orderdomain "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/product"
)

type migration struct {
	file string
	ddl  string
}

// Files are numbered so a plain lexical apply order works.
var migrations = []migration{
	{"0001_init_products.sql", product.ProductsTableDDL},
	{"0002_init_carts.sql", cart.CartsTableDDL},
	{"0003_init_orders.sql", orderdomain.OrdersTableDDL},
	{"0004_init_checkout_history.sql", archive.CheckoutHistoryTableDDL},
}

func mustWrite(path string, content string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

func main() {
	outDir := flag.String("out", filepath.Join("internal", "infra", "database", "migrations"), "output directory")
	flag.Parse()

	for _, m := range migrations {
		path := filepath.Join(*outDir, m.file)
		mustWrite(path, m.ddl)
		fmt.Println("✅ Generated:", path)
	}
}
