// seed puebla la base de datos con una empresa demo lista para probar las
// alertas de bajo stock: bodegas, categorías con y sin umbral, productos con
// stock bajo, proveedor primario y ventas completadas de los últimos días.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stock-alerts/internal/infrastructure/postgres"
	"github.com/invorya/stock-alerts/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	companyID := uuid.New().String()
	warehouseID := uuid.New().String()
	secondWarehouseID := uuid.New().String()
	categoryID := uuid.New().String()
	noThresholdCategoryID := uuid.New().String()
	supplierID := uuid.New().String()

	exec := func(query string, args ...any) {
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			fail("seed: %v\n%s", err, query)
		}
	}

	exec(`INSERT INTO companies (id, name, status) VALUES ($1, 'Demo Distribuciones SAS', 'active')`, companyID)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password: %v", err)
	}
	exec(`INSERT INTO users (id, company_id, email, password_hash, name, role, status)
	      VALUES ($1, $2, 'admin@demo.co', $3, 'Admin Demo', 'admin', 'active')`,
		uuid.New().String(), companyID, string(hash))

	exec(`INSERT INTO warehouses (id, company_id, name, address) VALUES
	      ($1, $3, 'Bodega Principal', 'Calle 10 # 5-20'),
	      ($2, $3, 'Bodega Norte', 'Autopista Norte km 12')`,
		warehouseID, secondWarehouseID, companyID)

	exec(`INSERT INTO product_categories (id, company_id, name, low_stock_threshold) VALUES
	      ($1, $3, 'Bebidas', 15),
	      ($2, $3, 'Snacks', NULL)`,
		categoryID, noThresholdCategoryID, companyID)

	exec(`INSERT INTO suppliers (id, company_id, name, contact_email)
	      VALUES ($1, $2, 'Proveedor Andino', 'ventas@andino.co')`, supplierID, companyID)

	// Productos: uno casi agotado, uno bajo umbral con ventas lentas y uno sano.
	products := []struct {
		name, sku  string
		categoryID string
		qty        float64
		soldPerDay float64
	}{
		{"Gaseosa Cola 400ml", "BEB-COLA-400", categoryID, 3, 4},
		{"Agua sin gas 600ml", "BEB-AGUA-600", categoryID, 12, 1},
		{"Papas fritas 150g", "SNK-PAPAS-150", noThresholdCategoryID, 80, 2},
	}

	now := time.Now().UTC()
	for _, p := range products {
		productID := uuid.New().String()
		exec(`INSERT INTO products (id, company_id, category_id, sku, name, price)
		      VALUES ($1, $2, $3, $4, $5, 2500)`,
			productID, companyID, p.categoryID, p.sku, p.name)
		exec(`INSERT INTO stock (product_id, warehouse_id, quantity) VALUES ($1, $2, $3)`,
			productID, warehouseID, p.qty)
		exec(`INSERT INTO supplier_products (supplier_id, product_id, supplier_sku, supplier_price, lead_time_days, is_primary_supplier)
		      VALUES ($1, $2, $3, 1800, 5, true)`,
			supplierID, productID, "PRV-"+p.sku)

		// 30 días de ventas completadas para que la velocidad sea estable.
		for day := 1; day <= 30; day++ {
			saleID := uuid.New().String()
			saleDate := now.AddDate(0, 0, -day)
			exec(`INSERT INTO sales (id, company_id, status, sale_date) VALUES ($1, $2, 'completed', $3)`,
				saleID, companyID, saleDate)
			exec(`INSERT INTO sale_items (id, sale_id, product_id, warehouse_id, quantity, unit_price)
			      VALUES ($1, $2, $3, $4, $5, 2500)`,
				uuid.New().String(), saleID, productID, warehouseID, p.soldPerDay)
		}
	}

	fmt.Println("Datos demo creados")
	fmt.Println("  company_id:", companyID)
	fmt.Println("  warehouse_id:", warehouseID)
	fmt.Println("  login: admin@demo.co / admin123")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
