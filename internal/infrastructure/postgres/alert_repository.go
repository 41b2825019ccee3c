package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/stock-alerts/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura para el análisis de quiebre de stock.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// ListLowStockCandidates retorna los pares producto-bodega bajo umbral con
// ventas recientes, en una sola consulta:
//   - recent_sales agrega las ventas completadas de la ventana por par
//     producto-bodega (unidades y días distintos con actividad).
//   - product_thresholds resuelve el umbral por producto: el de la categoría
//     si está definido, 10 en su defecto.
//   - El SELECT final exige empresa dueña, producto y bodega activos,
//     cantidad <= umbral y total vendido > 0, con filtros opcionales de
//     bodega y categoría vía = ANY.
//
// El orden de urgencia lo calcula el caso de uso; aquí solo se ordena por IDs
// para un resultado estable.
func (r *AlertRepo) ListLowStockCandidates(ctx context.Context, q repository.LowStockQuery) ([]repository.LowStockRow, error) {
	query := `
	WITH recent_sales AS (
		SELECT
		    si.product_id,
		    si.warehouse_id,
		    COALESCE(SUM(si.quantity), 0)        AS total_sold,
		    COUNT(DISTINCT s.sale_date::date)    AS sales_days
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.company_id = $1
		  AND s.sale_date >= $2
		  AND s.status = 'completed'
		GROUP BY si.product_id, si.warehouse_id
	),
	product_thresholds AS (
		SELECT
		    p.id                                     AS product_id,
		    COALESCE(pc.low_stock_threshold, 10)     AS threshold
		FROM products p
		LEFT JOIN product_categories pc ON pc.id = p.category_id
		WHERE p.company_id = $1
	)
	SELECT
	    p.id                 AS product_id,
	    p.name               AS product_name,
	    p.sku,
	    w.id                 AS warehouse_id,
	    w.name               AS warehouse_name,
	    st.quantity          AS current_stock,
	    pt.threshold,
	    rs.total_sold,
	    rs.sales_days,
	    sup.id               AS supplier_id,
	    sup.name             AS supplier_name,
	    sup.contact_email    AS supplier_email,
	    sp.supplier_sku,
	    sp.supplier_price,
	    sp.lead_time_days
	FROM products p
	JOIN stock st              ON st.product_id = p.id
	JOIN warehouses w          ON w.id = st.warehouse_id
	JOIN product_thresholds pt ON pt.product_id = p.id
	JOIN recent_sales rs       ON rs.product_id = p.id AND rs.warehouse_id = st.warehouse_id
	LEFT JOIN supplier_products sp ON sp.product_id = p.id AND sp.is_primary_supplier = true
	LEFT JOIN suppliers sup        ON sup.id = sp.supplier_id
	WHERE p.company_id = $1
	  AND w.company_id = $1
	  AND p.is_active = true
	  AND w.is_active = true
	  AND st.quantity <= pt.threshold
	  AND rs.total_sold > 0`

	args := []any{q.CompanyID, q.Cutoff}
	pos := 3
	if len(q.WarehouseIDs) > 0 {
		query += fmt.Sprintf(" AND w.id = ANY($%d)", pos)
		args = append(args, q.WarehouseIDs)
		pos++
	}
	if len(q.CategoryIDs) > 0 {
		query += fmt.Sprintf(" AND p.category_id = ANY($%d)", pos)
		args = append(args, q.CategoryIDs)
		pos++
	}
	query += " ORDER BY p.id, w.id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("alerts.ListLowStockCandidates: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.WarehouseID,
			&row.WarehouseName,
			&row.Quantity,
			&row.Threshold,
			&row.TotalSold,
			&row.SalesDays,
			&row.SupplierID,
			&row.SupplierName,
			&row.SupplierEmail,
			&row.SupplierSKU,
			&row.SupplierPrice,
			&row.LeadTimeDays,
		); err != nil {
			return nil, fmt.Errorf("alerts.ListLowStockCandidates scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetProductVelocity agrega las ventas completadas del producto en la bodega
// desde cutoff. Usa COALESCE para devolver cero si no hay ventas.
func (r *AlertRepo) GetProductVelocity(ctx context.Context, companyID, productID, warehouseID string, cutoff time.Time) (repository.VelocityResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(si.quantity), 0)        AS total_sold,
	    COUNT(DISTINCT s.sale_date::date)    AS sales_days
	FROM sale_items si
	JOIN sales s ON s.id = si.sale_id
	WHERE s.company_id = $1
	  AND si.product_id = $2
	  AND si.warehouse_id = $3
	  AND s.sale_date >= $4
	  AND s.status = 'completed'`

	var res repository.VelocityResult
	err := r.q.QueryRow(ctx, query, companyID, productID, warehouseID, cutoff).
		Scan(&res.TotalSold, &res.SalesDays)
	if err != nil {
		return repository.VelocityResult{}, fmt.Errorf("alerts.GetProductVelocity: %w", err)
	}
	return res, nil
}
