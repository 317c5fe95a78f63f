package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// itemColumns orden de columnas compartido por todas las lecturas (ver scanItem).
var itemColumns = []string{
	"id", "company_id", "sku", "name", "description", "composition", "variants",
	"wastage_percent", "charge_kind", "charge_value",
	"gross_weight_mg", "buying_cost_paise", "buying_cost_manual", "selling_price_paise",
	"quantity", "created_at", "updated_at",
}

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
// Composición y variantes se guardan como JSONB en unidades de almacenamiento (mg, paise).
type ItemRepo struct {
	q  Querier
	sb sq.StatementBuilderType
}

// NewItemRepository construye el adaptador de persistencia para piezas. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q, sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

// Create persiste una nueva pieza.
func (r *ItemRepo) Create(item *entity.JewelryItem) error {
	sqlStr, args, err := r.sb.
		Insert("items").
		Columns(itemColumns...).
		Values(
			item.ID, item.CompanyID, item.SKU, item.Name, item.Description, item.Composition, variantsOrEmpty(item.Variants),
			item.WastagePercent, item.ChargeKind, item.ChargeValue,
			item.GrossWeightMg, item.BuyingCostPaise, item.BuyingCostManual, item.SellingPricePaise,
			item.Quantity, item.CreatedAt, item.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert item: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), sqlStr, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por ID. (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.JewelryItem, error) {
	return r.getOne(sq.Eq{"id": id})
}

// GetByCompanyAndSKU obtiene una pieza por empresa y SKU.
func (r *ItemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.JewelryItem, error) {
	return r.getOne(sq.Eq{"company_id": companyID, "sku": sku})
}

// Update guarda composición, política y campos derivados. Quantity no se toca (se maneja vía movimientos).
func (r *ItemRepo) Update(item *entity.JewelryItem) error {
	sqlStr, args, err := r.sb.
		Update("items").
		SetMap(map[string]any{
			"name":                item.Name,
			"description":         item.Description,
			"composition":         item.Composition,
			"variants":            variantsOrEmpty(item.Variants),
			"wastage_percent":     item.WastagePercent,
			"charge_kind":         item.ChargeKind,
			"charge_value":        item.ChargeValue,
			"gross_weight_mg":     item.GrossWeightMg,
			"buying_cost_paise":   item.BuyingCostPaise,
			"buying_cost_manual":  item.BuyingCostManual,
			"selling_price_paise": item.SellingPricePaise,
			"updated_at":          item.UpdatedAt,
		}).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(), sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista piezas de la empresa aplicando los filtros, más recientes primero.
func (r *ItemRepo) List(companyID string, filter repository.ItemFilter) ([]*entity.JewelryItem, error) {
	sqlStr, args, err := r.listQuery(companyID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.JewelryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Delete elimina una pieza por ID.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) listQuery(companyID string, filter repository.ItemFilter) sq.SelectBuilder {
	q := r.sb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at DESC")
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + s + "%"
		q = q.Where(sq.Or{sq.ILike{"sku": pattern}, sq.ILike{"name": pattern}})
	}
	if filter.InStock {
		q = q.Where(sq.Gt{"quantity": 0})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}
	return q
}

func (r *ItemRepo) getOne(where sq.Eq) (*entity.JewelryItem, error) {
	sqlStr, args, err := r.sb.Select(itemColumns...).From("items").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item: %w", err)
	}
	it, err := scanItem(r.q.QueryRow(context.Background(), sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

func scanItem(row pgx.Row) (*entity.JewelryItem, error) {
	var it entity.JewelryItem
	err := row.Scan(
		&it.ID, &it.CompanyID, &it.SKU, &it.Name, &it.Description, &it.Composition, &it.Variants,
		&it.WastagePercent, &it.ChargeKind, &it.ChargeValue,
		&it.GrossWeightMg, &it.BuyingCostPaise, &it.BuyingCostManual, &it.SellingPricePaise,
		&it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// variantsOrEmpty evita guardar JSON null en la columna NOT NULL.
func variantsOrEmpty(v []entity.ItemVariant) []entity.ItemVariant {
	if v == nil {
		return []entity.ItemVariant{}
	}
	return v
}
