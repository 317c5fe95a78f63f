package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo catálogo de metales y piedras sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material. Código repetido en la empresa → ErrDuplicate.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materials (id, company_id, kind, code, name, purity, rate_paise, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.Kind, m.Code, m.Name, m.Purity, m.RatePaise, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `
		SELECT id, company_id, kind, code, name, purity, rate_paise, created_at, updated_at
		FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.Kind, &m.Code, &m.Name, &m.Purity, &m.RatePaise, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// ListByCompany lista el catálogo ordenado por tipo y código; kind vacío no filtra.
func (r *MaterialRepo) ListByCompany(companyID, kind string) ([]*entity.Material, error) {
	query := `
		SELECT id, company_id, kind, code, name, purity, rate_paise, created_at, updated_at
		FROM materials WHERE company_id = $1 AND ($2 = '' OR kind = $2)
		ORDER BY kind, code`
	rows, err := r.q.Query(context.Background(), query, companyID, kind)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Kind, &m.Code, &m.Name, &m.Purity, &m.RatePaise, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpdateRate cambia la tarifa vigente (paise por gramo).
func (r *MaterialRepo) UpdateRate(id string, ratePaise int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE materials SET rate_paise = $2, updated_at = now() WHERE id = $1`,
		id, ratePaise,
	)
	if err != nil {
		return fmt.Errorf("update material rate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
