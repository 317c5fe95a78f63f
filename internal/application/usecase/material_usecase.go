package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	engine "github.com/jhoicas/joyeria-api/internal/domain/pricing"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
	"github.com/jhoicas/joyeria-api/pkg/logger"
)

// MaterialUseCase catálogo de metales y piedras con su tarifa de compra por gramo.
type MaterialUseCase struct {
	repo repository.MaterialRepository
	log  *logger.Logger
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, log *logger.Logger) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, log: log.Component("materials")}
}

// Create da de alta un material. La tarifa llega en rupias y se guarda en paise.
func (uc *MaterialUseCase) Create(companyID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	kind := strings.ToUpper(strings.TrimSpace(in.Kind))
	if kind != entity.MaterialKindMetal && kind != entity.MaterialKindGemstone {
		return nil, domain.ErrInvalidInput
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	rate, err := engine.RupeesToPaise(in.Rate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	m := &entity.Material{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Kind:      kind,
		Code:      code,
		Name:      strings.TrimSpace(in.Name),
		Purity:    strings.TrimSpace(in.Purity),
		RatePaise: rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// List lista el catálogo de la empresa; kind vacío devuelve todo.
func (uc *MaterialUseCase) List(companyID, kind string) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, strings.ToUpper(strings.TrimSpace(kind)))
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(m *entity.Material, _ int) dto.MaterialResponse { return *toMaterialResponse(m) }), nil
}

// UpdateRate cambia la tarifa vigente. Las piezas guardadas conservan la tarifa con que se cotizaron.
func (uc *MaterialUseCase) UpdateRate(companyID, id string, in dto.UpdateRateRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	rate, err := engine.RupeesToPaise(in.Rate)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRate(id, rate); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("material_id", m.ID).
		Str("code", m.Code).
		Int64("old_rate_paise", m.RatePaise).
		Int64("new_rate_paise", rate).
		Msg("tarifa actualizada")
	m.RatePaise = rate
	m.UpdatedAt = time.Now()
	return toMaterialResponse(m), nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:        m.ID,
		Kind:      m.Kind,
		Code:      m.Code,
		Name:      m.Name,
		Purity:    m.Purity,
		Rate:      engine.PaiseToRupees(m.RatePaise),
		UpdatedAt: m.UpdatedAt,
	}
}
