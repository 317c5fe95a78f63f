package entity

import "time"

// Tipos de material del catálogo.
const (
	MaterialKindMetal    = "METAL"
	MaterialKindGemstone = "GEMSTONE"
)

// Material entrada del catálogo de metales y piedras con su tarifa de compra vigente.
// RatePaise es por gramo y en paise (unidad de almacenamiento).
type Material struct {
	ID        string
	CompanyID string
	Kind      string // METAL | GEMSTONE
	Code      string // código único por empresa (ej: AU22K, RUBY)
	Name      string
	Purity    string // 22K, 18K, 925...; vacío para piedras
	RatePaise int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
