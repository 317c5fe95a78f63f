package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoredLine línea de composición persistida en unidades de almacenamiento.
type StoredLine struct {
	RefID     string `json:"ref_id"`     // ID del material o piedra en el catálogo
	WeightMg  int64  `json:"weight_mg"`  // miligramos
	RatePaise int64  `json:"rate_paise"` // paise por gramo
}

// Composition metales y piedras de una pieza (o de una variante).
type Composition struct {
	Materials []StoredLine `json:"materials"`
	Gemstones []StoredLine `json:"gemstones"`
}

// ItemVariant variante de una pieza (talla de anillo, largo de cadena...).
// Se cotiza con la merma y el cargo de la pieza padre y su propia composición.
type ItemVariant struct {
	Code        string      `json:"code"`
	Label       string      `json:"label"`
	Composition Composition `json:"composition"`
}

// JewelryItem pieza del inventario con su composición y política de precio.
// Pesos en miligramos y montos en paise; los campos derivados (peso bruto, costo y precio)
// los escribe el motor de precios en cada guardado.
type JewelryItem struct {
	ID                 string
	CompanyID          string
	SKU                string // código único por empresa
	Name               string
	Description        string
	Composition        Composition
	Variants           []ItemVariant
	WastagePercent     decimal.Decimal
	ChargeKind         string          // PERCENTAGE | FIXED | PER_GRAM
	ChargeValue        decimal.Decimal // % o rupias según ChargeKind
	GrossWeightMg      int64
	BuyingCostPaise    int64
	BuyingCostManual   bool // el costo de compra fue fijado por el usuario
	SellingPricePaise  int64
	Quantity           int64 // piezas en stock
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
