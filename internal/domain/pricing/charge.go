package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/domain"
)

// ChargeKind tipo de cargo de fabricación (making charge).
type ChargeKind string

const (
	ChargePercentage ChargeKind = "PERCENTAGE" // % sobre el costo de compra
	ChargeFixed      ChargeKind = "FIXED"      // monto fijo en rupias
	ChargePerGram    ChargeKind = "PER_GRAM"   // rupias por gramo de peso bruto
)

var hundred = decimal.NewFromInt(100)

// ChargePolicy política de cargo activa de una pieza. Exactamente una por pieza.
type ChargePolicy struct {
	Kind  ChargeKind
	Value decimal.Decimal
}

// ParseChargeKind interpreta el tipo de cargo recibido por API o leído de la BD.
func ParseChargeKind(s string) (ChargeKind, error) {
	k := ChargeKind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case ChargePercentage, ChargeFixed, ChargePerGram:
		return k, nil
	}
	return "", fmt.Errorf("tipo %q: %w", s, domain.ErrInvalidChargePolicy)
}

// Validate verifica el tipo y que el valor no sea negativo.
func (p ChargePolicy) Validate() error {
	if _, err := ParseChargeKind(string(p.Kind)); err != nil {
		return err
	}
	if p.Value.IsNegative() {
		return fmt.Errorf("valor de cargo %s: %w", p.Value.String(), domain.ErrNegativeUnitInput)
	}
	return nil
}

// MakingCharge calcula el cargo de fabricación según la política.
// Un tipo no reconocido es un error fatal: nunca se asume un valor por defecto.
func MakingCharge(policy ChargePolicy, buyingCost, grossWeight decimal.Decimal) (decimal.Decimal, error) {
	switch policy.Kind {
	case ChargePercentage:
		return buyingCost.Mul(policy.Value).Div(hundred), nil
	case ChargeFixed:
		return policy.Value, nil
	case ChargePerGram:
		return grossWeight.Mul(policy.Value), nil
	}
	return decimal.Zero, fmt.Errorf("tipo %q: %w", policy.Kind, domain.ErrInvalidChargePolicy)
}
