// Package catalog traduce los parámetros opcionales de búsqueda en un único predicado sobre Product.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// SearchParams parámetros crudos de búsqueda. Cadena vacía = no enviado.
type SearchParams struct {
	Keyword  string
	Category string
	Location string
	MinPrice string
	MaxPrice string
}

// PriceRange rango de precio con cotas inclusivas; nil = sin cota.
type PriceRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// IsZero indica que el rango no restringe nada.
func (r PriceRange) IsZero() bool { return r.Min == nil && r.Max == nil }

// Contains verifica min <= price <= max para las cotas presentes.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	if r.Min != nil && price.LessThan(*r.Min) {
		return false
	}
	if r.Max != nil && price.GreaterThan(*r.Max) {
		return false
	}
	return true
}

// Predicate conjunción (AND) de las restricciones presentes. El valor cero acepta todo producto.
type Predicate struct {
	NameContains *string // subcadena de Name, sin distinguir mayúsculas
	Category     *string // igualdad exacta
	Location     *string // igualdad exacta
	Price        PriceRange
}

// BuildQuery construye el predicado. Solo falla si una cota de precio no es numérica.
func BuildQuery(params SearchParams) (Predicate, error) {
	var pred Predicate
	if params.Keyword != "" {
		kw := params.Keyword
		pred.NameContains = &kw
	}
	if params.Category != "" {
		c := params.Category
		pred.Category = &c
	}
	if params.Location != "" {
		l := params.Location
		pred.Location = &l
	}
	lo, err := parseBound("minPrice", params.MinPrice)
	if err != nil {
		return Predicate{}, err
	}
	hi, err := parseBound("maxPrice", params.MaxPrice)
	if err != nil {
		return Predicate{}, err
	}
	pred.Price = PriceRange{Min: lo, Max: hi}
	return pred, nil
}

func parseBound(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.InvalidInput("%s no es numérico: %q", field, raw)
	}
	return &d, nil
}

// Matches evalúa el predicado en memoria.
func (p Predicate) Matches(product *entity.Product) bool {
	if product == nil {
		return false
	}
	if p.NameContains != nil &&
		!strings.Contains(strings.ToLower(product.Name), strings.ToLower(*p.NameContains)) {
		return false
	}
	if p.Category != nil && product.Category != *p.Category {
		return false
	}
	if p.Location != nil && product.Location != *p.Location {
		return false
	}
	return p.Price.Contains(product.Price)
}

// Filter devuelve los productos que cumplen el predicado, en el mismo orden.
func (p Predicate) Filter(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, pr := range products {
		if p.Matches(pr) {
			out = append(out, pr)
		}
	}
	return out
}
