package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productWhere traduce el predicado del catálogo a una cláusula WHERE con parámetros posicionales.
// Devuelve cadena vacía si el predicado no restringe nada.
func productWhere(pred catalog.Predicate) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if pred.NameContains != nil {
		add(`name ILIKE '%%' || $%d || '%%'`, likeEscaper.Replace(*pred.NameContains))
	}
	if pred.Category != nil {
		add("category = $%d", *pred.Category)
	}
	if pred.Location != nil {
		add("location = $%d", *pred.Location)
	}
	if pred.Price.Min != nil {
		add("price >= $%d", *pred.Price.Min)
	}
	if pred.Price.Max != nil {
		add("price <= $%d", *pred.Price.Max)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
