// Package query holds the pieces every GORM repository shares: translating
// ports.Criteria into SQL and mapping driver errors into the errs taxonomy.
package query

import (
	"fmt"
	"strings"

	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"gorm.io/gorm"
)

// Columns maps the field names accepted in criteria to table columns.
// Only listed fields can be filtered on, so user input never reaches SQL as an identifier.
type Columns map[string]string

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Apply narrows db with one case-insensitive substring condition per filter,
// AND-combined, and orders the result by id.
func Apply(db *gorm.DB, criteria ports.Criteria, columns Columns) (*gorm.DB, error) {
	for _, f := range criteria.Filters() {
		column, ok := columns[strings.ToLower(f.Field)]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("filter field", fmt.Errorf("%q cannot be filtered on", f.Field))
		}
		db = db.Where(
			fmt.Sprintf(`LOWER(CAST(%s AS TEXT)) LIKE ? ESCAPE '\'`, column),
			"%"+likeEscaper.Replace(strings.ToLower(f.Value))+"%",
		)
	}
	return db.Order("id"), nil
}
