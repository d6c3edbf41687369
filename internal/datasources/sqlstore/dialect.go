package sqlstore

import (
	"slices"
	"strings"

	"github.com/huandu/go-sqlbuilder"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	Flavor sqlbuilder.Flavor

	// IntegerType is the CAST target used to order text values numerically.
	IntegerType string
}

var MySQL = Dialect{
	Flavor:      sqlbuilder.MySQL,
	IntegerType: "SIGNED",
}

var SQLite = Dialect{
	Flavor:      sqlbuilder.SQLite,
	IntegerType: "INTEGER",
}

func (d Dialect) numericCast(col string) string {
	return "CAST(" + col + " AS " + d.IntegerType + ")"
}

// upsertClause returns the clause appended to an INSERT so that a row with the
// same key columns is overwritten by the inserted values.
func (d Dialect) upsertClause(keys, cols []string) string {
	var updates []string
	for _, col := range cols {
		if !slices.Contains(keys, col) {
			updates = append(updates, col)
		}
	}

	if d.Flavor == sqlbuilder.MySQL {
		if len(updates) == 0 {
			return "ON DUPLICATE KEY UPDATE " + keys[0] + " = " + keys[0]
		}
		sets := make([]string, 0, len(updates))
		for _, col := range updates {
			sets = append(sets, col+" = VALUES("+col+")")
		}
		return "ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
	}

	conflict := "ON CONFLICT (" + strings.Join(keys, ", ") + ")"
	if len(updates) == 0 {
		return conflict + " DO NOTHING"
	}
	sets := make([]string, 0, len(updates))
	for _, col := range updates {
		sets = append(sets, col+" = excluded."+col)
	}
	return conflict + " DO UPDATE SET " + strings.Join(sets, ", ")
}
