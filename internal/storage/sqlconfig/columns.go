package sqlconfig

import (
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
)

func column(name string) dialect.Expression {
	return psql.Quote(name)
}

func columnNames(names ...string) []any {
	out := make([]any, len(names))
	for i, name := range names {
		out[i] = psql.Quote(name)
	}
	return out
}
