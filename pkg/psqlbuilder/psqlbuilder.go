package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder is a statement builder pinned to PostgreSQL dollar placeholders
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT statement with $N placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
