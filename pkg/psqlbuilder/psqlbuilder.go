package psqlbuilder

import "github.com/Masterminds/squirrel"

// Builder squirrel builder, настроенный на PostgreSQL-плейсхолдеры ($1, $2, ...)
// Все репозитории сервиса строят запросы через этот пакет, чтобы не
// повторять PlaceholderFormat в каждом вызове
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает построение SELECT запроса
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает построение INSERT запроса
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update начинает построение UPDATE запроса
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete начинает построение DELETE запроса
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
