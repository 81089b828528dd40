// Package benchmarks provides performance benchmarks for partsql.
package benchmarks

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/partsql"
	"github.com/zoobzio/partsql/postgres"
)

func createBenchmarkInstance(b *testing.B) *partsql.PartQL {
	b.Helper()

	project := dbml.NewProject("bench")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	project.AddTable(users)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	project.AddTable(orders)

	instance, err := partsql.NewFromDBML(project)
	if err != nil {
		b.Fatalf("Failed to create instance: %v", err)
	}
	return instance
}

// BenchmarkSimpleSelect measures simple SELECT query rendering.
func BenchmarkSimpleSelect(b *testing.B) {
	instance := createBenchmarkInstance(b)
	table := instance.T("users")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := partsql.Select(table).Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithParts measures SELECT with an explicit select list.
func BenchmarkSelectWithParts(b *testing.B) {
	instance := createBenchmarkInstance(b)
	table := instance.T("users")
	parts := []partsql.StatementPart{
		instance.F("id"),
		instance.F("username"),
		instance.F("email"),
		partsql.Upper(instance.F("username")),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := partsql.Select(table).Parts(parts...).Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCaseChain measures rendering a collapsed else-if ladder.
func BenchmarkCaseChain(b *testing.B) {
	instance := createBenchmarkInstance(b)

	age := instance.F("age")
	part := partsql.Case(
		partsql.C(age, partsql.GE, instance.P("senior")), instance.F("id"),
		partsql.Case(
			partsql.C(age, partsql.GE, instance.P("adult")), instance.F("username"),
			partsql.Case(
				partsql.C(age, partsql.GE, instance.P("teen")), instance.F("email"),
				instance.F("id"))))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := postgres.New().RenderPart(part)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExistsSubquery measures rendering a correlated existence test.
func BenchmarkExistsSubquery(b *testing.B) {
	instance := createBenchmarkInstance(b)

	sub := partsql.Sub(partsql.Select(instance.T("orders", "o")).
		Where(instance.C(instance.F("total"), partsql.GT, instance.P("min_total"))))
	stmt := partsql.Select(instance.T("users", "u")).
		Parts(instance.F("id")).
		Where(partsql.Exists(sub))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := stmt.Render(postgres.New())
		if err != nil {
			b.Fatal(err)
		}
	}
}
