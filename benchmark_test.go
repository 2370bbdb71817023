package validate_test

import (
	"testing"

	"github.com/dmitrymomot/validate"
)

func newPersonValidator() *validate.Validator[person] {
	b := validate.NotNullable[person]("Person").
		AddRule(func(p person) bool { return p.Age >= 18 }, "too young").
		Add(
			validate.Field(func(p person) string { return p.Name }, validate.NotEmpty, "name missing"),
			validate.Field(func(p person) string { return p.Name }, validate.MaxLen(64), "name too long"),
			validate.Field(func(p person) int { return p.Age }, validate.Max(130), "age implausible"),
		)
	validate.AddNested(b, func(p person) *address { return p.Address }, newAddressValidator())
	return b.Build()
}

func BenchmarkValidator_Success(b *testing.B) {
	v := newPersonValidator()
	entity := person{
		Name:    "John",
		Age:     30,
		Address: &address{Street: "1 Main St", City: "Springfield"},
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Validate(&entity)
	}
}

func BenchmarkValidator_AllFailing(b *testing.B) {
	v := newPersonValidator()
	entity := person{
		Name:    "",
		Age:     10,
		Address: &address{Street: "", City: ""},
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Validate(&entity)
	}
}

func BenchmarkValidator_NilEntity(b *testing.B) {
	v := newPersonValidator()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Validate(nil)
	}
}

func BenchmarkValidator_WithPrefix(b *testing.B) {
	v := validate.NotNullable[person]("Person").
		WithMessagePrefix(func(p person) string { return "validation failed for " + p.Name + ": " }).
		AddRule(func(p person) bool { return p.Age >= 18 }, "too young").
		Build()
	entity := person{Name: "Alice", Age: 10}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Validate(&entity)
	}
}

func BenchmarkValidator_ConcurrentValidate(b *testing.B) {
	v := newPersonValidator()
	valid := person{
		Name:    "John",
		Age:     30,
		Address: &address{Street: "1 Main St", City: "Springfield"},
	}
	invalid := person{Name: "", Age: 10}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = v.Validate(&valid)
			_ = v.Validate(&invalid)
		}
	})
}

func BenchmarkBuilder_Construction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = validate.NotNullable[person]("Person").
			AddRule(func(p person) bool { return p.Age >= 18 }, "too young").
			Add(validate.Field(func(p person) string { return p.Name }, validate.NotEmpty, "name missing")).
			Build()
	}
}
