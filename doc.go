// Package validate provides a composable, type-safe validation engine built
// around an ordered chain of predicate constraints and nested sub-validators.
//
// A Validator is assembled once from a Builder and then reused: each call to
// Validate runs every step of the chain in declaration order, never stopping
// at the first failure, and folds every violation into one aggregated error.
// The caller sees the complete picture in a single pass instead of iterating
// constraint-by-constraint.
//
// # Architecture
//
// Core building blocks:
//   - Builder[T]         – ordered, append-only chain assembly; nothing runs at build time
//   - Step[T]            – closed two-kind step: predicate constraint or nested delegation
//   - Validator[T]       – immutable evaluation engine, safe for concurrent use
//   - ValidationError    – single aggregated message implementing the error interface
//
// Nullability is fixed at construction: NotNullable validators reject a nil
// entity immediately with a labeled message, the one short-circuit in the
// engine; Nullable validators accept nil as valid. The same labeled message
// doubles as the report for nil nested fields under a not-nullable parent.
//
// The check files (string_checks.go, format_checks.go, uuid_checks.go, and
// so on) group families of plain value predicates and predicate factories
// that plug into the chain through Field. They hold no state, so the package
// is completely stateless and goroutine-safe.
//
// # Usage
//
//	addressValidator := validate.NotNullable[Address]("Address").
//		AddRule(func(a Address) bool { return validate.NotEmpty(a.Street) },
//			"Address street cannot be null or empty").
//		AddRule(func(a Address) bool { return validate.NotEmpty(a.City) },
//			"Address city cannot be null or empty").
//		Build()
//
//	b := validate.NotNullable[Person]("Person").
//		AddRule(func(p Person) bool { return p.Age >= 18 },
//			"Person must be at least 18 years old").
//		Add(validate.Field(func(p Person) string { return p.Name },
//			validate.NotEmpty, "Person name cannot be null or empty"))
//	validate.AddNested(b, func(p Person) *Address { return p.Address }, addressValidator)
//	personValidator := b.Build()
//
//	if err := personValidator.Validate(&person); err != nil {
//		// err.Error() lists every violation, comma-joined, in declaration
//		// order; nested failures appear as one parenthesized segment.
//	}
//
// # Error Handling
//
// Validate returns nil on success and a *ValidationError otherwise. Use
// IsValidationError or ExtractValidationError with wrapped errors. The
// aggregated message distinguishes four situations by content, not by type:
// a rejected nil entity, individual constraint violations, a parenthesized
// nested failure, and a nil nested field reported with the parent's
// nil-rejection text.
//
// Predicates, message producers, and accessors are assumed total and
// non-panicking; the engine adds no recovery around them.
//
// # Performance Considerations
//
// Evaluation is synchronous, allocation-light, and free of I/O; cost is
// linear in the number of steps plus the nesting depth configured at build
// time. Parameterized checks (MinLen, Between, Matches, ...) bind their
// parameters once when the chain is built, so per-evaluation work is a bare
// predicate call.
//
// # Examples
//
// See the companion *_test.go files for runnable examples covering the
// builder, evaluation semantics, and each check family.
package validate
