package validate

import "log/slog"

// Builder assembles an ordered constraint chain into an immutable Validator.
// Assembly is pure data collection: no predicate, accessor, or nested
// validator runs until the built validator is invoked.
//
// Builders are meant for sequential, single-goroutine construction followed
// by a one-time Build handoff. The built Validator is concurrency-safe; the
// builder is not.
type Builder[T any] struct {
	nilMessage string
	prefix     func(T) string
	steps      []Step[T]
	logger     *slog.Logger
}

// NotNullable starts a builder for a validator that rejects nil entities.
// The label names the entity in the rejection message, typically the type's
// name.
func NotNullable[T any](label string) *Builder[T] {
	return &Builder[T]{
		nilMessage: "Entity to validate cannot be null for class " + label,
	}
}

// Nullable starts a builder for a validator that accepts nil entities as
// valid. Use it for entities whose absence is not an error, such as optional
// nested fields.
func Nullable[T any]() *Builder[T] {
	return &Builder[T]{}
}

// AddConstraint appends a predicate step. When predicate returns false during
// evaluation, message is invoked with the entity to produce the violation
// text. Predicates and message producers are assumed total, side-effect-free,
// and non-nil; the builder does not check them.
func (b *Builder[T]) AddConstraint(predicate func(T) bool, message func(T) string) *Builder[T] {
	return b.Add(Constraint(predicate, message))
}

// AddRule appends a predicate step with a fixed violation message.
func (b *Builder[T]) AddRule(predicate func(T) bool, message string) *Builder[T] {
	return b.AddConstraint(predicate, func(T) string { return message })
}

// Add appends prebuilt steps, preserving the given order.
func (b *Builder[T]) Add(steps ...Step[T]) *Builder[T] {
	b.steps = append(b.steps, steps...)
	return b
}

// WithMessagePrefix sets a prefix producer applied once, in front of the
// joined messages of a failed evaluation. No prefix is emitted when
// validation passes.
func (b *Builder[T]) WithMessagePrefix(fn func(T) string) *Builder[T] {
	if fn != nil {
		b.prefix = fn
	}
	return b
}

// WithLogger sets a logger for debug-level evaluation tracing. A nil logger
// keeps evaluation silent.
func (b *Builder[T]) WithLogger(l *slog.Logger) *Builder[T] {
	b.logger = l
	return b
}

// Build freezes the accumulated chain into an immutable Validator. The
// validator owns a copy of the step sequence: mutating the builder afterwards
// does not affect validators already built from it.
func (b *Builder[T]) Build() *Validator[T] {
	prefix := b.prefix
	if prefix == nil {
		prefix = func(T) string { return "" }
	}
	steps := make([]Step[T], len(b.steps))
	copy(steps, b.steps)
	return &Validator[T]{
		nilMessage: b.nilMessage,
		prefix:     prefix,
		steps:      steps,
		logger:     b.logger,
	}
}

// Constraint builds a predicate step from a predicate and a message producer.
func Constraint[T any](predicate func(T) bool, message func(T) string) Step[T] {
	return Step[T]{
		kind:      stepConstraint,
		predicate: predicate,
		message:   message,
	}
}

// Field builds a predicate step from an accessor, a value check, and a fixed
// message, adapting the check helpers (NotEmpty, Min, Email, ...) to entity
// steps:
//
//	validate.Field(func(u User) string { return u.Email }, validate.Email, "email must be valid")
func Field[T, V any](get func(T) V, check func(V) bool, message string) Step[T] {
	return Step[T]{
		kind:      stepConstraint,
		predicate: func(entity T) bool { return check(get(entity)) },
		message:   func(T) string { return message },
	}
}

// Nested builds a delegation step that validates the sub-entity returned by
// accessor with a fully built nested validator. A nil sub-entity is recorded
// with the parent's nil-rejection message when the parent is not-nullable,
// and silently accepted otherwise. A present sub-entity is validated by
// running the nested chain directly; its failures fold into one
// parenthesized message occupying a single slot in the parent's list.
//
// The nested validator must be fully built before the step is created, and
// validators must not nest themselves directly or transitively.
func Nested[T, U any](accessor func(T) *U, nested *Validator[U]) Step[T] {
	return Step[T]{
		kind: stepNested,
		delegate: func(entity T) (string, bool) {
			child := accessor(entity)
			if child == nil {
				return "", true
			}
			return nested.aggregate(*child), false
		},
	}
}

// AddNested appends a delegation step for accessor and nested. It is a
// package-level function because a method cannot introduce the nested
// entity's type parameter.
func AddNested[T, U any](b *Builder[T], accessor func(T) *U, nested *Validator[U]) *Builder[T] {
	return b.Add(Nested(accessor, nested))
}
