package validate

import (
	"log/slog"
	"strings"
)

// Validator evaluates a fixed sequence of validation steps against entities
// of type T, accumulating every violation into a single aggregated error
// instead of stopping at the first failure.
//
// A Validator is immutable once built and safe for unsynchronized concurrent
// use: every call to Validate works on per-call state only.
type Validator[T any] struct {
	// nilMessage is set iff the validator was built with NotNullable. It is
	// both the nil-entity rejection text and the message recorded for a nil
	// nested field.
	nilMessage string
	prefix     func(T) string
	steps      []Step[T]
	logger     *slog.Logger
}

// Step is a single validation step: either a predicate constraint or a
// delegation to a nested validator. Steps are created with Constraint, Field,
// or Nested and appended to a builder in declaration order.
type Step[T any] struct {
	kind      stepKind
	predicate func(T) bool
	message   func(T) string
	// delegate runs a nested validator against the extracted sub-entity. It
	// reports the nested aggregate message ("" when the nested chain passed)
	// and whether the sub-entity was absent.
	delegate func(T) (string, bool)
}

type stepKind uint8

const (
	stepConstraint stepKind = iota
	stepNested
)

// Validate runs every step in declaration order against entity and folds the
// collected messages into one *ValidationError, or returns nil when all steps
// pass. Failing steps never short-circuit the chain: a single call reports
// the complete set of violations.
//
// A nil entity is rejected immediately under a not-nullable policy and
// accepted as valid under a nullable one; the nil rejection is the one
// short-circuit in the engine.
func (v *Validator[T]) Validate(entity *T) error {
	if entity == nil {
		if v.nilMessage == "" {
			return nil
		}
		v.logFailure(1)
		return &ValidationError{Message: v.nilMessage}
	}

	messages := v.run(*entity)
	if len(messages) == 0 {
		return nil
	}
	v.logFailure(len(messages))
	return &ValidationError{Message: v.prefix(*entity) + strings.Join(messages, ", ")}
}

// run executes the full chain against a present entity, collecting one
// message per violation in step order.
func (v *Validator[T]) run(entity T) []string {
	var messages []string
	for _, s := range v.steps {
		switch s.kind {
		case stepConstraint:
			if !s.predicate(entity) {
				messages = append(messages, s.message(entity))
			}
		case stepNested:
			segment, absent := s.delegate(entity)
			switch {
			case absent:
				// A nil nested field reuses the parent's own nil-rejection
				// message; a nullable parent records nothing for it.
				if v.nilMessage != "" {
					messages = append(messages, v.nilMessage)
				}
			case segment != "":
				messages = append(messages, "("+segment+")")
			}
		}
	}
	return messages
}

// aggregate runs the chain against a present entity and renders the prefixed,
// comma-joined message, or "" when every step passed. Nested delegation calls
// this on the child validator after establishing presence, bypassing the
// child's own top-level nil check.
func (v *Validator[T]) aggregate(entity T) string {
	messages := v.run(entity)
	if len(messages) == 0 {
		return ""
	}
	return v.prefix(entity) + strings.Join(messages, ", ")
}

func (v *Validator[T]) logFailure(violations int) {
	if v.logger == nil {
		return
	}
	v.logger.Debug("validation failed", slog.Int("violations", violations))
}
