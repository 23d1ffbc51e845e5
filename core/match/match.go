package match

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/coinage/core"
)

// Tagged is implemented by values of a closed sum type. Tag names the variant
// a value belongs to.
type Tagged interface {
	Tag() string
}

// Domain lists the variant tags of a closed sum type.
type Domain []string

// Open is the domain of types without a closed set of variants, e.g. int.
// Matches over an open domain need a catch-all arm.
var Open Domain

// Unit is the result type of matches which are executed for their side
// effects only.
type Unit struct{}

type armKind int

const (
	variantArm armKind = iota
	valueArm
	guardArm
	bindArm
	wildcardArm
)

// Arm is a single pattern together with its handler.
type Arm[T, R any] struct {
	kind armKind
	name string
	tags []string // variants covered, for variant arms
	key  any      // constant compared against, for value arms
	test func(T) bool
	do   func(T) R
}

func (a Arm[T, R]) catchAll() bool {
	return a.kind == bindArm || a.kind == wildcardArm
}

// String returns the name of the arm's pattern.
func (a Arm[T, R]) String() string {
	return a.name
}

// Variant creates an arm matching values of concrete type V, which must be a
// variant of sum type T. The handler receives the value as V and therefore has
// access to the variant's payload.
//
// V must not be a pointer type, as its zero value is asked for its tag.
func Variant[T any, V Tagged, R any](do func(V) R) Arm[T, R] {
	var zero V
	tag := zero.Tag()
	return Arm[T, R]{
		kind: variantArm,
		name: tag,
		tags: []string{tag},
		test: func(x T) bool {
			_, ok := any(x).(V)
			return ok
		},
		do: func(x T) R {
			return do(any(x).(V))
		},
	}
}

// Tag creates an arm matching values whose tag equals tag.
func Tag[T Tagged, R any](tag string, do func(T) R) Arm[T, R] {
	return Arm[T, R]{
		kind: variantArm,
		name: tag,
		tags: []string{tag},
		test: func(x T) bool { return x.Tag() == tag },
		do:   do,
	}
}

// Value creates an arm matching values equal to v. The handler does not
// receive the value, as it is known in advance.
func Value[T comparable, R any](v T, do func() R) Arm[T, R] {
	return Arm[T, R]{
		kind: valueArm,
		name: fmt.Sprintf("%v", v),
		key:  v,
		test: func(x T) bool { return x == v },
		do:   func(T) R { return do() },
	}
}

// When creates a guarded arm. It is selected if guard returns true.
// Guarded arms do not contribute to exhaustiveness.
func When[T, R any](name string, guard func(T) bool, do func(T) R) Arm[T, R] {
	return Arm[T, R]{
		kind: guardArm,
		name: name,
		test: guard,
		do:   do,
	}
}

// Bind creates a named catch-all arm. It matches every value and hands it to
// the handler.
func Bind[T, R any](name string, do func(T) R) Arm[T, R] {
	return Arm[T, R]{
		kind: bindArm,
		name: name,
		test: func(T) bool { return true },
		do:   do,
	}
}

// Wildcard creates a catch-all arm which does not use the matched value.
func Wildcard[T, R any](do func() R) Arm[T, R] {
	return Arm[T, R]{
		kind: wildcardArm,
		name: "_",
		test: func(T) bool { return true },
		do:   func(T) R { return do() },
	}
}

// Nothing creates a catch-all arm which does nothing at all.
func Nothing[T any]() Arm[T, Unit] {
	return Wildcard[T](func() Unit { return Unit{} })
}

// --- Match expressions -----------------------------------------------------

// Expr is an ordered list of arms over a domain. Expressions are immutable
// once constructed and may be shared.
type Expr[T, R any] struct {
	domain Domain
	arms   []Arm[T, R]
}

// New creates a match expression from arms. Arms will be tried in the order
// given.
//
// New rejects expressions which are not exhaustive with an error of code
// core.ENOTEXHAUSTIVE. Unreachable arms are traced, but do not cause an error.
func New[T, R any](domain Domain, arms ...Arm[T, R]) (*Expr[T, R], error) {
	if len(arms) == 0 {
		return nil, core.Error(core.ENOTEXHAUSTIVE, "match expression has no arms")
	}
	e := &Expr[T, R]{
		domain: domain,
		arms:   append([]Arm[T, R](nil), arms...),
	}
	if err := e.checkExhaustive(); err != nil {
		tracer().Errorf("%s", core.UserMessage(err))
		return nil, err
	}
	for _, f := range e.Lint() {
		tracer().Infof("warning: %s", f)
	}
	return e, nil
}

// Must is a helper for package level match expressions. It panics if err is
// non-nil, with an error naming the cause, e.g. the missing variants.
func Must[T, R any](e *Expr[T, R], err error) *Expr[T, R] {
	if err != nil {
		panic(fmt.Errorf("%w: %s", err, core.UserMessage(err)))
	}
	return e
}

func (e *Expr[T, R]) checkExhaustive() error {
	for _, a := range e.arms {
		if a.catchAll() {
			return nil
		}
	}
	if e.domain == nil {
		return core.Error(core.ENOTEXHAUSTIVE,
			"match over open domain needs a catch-all arm")
	}
	missing := treeset.NewWithStringComparator()
	for _, tag := range e.domain {
		missing.Add(tag)
	}
	for _, a := range e.arms {
		if a.kind != variantArm {
			continue
		}
		for _, tag := range a.tags {
			missing.Remove(tag)
		}
	}
	if missing.Empty() {
		return nil
	}
	return core.Error(core.ENOTEXHAUSTIVE, "match is not exhaustive, missing %s",
		strings.Join(stringValues(missing), ", "))
}

// Match selects the first arm accepting x and returns the result of its
// handler. If no arm accepts x, which may only happen for values outside of
// the expression's domain, an error with code core.ENOMATCH is returned.
func (e *Expr[T, R]) Match(x T) (R, error) {
	for i, a := range e.arms {
		if a.test(x) {
			tracer().Debugf("arm %d (%s) matches %v", i, a.name, x)
			return a.do(x), nil
		}
	}
	var zero R
	return zero, core.Error(core.ENOMATCH, "no arm matches %v", x)
}

// Arms returns the pattern names of all arms, in order.
func (e *Expr[T, R]) Arms() []string {
	names := make([]string, len(e.arms))
	for i, a := range e.arms {
		names[i] = a.name
	}
	return names
}

// Domain returns the domain the expression has been checked against.
func (e *Expr[T, R]) Domain() Domain {
	return e.domain
}

func stringValues(set *treeset.Set) []string {
	values := set.Values()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.(string)
	}
	return s
}
