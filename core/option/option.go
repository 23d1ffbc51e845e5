package option

import (
	"errors"
	"strconv"

	"github.com/npillmayer/coinage/core"
	"github.com/npillmayer/coinage/core/match"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

func (mo MaybeOption) String() string {
	switch mo {
	case None:
		return "None"
	case Some:
		return "Some"
	case Error:
		return "Error"
	}
	return "MaybeOption(" + strconv.Itoa(int(mo)) + ")"
}

// Tag names of optional values.
const (
	TagNone = "None"
	TagSome = "Some"
)

// Tags is the closed domain of optional values.
var Tags = match.Domain{TagNone, TagSome}

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
// It may be used to create a new type of interface Type.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
//
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	tracer().Debugf("Match(Type=%T) for %T", of, o)
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		err = ErrCannotMatchValue
		matched := false
		for k, expr := range of {
			if o.Equals(k) {
				matched = true
				tracer().Debugf("matched expr=%T %v", expr, expr)
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if !matched {
			if expr, ok := of[Some]; ok {
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if err != nil {
			tracer().Errorf(err.Error())
			if expr, ok := of[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	tracer().Debugf("===> return %v (%T) with error=%v", value, value, err)
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	tracer().Debugf("Match(Type=%T) for %T", maybe, o)
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		if expr, ok := maybe[Some]; ok {
			value, err = valueOrExpr(expr, o, Some)
		} else {
			err = ErrCannotMatchValue
		}
		if err != nil {
			tracer().Errorf(err.Error())
			if expr, ok := maybe[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	tracer().Debugf("===> return %v (%T) with error=%v", value, value, err)
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	tracer().Debugf("value or expr %v(%v), t=%v", op, value, t)
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          99:          option.Fail(errors.New("99 is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// WrapResult wraps the result of a function call, which must return a (value, error)
// tuple.
//
// Attention: the wrapped call will be executed independently of the matching option.
// Therefore it must not have side effects and should execute quickly.
//
func WrapResult(x interface{}, err error) func(interface{}) (interface{}, error) {
	localX := x
	localErr := err
	return func(interface{}) (interface{}, error) {
		return localX, localErr
	}
}

// --- Int64T-----------------------------------------------------------------

// Int64T is an option type for int64. Every int64 value, including
// math.MaxInt64, is a valid present value; absence is kept apart from the value.
type Int64T struct {
	value int64
	set   bool
}

// SomeInt64 creates an optional int64 with an initial value of x.
func SomeInt64(x int64) Int64T {
	return Int64T{value: x, set: true}
}

// Int64 creates an optional int64 without an initial value.
func Int64() Int64T {
	return Int64T{}
}

func (o Int64T) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o Int64T) Equals(other interface{}) bool {
	if !o.set {
		return false
	}
	switch i := other.(type) {
	case int64:
		return o.value == i
	case int32:
		return o.value == int64(i)
	case int:
		return o.value == int64(i)
	case Int64T:
		return i.set && o.value == i.value
	}
	return false
}

// Get returns the value of o and true, or 0 and false if o is unset.
func (o Int64T) Get() (int64, bool) {
	return o.value, o.set
}

// Unwrap returns the value of o. It panics if o is unset; clients should
// prefer a match or Get.
func (o Int64T) Unwrap() int64 {
	if !o.set {
		panic(core.Error(core.EINVALID, "unwrap of unset optional int64"))
	}
	return o.value
}

// IsNone returns true if o is unset.
func (o Int64T) IsNone() bool {
	return !o.set
}

// Tag returns TagNone or TagSome.
func (o Int64T) Tag() string {
	if o.set {
		return TagSome
	}
	return TagNone
}

func (o Int64T) String() string {
	if !o.set {
		return "Int64.None"
	}
	return strconv.FormatInt(o.value, 10)
}

var _ Type = Int64T{}
var _ match.Tagged = Int64T{}

// --- Operations ------------------------------------------------------------

var plusOne = match.Must(match.New(Tags,
	match.Tag(TagNone, func(o Int64T) Int64T { return o }),
	match.Tag(TagSome, func(o Int64T) Int64T { return SomeInt64(o.value + 1) }),
))

// PlusOne returns None for None, and Some(i+1) for Some(i).
// Overflow wraps around, as with any int64 addition.
func PlusOne(o Int64T) Int64T {
	// Int64T has no tags outside of Tags, so matching cannot fail
	r, _ := plusOne.Match(o)
	return r
}
