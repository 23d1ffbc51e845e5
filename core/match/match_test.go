package match

import (
	"testing"

	"github.com/npillmayer/coinage/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test types ------------------------------------------------------------

type shape interface {
	Tagged
	area() int
}

type square struct{ side int }
type rect struct{ w, h int }
type dot struct{}
type unknown struct{}

func (square) Tag() string  { return "Square" }
func (rect) Tag() string    { return "Rect" }
func (dot) Tag() string     { return "Dot" }
func (unknown) Tag() string { return "Unknown" }

func (s square) area() int { return s.side * s.side }
func (r rect) area() int   { return r.w * r.h }
func (dot) area() int      { return 0 }
func (unknown) area() int  { return -1 }

var shapes = Domain{"Square", "Rect", "Dot"}

// --- Test Suite Preparation ------------------------------------------------

type MatchTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestMatchFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coinage.match")
	defer teardown()
	suite.Run(t, new(MatchTestEnviron))
}

// --- Tests -----------------------------------------------------------------

func (env *MatchTestEnviron) TestVariantPayload() {
	sides, err := New(shapes,
		Variant[shape](func(s square) int { return s.side }),
		Variant[shape](func(r rect) int { return r.w + r.h }),
		Variant[shape](func(dot) int { return 0 }),
	)
	env.Require().NoError(err)
	n, err := sides.Match(rect{2, 3})
	env.NoError(err)
	env.Equal(5, n)
	n, err = sides.Match(square{4})
	env.NoError(err)
	env.Equal(4, n)
	env.Empty(sides.Lint())
}

func (env *MatchTestEnviron) TestMissingVariantIsRejected() {
	_, err := New(shapes,
		Variant[shape](func(s square) int { return s.side }),
		Variant[shape](func(dot) int { return 0 }),
	)
	env.Require().Error(err)
	env.Equal(core.ENOTEXHAUSTIVE, core.Code(err))
	env.Contains(core.UserMessage(err), "Rect")
}

func (env *MatchTestEnviron) TestMissingVariantsAreSorted() {
	_, err := New(shapes,
		Variant[shape](func(dot) int { return 0 }),
	)
	env.Require().Error(err)
	env.Equal("match is not exhaustive, missing Rect, Square", core.UserMessage(err))
}

func (env *MatchTestEnviron) TestGuardsDoNotCover() {
	_, err := New(shapes,
		When("big", func(s shape) bool { return s.area() > 10 }, func(shape) int { return 1 }),
		Variant[shape](func(rect) int { return 2 }),
		Variant[shape](func(dot) int { return 3 }),
	)
	env.Equal(core.ENOTEXHAUSTIVE, core.Code(err))
}

func (env *MatchTestEnviron) TestEmptyExpressionIsRejected() {
	_, err := New[int, int](Open)
	env.Equal(core.ENOTEXHAUSTIVE, core.Code(err))
}

func (env *MatchTestEnviron) TestOpenDomainNeedsCatchAll() {
	_, err := New(Open,
		Value(3, func() string { return "three" }),
		Value(7, func() string { return "seven" }),
	)
	env.Require().Error(err)
	env.Equal(core.ENOTEXHAUSTIVE, core.Code(err))
	//
	e, err := New(Open,
		Value(3, func() string { return "three" }),
		Value(7, func() string { return "seven" }),
		Wildcard[int](func() string { return "other" }),
	)
	env.Require().NoError(err)
	s, _ := e.Match(7)
	env.Equal("seven", s)
	s, _ = e.Match(9)
	env.Equal("other", s)
}

func (env *MatchTestEnviron) TestBindReceivesValue() {
	e := Must(New(Open,
		Value(3, func() int { return -3 }),
		Bind("other", func(x int) int { return x * 10 }),
	))
	n, err := e.Match(9)
	env.NoError(err)
	env.Equal(90, n)
}

func (env *MatchTestEnviron) TestFirstMatchWins() {
	e := Must(New(shapes,
		When("small", func(s shape) bool { return s.area() < 5 }, func(shape) string { return "small" }),
		Variant[shape](func(square) string { return "square" }),
		Bind("other", func(s shape) string { return "other " + s.Tag() }),
	))
	s, _ := e.Match(square{1})
	env.Equal("small", s)
	s, _ = e.Match(square{3})
	env.Equal("square", s)
	s, _ = e.Match(rect{3, 3})
	env.Equal("other Rect", s)
	env.Equal([]string{"small", "Square", "other"}, e.Arms())
}

func (env *MatchTestEnviron) TestTagArms() {
	e := Must(New(shapes,
		Tag("Dot", func(shape) int { return 0 }),
		Tag("Square", func(s shape) int { return s.area() }),
		Tag("Rect", func(s shape) int { return s.area() }),
	))
	n, err := e.Match(rect{2, 5})
	env.NoError(err)
	env.Equal(10, n)
}

func (env *MatchTestEnviron) TestForeignVariantDoesNotMatch() {
	e := Must(New(shapes,
		Variant[shape](func(square) int { return 1 }),
		Variant[shape](func(rect) int { return 2 }),
		Variant[shape](func(dot) int { return 3 }),
	))
	_, err := e.Match(unknown{})
	env.Equal(core.ENOMATCH, core.Code(err))
}

func (env *MatchTestEnviron) TestNothing() {
	fired := 0
	e := Must(New(Open,
		Value(3, func() Unit { fired++; return Unit{} }),
		Nothing[int](),
	))
	_, err := e.Match(9)
	env.NoError(err)
	env.Equal(0, fired)
	_, _ = e.Match(3)
	env.Equal(1, fired)
}

func (env *MatchTestEnviron) TestLintWildcardAfterBind() {
	e := Must(New(shapes,
		Variant[shape](func(square) string { return "square" }),
		Bind("other", func(shape) string { return "other" }),
		Wildcard[shape](func() string { return "?" }),
	))
	findings := e.Lint()
	env.Require().Len(findings, 1)
	env.Equal(2, findings[0].Arm)
	env.Equal("_", findings[0].Name)
	env.Contains(findings[0].String(), "arm 1 (other) catches every value")
}

func (env *MatchTestEnviron) TestLintDuplicates() {
	e := Must(New(Open,
		Value(3, func() int { return 1 }),
		Value(3, func() int { return 2 }),
		Wildcard[int](func() int { return 0 }),
	))
	findings := e.Lint()
	env.Require().Len(findings, 1)
	env.Equal(1, findings[0].Arm)
	//
	s := Must(New(shapes,
		Variant[shape](func(square) int { return 1 }),
		Variant[shape](func(square) int { return 2 }),
		Variant[shape](func(rect) int { return 3 }),
		Variant[shape](func(dot) int { return 4 }),
		Wildcard[shape](func() int { return 0 }),
	))
	findings = s.Lint()
	env.Require().Len(findings, 2)
	env.Equal(1, findings[0].Arm)
	env.Equal(4, findings[1].Arm)
	env.Equal("all variants are handled by earlier arms", findings[1].Reason)
}

func (env *MatchTestEnviron) TestLintForeignVariant() {
	e := Must(New(shapes,
		Variant[shape](func(unknown) int { return 0 }),
		Bind("other", func(shape) int { return 1 }),
	))
	findings := e.Lint()
	env.Require().Len(findings, 1)
	env.Equal("variant is not part of the domain", findings[0].Reason)
}

func (env *MatchTestEnviron) TestMustPanics() {
	env.PanicsWithError("[124] non-exhaustive match: match over open domain needs a catch-all arm", func() {
		Must(New(Open, Value(1, func() int { return 1 })))
	})
	env.PanicsWithError("[124] non-exhaustive match: match is not exhaustive, missing Rect, Square", func() {
		Must(New(shapes, Variant[shape](func(dot) int { return 0 })))
	})
}
