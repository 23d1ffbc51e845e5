package dice

import (
	"testing"

	"github.com/npillmayer/coinage/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type DiceTestEnviron struct {
	suite.Suite
	player *Player
}

// listen for 'go test' command --> run test methods
func TestDiceFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coinage.dice", "coinage.match")
	defer teardown()
	suite.Run(t, new(DiceTestEnviron))
}

// run before each test
func (env *DiceTestEnviron) SetupTest() {
	env.player = NewPlayer("Test")
}

// --- Tests -----------------------------------------------------------------

func (env *DiceTestEnviron) dispatcher(p Policy) *Dispatcher {
	d, err := NewDispatcher(env.player, p)
	env.Require().NoError(err)
	return d
}

func (env *DiceTestEnviron) TestFancyHat() {
	for _, p := range []Policy{MoveOnOther, RerollOnOther, IgnoreOther} {
		env.SetupTest()
		d := env.dispatcher(p)
		env.Require().NoError(d.Dispatch(3))
		env.Equal(1, env.player.Fired(AddFancyHat), "policy %v", p)
		env.Equal(1, env.player.Total(), "policy %v", p)
		env.True(env.player.Hat)
		env.Require().NoError(d.Dispatch(7))
		env.Equal(1, env.player.Fired(RemoveFancyHat), "policy %v", p)
		env.Equal(2, env.player.Total(), "policy %v", p)
		env.False(env.player.Hat)
	}
}

func (env *DiceTestEnviron) TestMoveUsesValue() {
	d := env.dispatcher(MoveOnOther)
	env.Require().NoError(d.Dispatch(9))
	env.Equal(1, env.player.Fired(MovePlayer))
	env.Equal(1, env.player.Total())
	env.Equal(9, env.player.Position)
}

func (env *DiceTestEnviron) TestRerollIgnoresValue() {
	d := env.dispatcher(RerollOnOther)
	env.Require().NoError(d.Dispatch(9))
	env.Equal(1, env.player.Fired(Reroll))
	env.Equal(1, env.player.Total())
	env.Equal(0, env.player.Position)
}

func (env *DiceTestEnviron) TestIgnoreDoesNothing() {
	d := env.dispatcher(IgnoreOther)
	env.Require().NoError(d.Dispatch(9))
	env.Equal(0, env.player.Total())
	env.Equal(IgnoreOther, d.Policy())
}

func (env *DiceTestEnviron) TestValueReceived() {
	rec := &recordingActions{}
	d, err := NewDispatcher(rec, MoveOnOther)
	env.Require().NoError(err)
	for _, roll := range []int{9, -2, 0, 12} {
		env.Require().NoError(d.Dispatch(roll))
	}
	env.Equal([]int{9, -2, 0, 12}, rec.moves)
}

func (env *DiceTestEnviron) TestBadDispatcher() {
	_, err := NewDispatcher(nil, MoveOnOther)
	env.Equal(core.EINVALID, core.Code(err))
	_, err = NewDispatcher(env.player, Policy(17))
	env.Equal(core.EINVALID, core.Code(err))
}

func (env *DiceTestEnviron) TestPolicyNames() {
	for _, p := range []Policy{MoveOnOther, RerollOnOther, IgnoreOther} {
		q, err := ParsePolicy(p.String())
		env.NoError(err)
		env.Equal(p, q)
	}
	q, err := ParsePolicy(" Reroll")
	env.NoError(err)
	env.Equal(RerollOnOther, q)
	_, err = ParsePolicy("dance")
	env.Equal(core.EINVALID, core.Code(err))
	env.Equal("Policy(9)", Policy(9).String())
}

func (env *DiceTestEnviron) TestRoll() {
	src := &FixedSource{Values: []int{2, 5, 11}}
	for _, expected := range []int{3, 6, 6, 3} {
		n, err := Roll(src, 6)
		env.NoError(err)
		env.Equal(expected, n)
	}
	negative := &FixedSource{Values: []int{-4, -6, -13}}
	for _, expected := range []int{3, 1, 6} {
		n, err := Roll(negative, 6)
		env.NoError(err)
		env.Equal(expected, n)
	}
	_, err := Roll(src, 0)
	env.Equal(core.EINVALID, core.Code(err))
	//
	random := NewSource(42)
	for i := 0; i < 100; i++ {
		n, err := Roll(random, 12)
		env.NoError(err)
		env.True(n >= 1 && n <= 12, "roll %d out of range", n)
	}
}

func (env *DiceTestEnviron) TestPlayerString() {
	env.player.AddFancyHat()
	env.player.MovePlayer(4)
	env.Equal("Test at 4, fancy hat", env.player.String())
	env.Equal("move_player", MovePlayer.String())
	var p Player // zero players work, too
	p.Reroll()
	env.Equal(1, p.Fired(Reroll))
}

// --- Helpers ---------------------------------------------------------------

type recordingActions struct {
	moves []int
}

func (r *recordingActions) AddFancyHat()          {}
func (r *recordingActions) RemoveFancyHat()       {}
func (r *recordingActions) MovePlayer(spaces int) { r.moves = append(r.moves, spaces) }
func (r *recordingActions) Reroll()               {}
