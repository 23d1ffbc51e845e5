package dice

import (
	"fmt"
	"strings"

	"github.com/npillmayer/coinage/core"
	"github.com/npillmayer/coinage/core/match"
)

// Rolls with a fixed meaning.
const (
	FancyHatRoll   = 3
	NoFancyHatRoll = 7
)

// Actions are the moves a player can make after a roll.
type Actions interface {
	AddFancyHat()
	RemoveFancyHat()
	MovePlayer(spaces int)
	Reroll()
}

// Policy selects what happens for rolls without a fixed meaning.
type Policy int

const (
	MoveOnOther   Policy = iota // move by the rolled value
	RerollOnOther               // roll again, ignoring the value
	IgnoreOther                 // do nothing
)

var policyNames = []string{"move", "reroll", "ignore"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy finds a policy by name ("move", "reroll" or "ignore").
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Policy(i), nil
		}
	}
	return 0, core.Error(core.EINVALID, "unknown policy %q, use one of %s",
		name, strings.Join(policyNames, ", "))
}

// Dispatcher calls a player action for every roll.
type Dispatcher struct {
	policy Policy
	expr   *match.Expr[int, match.Unit]
}

// NewDispatcher creates a dispatcher calling actions of a, and treating rolls
// without a fixed meaning according to policy p.
func NewDispatcher(a Actions, p Policy) (*Dispatcher, error) {
	if a == nil {
		return nil, core.Error(core.EINVALID, "dispatcher needs actions")
	}
	var other match.Arm[int, match.Unit]
	switch p {
	case MoveOnOther:
		other = match.Bind("other", func(roll int) match.Unit {
			a.MovePlayer(roll)
			return match.Unit{}
		})
	case RerollOnOther:
		other = match.Wildcard[int](func() match.Unit {
			a.Reroll()
			return match.Unit{}
		})
	case IgnoreOther:
		other = match.Nothing[int]()
	default:
		return nil, core.Error(core.EINVALID, "unknown policy %v", p)
	}
	expr, err := match.New(match.Open,
		match.Value(FancyHatRoll, func() match.Unit {
			a.AddFancyHat()
			return match.Unit{}
		}),
		match.Value(NoFancyHatRoll, func() match.Unit {
			a.RemoveFancyHat()
			return match.Unit{}
		}),
		other,
	)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{policy: p, expr: expr}, nil
}

// Policy returns the policy for rolls without a fixed meaning.
func (d *Dispatcher) Policy() Policy {
	return d.policy
}

// Dispatch calls the action for roll.
func (d *Dispatcher) Dispatch(roll int) error {
	tracer().Debugf("dispatching roll %d with policy %v", roll, d.policy)
	_, err := d.expr.Match(roll)
	return err
}
