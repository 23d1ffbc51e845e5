package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/coinage/core/coin"
	"github.com/npillmayer/coinage/core/option"
	"github.com/npillmayer/coinage/engine/dice"
)

// tour runs every match once, in a fixed order.
type tour struct {
	out     io.Writer
	section func(title string)
}

func (t *tour) run(roll int) {
	t.section("Coins")
	nickel := coin.Nickel{}
	fmt.Fprintf(t.out, "The value of the coin is: %d\n", coin.ValueInCents(nickel))
	// quarters know their state
	coin.ValueInCents(coin.Quarter{State: coin.Arizona})

	t.section("Optional values")
	five := option.SomeInt64(5)
	none := option.Int64()
	fmt.Fprintf(t.out, "plus_one(%s) = %s\n", render(five), render(option.PlusOne(five)))
	fmt.Fprintf(t.out, "plus_one(%s) = %s\n", render(none), render(option.PlusOne(none)))

	t.section("Arm order")
	coin.Describe(nickel)
	for _, f := range coin.DescribeLint() {
		fmt.Fprintf(t.out, "warning: %s\n", f)
	}

	t.section("Dice")
	for _, p := range []dice.Policy{dice.MoveOnOther, dice.RerollOnOther, dice.IgnoreOther} {
		player := dice.NewPlayer("Player")
		d, err := dice.NewDispatcher(player, p)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if err = d.Dispatch(roll); err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		fmt.Fprintf(t.out, "roll %d, %-6s: %v\n", roll, p, player)
	}
}

// render formats an optional value as Some(x) or None.
func render(o option.Int64T) string {
	s, err := o.Match(option.Maybe{
		option.None: "None",
		option.Some: func(x interface{}) (interface{}, error) {
			return fmt.Sprintf("Some(%v)", x), nil
		},
	})
	if err != nil {
		return "?"
	}
	return s.(string)
}
