package coin

import (
	"fmt"

	"github.com/npillmayer/coinage/core/match"
)

// Coin is a US coin. The set of coins is closed: Penny, Nickel, Dime and
// Quarter are the only implementations.
type Coin interface {
	match.Tagged
	fmt.Stringer
	isCoin()
}

// Penny is a one cent coin.
type Penny struct{}

// Nickel is a five cent coin.
type Nickel struct{}

// Dime is a ten cent coin.
type Dime struct{}

// Quarter is a 25 cent coin, minted for a state.
type Quarter struct {
	State State
}

// Tags is the closed domain of coins.
var Tags = match.Domain{"Penny", "Nickel", "Dime", "Quarter"}

func (Penny) Tag() string   { return "Penny" }
func (Nickel) Tag() string  { return "Nickel" }
func (Dime) Tag() string    { return "Dime" }
func (Quarter) Tag() string { return "Quarter" }

func (Penny) String() string     { return "Penny" }
func (Nickel) String() string    { return "Nickel" }
func (Dime) String() string      { return "Dime" }
func (q Quarter) String() string { return fmt.Sprintf("Quarter(%v)", q.State) }

func (Penny) isCoin()   {}
func (Nickel) isCoin()  {}
func (Dime) isCoin()    {}
func (Quarter) isCoin() {}

// All returns every distinct coin: the three plain coins, followed by a
// quarter for each state.
func All() []Coin {
	coins := []Coin{Penny{}, Nickel{}, Dime{}}
	for _, s := range States() {
		coins = append(coins, Quarter{State: s})
	}
	return coins
}

// --- Classification --------------------------------------------------------

var valueInCents = match.Must(match.New(Tags,
	match.Variant[Coin](func(Penny) int {
		tracer().Infof("Lucky penny!")
		return 1
	}),
	match.Variant[Coin](func(Nickel) int { return 5 }),
	match.Variant[Coin](func(Dime) int { return 10 }),
	match.Variant[Coin](func(q Quarter) int {
		tracer().Infof("This quarter was printed in the state of %v", q.State)
		return 25
	}),
))

// ValueInCents returns the denomination of c in cents.
// Pennies and quarters leave a trace message.
//
// c must not be nil.
func ValueInCents(c Coin) int {
	cents, err := valueInCents.Match(c)
	if err != nil {
		panic(err) // coins are sealed, only a nil coin gets here
	}
	return cents
}

// describe demonstrates arm ordering: "other" catches every coin which is
// neither a penny nor a nickel, leaving the wildcard unreachable.
var describe = match.Must(match.New(Tags,
	match.Variant[Coin](func(Penny) string { return "Penny!" }),
	match.Variant[Coin](func(Nickel) string { return "Nickel!" }),
	match.Bind("other", func(c Coin) string {
		return fmt.Sprintf("Not a penny or nickel! It's a %v", c)
	}),
	match.Wildcard[Coin](func() string { return "No idea what this is." }),
))

// Describe returns a message for c, selected by the first matching arm of
// [Penny, Nickel, other, _], and traces it.
func Describe(c Coin) string {
	msg, err := describe.Match(c)
	if err != nil {
		panic(err)
	}
	tracer().Infof("%s", msg)
	return msg
}

// DescribeArms returns the pattern names of the arms Describe uses.
func DescribeArms() []string {
	return describe.Arms()
}

// DescribeLint reports the arms of Describe which can never be selected.
func DescribeLint() []match.Finding {
	return describe.Lint()
}
