package coin

import (
	"strings"

	"github.com/npillmayer/coinage/core"
)

var coinIndex = func() *names {
	n := newNames("coin")
	n.add("penny", Penny{})
	n.add("nickel", Nickel{})
	n.add("dime", Dime{})
	n.add("quarter", Quarter{})
	return n
}()

// ParseCoin reads a coin from its textual form
//
//     penny | nickel | dime | quarter <state>
//
// Coin names and state names may be abbreviated to a unique prefix.
// Errors are core.EINVALID app errors.
func ParseCoin(s string) (Coin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, core.Error(core.EINVALID, "missing coin name")
	}
	meta, err := coinIndex.resolve(fields[0])
	if err != nil {
		return nil, err
	}
	c := meta.(Coin)
	if _, ok := c.(Quarter); ok {
		if len(fields) == 1 {
			return nil, core.Error(core.EINVALID, "a quarter needs a state")
		}
		state, err := ParseState(strings.Join(fields[1:], " "))
		if err != nil {
			return nil, err
		}
		return Quarter{State: state}, nil
	}
	if len(fields) > 1 {
		return nil, core.Error(core.EINVALID, "a %v has no state", c)
	}
	return c, nil
}

// CoinNames returns the sorted names of coins starting with prefix.
func CoinNames(prefix string) []string {
	return coinIndex.complete(prefix)
}
