/*
Package match implements ordered pattern matching over values of closed
sum types and over open domains like integers.

A match expression is a list of arms, evaluated top to bottom. The first arm
whose pattern accepts a value wins and its handler produces the result:

    value := match.Must(match.New(coin.Tags,
        match.Variant[coin.Coin](func(coin.Penny) int { return 1 }),
        match.Variant[coin.Coin](func(coin.Nickel) int { return 5 }),
        match.Bind("other", func(c coin.Coin) int { return 0 }),
    ))
    cents, err := value.Match(coin.Nickel{})

Exhaustiveness is checked when an expression is constructed, not when it
runs. For a closed Domain every variant tag must be covered by a variant arm,
or a catch-all arm (Bind, Wildcard or Nothing) must be present. For an Open
domain a catch-all is always required. Guarded arms (When) and value arms
(Value) never count towards coverage.

Arms which can never be selected are not an error. Expr.Lint reports them,
and New traces them as warnings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coinage.match'.
func tracer() tracing.Trace {
	return tracing.Select("coinage.match")
}
