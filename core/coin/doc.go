/*
Package coin models US coins as a closed sum type and classifies them by
pattern matching.

Coin has exactly four variants: Penny, Nickel, Dime and Quarter. Quarters
carry the State they were minted for. All matches over coins are built with
package match against domain Tags, so a classification missing a variant is
rejected before it can ever run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package coin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coinage.coins'.
func tracer() tracing.Trace {
	return tracing.Select("coinage.coins")
}
