/*
Package dice dispatches on dice rolls.

A roll of 3 makes the player add a fancy hat, a roll of 7 makes the player
remove it. What happens for any other roll depends on the dispatcher's Policy: the
player may move by the rolled number of spaces, roll again, or nothing
happens at all.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dice

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coinage.dice'.
func tracer() tracing.Trace {
	return tracing.Select("coinage.dice")
}
