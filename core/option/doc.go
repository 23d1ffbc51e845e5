/*
Package option implements optional values, which are either absent or carry a
value. Optional values are matched, never dereferenced, so there is no way to
use a missing value by accident.

Options may be matched in two ways. Map-style matches use labels None, Some
and Error:

    y, err := x.Match(option.Maybe{
        option.None: "no value",
        option.Some: stringify,
    })

Typed matches use package match with the option's tag domain, see PlusOne.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coinage.option'.
func tracer() tracing.Trace {
	return tracing.Select("coinage.option")
}
