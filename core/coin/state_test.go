package coin

import (
	"testing"

	"github.com/npillmayer/coinage/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateNames(t *testing.T) {
	assert.Equal(t, "Alabama", Alabama.String())
	assert.Equal(t, "West Virginia", WestVirginia.String())
	assert.Equal(t, "State(?)", State(99).String())
	assert.False(t, State(-1).Valid())
	assert.Len(t, States(), 50)
	for _, s := range States() {
		assert.True(t, s.Valid())
	}
}

func TestParseState(t *testing.T) {
	for input, expected := range map[string]State{
		"Arizona":        Arizona,
		"arizona":        Arizona,
		"ARIZ":           Arizona,
		"new york":       NewYork,
		"New-York":       NewYork,
		"rhode_island":   RhodeIsland,
		"west":           WestVirginia,
		"Virginia":       Virginia,
		"  Wyoming   ":   Wyoming,
		"north carolina": NorthCarolina,
	} {
		s, err := ParseState(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, s, "input %q", input)
	}
}

func TestParseStateErrors(t *testing.T) {
	_, err := ParseState("new")
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Contains(t, core.UserMessage(err), "new_hampshire, new_jersey, new_mexico, new_york")
	_, err = ParseState("atlantis")
	assert.Equal(t, `unknown state "Atlantis"`, core.UserMessage(err))
	_, err = ParseState(" ")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestCompletion(t *testing.T) {
	assert.Equal(t, []string{"alabama", "alaska"}, StateNames("ala"))
	assert.Equal(t, []string{"south_carolina", "south_dakota"}, StateNames("South "))
	assert.Len(t, StateNames(""), 50)
	assert.Equal(t, []string{"dime"}, CoinNames("d"))
	assert.Empty(t, StateNames("xyz"))
}
