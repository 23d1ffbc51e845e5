package coin

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/coinage/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State is a US state, as minted on the back of quarters.
type State int

// The 50 states, in alphabetical order.
const (
	Alabama State = iota
	Alaska
	Arizona
	Arkansas
	California
	Colorado
	Connecticut
	Delaware
	Florida
	Georgia
	Hawaii
	Idaho
	Illinois
	Indiana
	Iowa
	Kansas
	Kentucky
	Louisiana
	Maine
	Maryland
	Massachusetts
	Michigan
	Minnesota
	Mississippi
	Missouri
	Montana
	Nebraska
	Nevada
	NewHampshire
	NewJersey
	NewMexico
	NewYork
	NorthCarolina
	NorthDakota
	Ohio
	Oklahoma
	Oregon
	Pennsylvania
	RhodeIsland
	SouthCarolina
	SouthDakota
	Tennessee
	Texas
	Utah
	Vermont
	Virginia
	Washington
	WestVirginia
	Wisconsin
	Wyoming
	stateCount
)

var stateNames = [stateCount]string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
	"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "West Virginia", "Wisconsin", "Wyoming",
}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return "State(?)"
	}
	return stateNames[s]
}

// Valid returns true if s is one of the 50 states.
func (s State) Valid() bool {
	return s >= 0 && s < stateCount
}

// States returns all states in alphabetical order.
func States() []State {
	states := make([]State, stateCount)
	for i := range states {
		states[i] = State(i)
	}
	return states
}

// --- Name lookup -----------------------------------------------------------

// Key returns the lookup key for a state or coin name: case-folded, with
// blanks and dashes replaced by underscores. "New York", "new-york" and
// "NEW_YORK" all have key "new_york".
func Key(name string) string {
	k := cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, k)
}

// names is a prefix tree over lookup keys. It is set up once and read-only
// afterwards.
type names struct {
	kind string
	tree *trie.Trie
}

func newNames(kind string) *names {
	return &names{kind: kind, tree: trie.New()}
}

func (n *names) add(name string, meta interface{}) {
	n.tree.Add(Key(name), meta)
}

// resolve finds the entry for an exact key, or for a key of which name is an
// unambiguous prefix.
func (n *names) resolve(name string) (interface{}, error) {
	key := Key(name)
	if key == "" {
		return nil, core.Error(core.EINVALID, "missing %s name", n.kind)
	}
	if node, ok := n.tree.Find(key); ok {
		return node.Meta(), nil
	}
	candidates := n.tree.PrefixSearch(key)
	switch len(candidates) {
	case 0:
		return nil, core.Error(core.EINVALID, "unknown %s %q", n.kind, cases.Title(language.AmericanEnglish).String(name))
	case 1:
		node, _ := n.tree.Find(candidates[0])
		return node.Meta(), nil
	}
	sort.Strings(candidates)
	return nil, core.Error(core.EINVALID, "ambiguous %s %q, may be one of %s",
		n.kind, name, strings.Join(candidates, ", "))
}

func (n *names) complete(prefix string) []string {
	keys := n.tree.PrefixSearch(Key(prefix))
	sort.Strings(keys)
	return keys
}

var stateIndex = func() *names {
	n := newNames("state")
	for _, s := range States() {
		n.add(s.String(), s)
	}
	return n
}()

// ParseState finds a state by its name. Names are compared case-insensitively,
// and a unique prefix of a name is accepted as well ("ariz" is Arizona).
// Errors are core.EINVALID app errors.
func ParseState(name string) (State, error) {
	meta, err := stateIndex.resolve(name)
	if err != nil {
		return 0, err
	}
	return meta.(State), nil
}

// StateNames returns the sorted lookup keys of all states starting with prefix.
func StateNames(prefix string) []string {
	return stateIndex.complete(prefix)
}
