package dice

import "fmt"

// Action identifies one of the player actions.
type Action int

const (
	AddFancyHat Action = iota
	RemoveFancyHat
	MovePlayer
	Reroll
)

func (a Action) String() string {
	switch a {
	case AddFancyHat:
		return "add_fancy_hat"
	case RemoveFancyHat:
		return "remove_fancy_hat"
	case MovePlayer:
		return "move_player"
	case Reroll:
		return "reroll"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Player is a board game player. Player implements Actions and keeps count
// of the actions fired.
type Player struct {
	Name     string
	Hat      bool // wears a fancy hat
	Position int
	fired    map[Action]int
}

// NewPlayer creates a player at position 0, without a hat.
func NewPlayer(name string) *Player {
	return &Player{Name: name, fired: make(map[Action]int)}
}

func (p *Player) AddFancyHat() {
	p.fire(AddFancyHat)
	p.Hat = true
}

func (p *Player) RemoveFancyHat() {
	p.fire(RemoveFancyHat)
	p.Hat = false
}

func (p *Player) MovePlayer(spaces int) {
	p.fire(MovePlayer)
	p.Position += spaces
	tracer().P("player", p.Name).Debugf("moved %d spaces to %d", spaces, p.Position)
}

func (p *Player) Reroll() {
	p.fire(Reroll)
}

// Fired returns how often action a has been fired.
func (p *Player) Fired(a Action) int {
	return p.fired[a]
}

// Total returns the number of actions fired.
func (p *Player) Total() int {
	n := 0
	for _, count := range p.fired {
		n += count
	}
	return n
}

func (p *Player) fire(a Action) {
	if p.fired == nil {
		p.fired = make(map[Action]int)
	}
	p.fired[a]++
	tracer().P("player", p.Name).Infof("%v", a)
}

func (p *Player) String() string {
	hat := "no hat"
	if p.Hat {
		hat = "fancy hat"
	}
	return fmt.Sprintf("%s at %d, %s", p.Name, p.Position, hat)
}

var _ Actions = &Player{}
