package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/coinage/core"
	"github.com/npillmayer/coinage/core/coin"
	"github.com/npillmayer/coinage/core/match"
	"github.com/npillmayer/coinage/core/option"
	"github.com/npillmayer/coinage/engine/dice"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	out        io.Writer
	src        dice.Source
	player     *dice.Player
	dispatcher *dice.Dispatcher
}

var errQuit = errors.New("quit")

func newIntp(src dice.Source) (*Intp, error) {
	repl, err := readline.NewEx(&readline.Config{
		Prompt:          "coins > ",
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, core.ErrorWithCode(err, core.EINTERNAL)
	}
	intp, err := newSession(repl.Stdout(), src)
	if err != nil {
		return nil, err
	}
	intp.repl = repl
	return intp, nil
}

// newSession creates an interpreter without a terminal.
func newSession(out io.Writer, src dice.Source) (*Intp, error) {
	intp := &Intp{out: out, src: src, player: dice.NewPlayer("Player")}
	d, err := dice.NewDispatcher(intp.player, dice.MoveOnOther)
	if err != nil {
		return nil, err
	}
	intp.dispatcher = d
	return intp, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		err = intp.execute(line)
		if errors.Is(err, errQuit) {
			break
		} else if err != nil {
			tracer().Debugf(err.Error())
			pterm.Error.Println(core.UserMessage(err))
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute interprets a single input line.
func (intp *Intp) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, err := commands.Match(strings.ToLower(fields[0]))
	if err != nil {
		return err
	}
	return cmd(intp, fields[1:])
}

// --- Commands --------------------------------------------------------------

type command func(intp *Intp, args []string) error

var commands = match.Must(match.New(match.Open,
	match.Value("coin", func() command { return (*Intp).coin }),
	match.Value("plus", func() command { return (*Intp).plus }),
	match.Value("roll", func() command { return (*Intp).roll }),
	match.Value("policy", func() command { return (*Intp).policy }),
	match.Value("lint", func() command { return (*Intp).lint }),
	match.Value("help", func() command { return (*Intp).help }),
	match.Value("quit", func() command { return quit }),
	match.Value("exit", func() command { return quit }),
	match.Bind("other", func(name string) command {
		return func(*Intp, []string) error {
			return core.Error(core.EINVALID, "unknown command %q, try 'help'", name)
		}
	}),
))

func quit(*Intp, []string) error {
	return errQuit
}

func (intp *Intp) coin(args []string) error {
	c, err := coin.ParseCoin(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(intp.out, "%v is worth %d cents\n", c, coin.ValueInCents(c))
	fmt.Fprintln(intp.out, coin.Describe(c))
	return nil
}

func (intp *Intp) plus(args []string) error {
	if len(args) != 1 {
		return core.Error(core.EINVALID, "usage: plus <number|none>")
	}
	x := option.Int64()
	if !strings.EqualFold(args[0], "none") {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "not a number: %q", args[0])
		}
		x = option.SomeInt64(n)
	}
	note, err := x.Match(option.Of{
		option.None:         "",
		int64(math.MaxInt64): " (wrapped around)",
		option.Some:         "",
	})
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot match %v", x)
	}
	fmt.Fprintf(intp.out, "plus_one(%s) = %s%s\n", render(x), render(option.PlusOne(x)), note)
	return nil
}

func (intp *Intp) roll(args []string) error {
	var n int
	var err error
	switch len(args) {
	case 0:
		if n, err = dice.Roll(intp.src, 12); err != nil {
			return err
		}
	case 1:
		if n, err = strconv.Atoi(args[0]); err != nil {
			return core.WrapError(err, core.EINVALID, "not a dice roll: %q", args[0])
		}
	default:
		return core.Error(core.EINVALID, "usage: roll [number]")
	}
	if err = intp.dispatcher.Dispatch(n); err != nil {
		return err
	}
	fmt.Fprintf(intp.out, "rolled %d: %v\n", n, intp.player)
	return nil
}

func (intp *Intp) policy(args []string) error {
	if len(args) != 1 {
		return core.Error(core.EINVALID, "usage: policy move|reroll|ignore")
	}
	p, err := dice.ParsePolicy(args[0])
	if err != nil {
		return err
	}
	d, err := dice.NewDispatcher(intp.player, p)
	if err != nil {
		return err
	}
	intp.dispatcher = d
	fmt.Fprintf(intp.out, "other rolls: %v\n", p)
	return nil
}

func (intp *Intp) lint([]string) error {
	fmt.Fprintf(intp.out, "arms: %s\n", strings.Join(coin.DescribeArms(), " | "))
	for _, f := range coin.DescribeLint() {
		fmt.Fprintf(intp.out, "warning: %s\n", f)
	}
	return nil
}

func (intp *Intp) help([]string) error {
	fmt.Fprint(intp.out, `commands:
  coin <penny|nickel|dime|quarter state>   value and description of a coin
  plus <number|none>                       add one to an optional number
  roll [number]                            dispatch on a dice roll
  policy <move|reroll|ignore>              what to do for other rolls
  lint                                     unreachable arms of the coin description
  quit                                     leave
`)
	return nil
}

// --- Completion ------------------------------------------------------------

func completer() *readline.PrefixCompleter {
	coins := make([]readline.PrefixCompleterInterface, 0, 4)
	for _, name := range coin.CoinNames("") {
		if name == "quarter" {
			coins = append(coins, readline.PcItem(name, readline.PcItemDynamic(
				func(string) []string { return coin.StateNames("") },
			)))
			continue
		}
		coins = append(coins, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("coin", coins...),
		readline.PcItem("plus", readline.PcItem("none")),
		readline.PcItem("roll"),
		readline.PcItem("policy",
			readline.PcItem(dice.MoveOnOther.String()),
			readline.PcItem(dice.RerollOnOther.String()),
			readline.PcItem(dice.IgnoreOther.String()),
		),
		readline.PcItem("lint"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
