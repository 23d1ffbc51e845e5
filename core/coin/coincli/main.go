/*
Command coincli tours pattern matching over coins, optional integers and
dice rolls.

Without flags, coincli runs through all the matches once and exits. With
flag -i it starts an interactive session:

    coins > coin quarter ariz
    coins > plus 41
    coins > policy reroll
    coins > roll 9

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/coinage/core"
	"github.com/npillmayer/coinage/engine/dice"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'coinage.cli'
func tracer() tracing.Trace {
	return tracing.Select("coinage.cli")
}

// tracers configured from the command line
var traceKeys = []string{
	"coinage.cli",
	"coinage.coins",
	"coinage.option",
	"coinage.match",
	"coinage.dice",
}

func main() {
	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "Start an interactive session")
	roll := flag.Int("roll", 9, "Dice roll to dispatch on during the tour")
	seed := flag.Int64("seed", 1, "Seed for random dice rolls")
	flag.Parse()

	initDisplay()
	if err := setupTracing(*tlevel); err != nil {
		fmt.Printf("error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	tracer().Debugf("Trace level is %s", *tlevel)

	if !*interactive {
		t := &tour{
			out:     os.Stdout,
			section: func(title string) { pterm.DefaultSection.Println(title) },
		}
		t.run(*roll)
		return
	}
	pterm.Info.Println("Welcome to the coin matcher")
	intp, err := newIntp(dice.NewSource(*seed))
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// setupTracing routes all tracers to stdout, using the Go standard logger.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(traceConfig(level), "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// traceConfig sets every tracer to level. Coin messages are program output,
// so 'coinage.coins' never drops below Info.
func traceConfig(level string) testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"tracing.destination": "Stdout",
		"trace.root":          "Error",
	}
	level = strings.TrimSpace(level)
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if tracing.TraceLevelFromString(level) < tracing.LevelInfo {
		conf["trace.coinage.coins"] = "Info"
	}
	return conf
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
