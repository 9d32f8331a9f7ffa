// internctl is a CLI for exercising a string-interning Subsystem.
//
// Usage:
//
//	internctl [flags]
//
// Flags:
//
//	-c, --config <path>         JSONC config file (default: none)
//	    --max-strings <n>       Override Config.MaxStrings
//	    --track-strings         Override Config.TrackStrings=true
//	    --stats-out <path>      Write a final JSON stats snapshot on exit
//
// Commands (in REPL):
//
//	intern <str>      Intern a string, print its handle
//	resolve <handle>  Resolve a handle back to its string
//	name <str>        Split a string into prefix+suffix, print both
//	stats             Show usage statistics (requires --track-strings)
//	help              Show this help
//	exit / quit / q   Exit
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/astral-engine/astral/internal/config"
	"github.com/astral-engine/astral/internal/logging"
	"github.com/astral-engine/astral/pkg/strintern"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	flags := flag.NewFlagSet("internctl", flag.ContinueOnError)

	configPath := flags.StringP("config", "c", "", "JSONC config file")
	maxStrings := flags.Uint32("max-strings", 0, "override Config.MaxStrings")
	trackStrings := flags.Bool("track-strings", false, "override Config.TrackStrings=true")
	statsOut := flags.String("stats-out", "", "write a final JSON stats snapshot to this path on exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	file, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	cfg := config.Resolve(file, *maxStrings, *trackStrings, flags.Changed("track-strings"))

	logger := logging.NewStderr()
	sub := strintern.New(logger, cfg)
	defer sub.Close()

	repl := &REPL{sub: sub, statsOut: *statsOut}

	return repl.Run()
}

// REPL is the interactive command loop over a Subsystem.
type REPL struct {
	sub      *strintern.Subsystem
	statsOut string
	liner    *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".internctl_history")
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Println("internctl - string interning CLI")
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("internctl> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return r.writeStatsOut()

		case "help", "?":
			r.printHelp()

		case "intern":
			r.cmdIntern(args)

		case "resolve":
			r.cmdResolve(args)

		case "name":
			r.cmdName(args)

		case "stats":
			r.cmdStats()

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return r.writeStatsOut()
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *REPL) completer(line string) []string {
	commands := []string{"intern", "resolve", "name", "stats", "help", "exit", "quit", "q"}

	var completions []string
	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}
	return completions
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  intern <str>      Intern a string, print its handle")
	fmt.Println("  resolve <handle>  Resolve a handle back to its string")
	fmt.Println("  name <str>        Split a string into prefix+suffix, print both")
	fmt.Println("  stats             Show usage statistics (requires --track-strings)")
	fmt.Println("  help              Show this help")
	fmt.Println("  exit / quit / q   Exit")
}

func (r *REPL) cmdIntern(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: intern <str>")
		return
	}
	h := r.sub.Intern(strings.Join(args, " "))
	fmt.Printf("handle=%d\n", h)
}

func (r *REPL) cmdResolve(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: resolve <handle>")
		return
	}
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Println("invalid handle:", args[0])
		return
	}

	h := strintern.Handle(n)
	if !h.Valid() {
		fmt.Println("handle 0 is never issued")
		return
	}

	resolved := func() (s string, panicked bool) {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		return r.sub.Resolve(h), false
	}

	s, panicked := resolved()
	if panicked {
		fmt.Printf("handle %d was never issued by this subsystem\n", h)
		return
	}
	fmt.Printf("%q\n", s)
}

func (r *REPL) cmdName(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: name <str>")
		return
	}
	n := strintern.NewName(r.sub, strings.Join(args, " "))
	suffix, ok := n.Suffix()
	if !ok {
		fmt.Printf("prefix=%q suffix=(none)\n", n.PrefixString())
		return
	}
	fmt.Printf("prefix=%q suffix=%d\n", n.PrefixString(), suffix)
}

func (r *REPL) cmdStats() {
	stats, ok := r.sub.Stats()
	if !ok {
		fmt.Println("tracking disabled; rerun with --track-strings")
		return
	}
	fmt.Printf("strings_allocated=%d used_memory=%d allocations=%d average_string_length=%d\n",
		stats.StringsAllocated, stats.UsedMemory, stats.Allocations, stats.AverageStringLen)
}

func (r *REPL) writeStatsOut() error {
	if r.statsOut == "" {
		return nil
	}

	stats, ok := r.sub.Stats()
	if !ok {
		return nil
	}

	buf, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	if err := atomic.WriteFile(r.statsOut, bytes.NewReader(buf)); err != nil {
		return fmt.Errorf("writing stats to %s: %w", r.statsOut, err)
	}

	return nil
}
