package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"blc/parser"
	"blc/reducer"
	"blc/stdlib"
)

// replCmd implements the repl command: an interactive line-editing
// session that parses each line as a standard-syntax program, fully
// normalises it, and prints its de Bruijn textual form.
type replCmd struct {
	prelude bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive evaluation session" }
func (*replCmd) Usage() string {
	return `repl [--prelude]:
  Start an interactive session. Each line is parsed, reduced to normal
  form, and printed. Enter "exit" or Ctrl-D to leave.
`
}

func (r *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.prelude, "prelude", false, "make the standard combinator library's names available")
}

func (r *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "λ> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stderr(), "Binary Lambda Calculus — enter an expression, \"exit\" to leave.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if line == "" {
			continue
		}
		if line == "exit" {
			return subcommands.ExitSuccess
		}

		source := line
		if r.prelude {
			source = stdlib.WithPrelude(source)
		}

		parsed, err := parser.ParseTextual(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Fprintln(rl.Stdout(), parser.PrintDeBruijn(reducer.EvalFull(parsed)))
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.blc_history"
}
