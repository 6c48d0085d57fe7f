package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"blc/codec"
	"blc/driver"
	"blc/parser"
	"blc/stdlib"
	"blc/term"
	"blc/termcode"
)

// runCmd implements the run command: it parses a program from a file,
// optionally applies it to an encoded byte-string argument, and drives its
// reduction as a lazy Church-encoded list of output bytes or bits.
type runCmd struct {
	inputFmt     string
	outputFmt    string
	prelude      bool
	dumpTermcode string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "evaluate a program and drive its output byte stream" }
func (*runCmd) Usage() string {
	return `run <path> [<arg>] [--input-fmt binary|standard] [--output-fmt bytes|bits]:
  Parse and reduce the program at <path>, optionally applying it to the
  argument string <arg>, and write its output to stdout.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.inputFmt, "input-fmt", "standard", "binary (BLC) or standard (textual) program source")
	f.StringVar(&r.outputFmt, "output-fmt", "bytes", "bytes (packed octets) or bits (one ASCII 0/1 per element)")
	f.BoolVar(&r.prelude, "prelude", false, "prepend the standard combinator library to standard-format programs")
	f.StringVar(&r.dumpTermcode, "dump-termcode", "", "write the parsed (pre-reduction) term to this path as termcode")
}

func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The flag package stops at the first positional argument, so flags
	// written after <path> or <arg> are parsed here.
	var args []string
	rest := f.Args()
	for len(rest) > 0 {
		args = append(args, rest[0])
		if err := f.Parse(rest[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		rest = f.Args()
	}
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 no program path given")
		return subcommands.ExitUsageError
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	program, err := parseProgram(string(data), r.inputFmt, r.prelude)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if len(args) >= 2 {
		argument, err := parser.ParseBLC(codec.Encode([]byte(args[1])))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		program = term.App{Func: program, Arg: argument}
	}

	if r.dumpTermcode != "" {
		if err := os.WriteFile(r.dumpTermcode, termcode.Encode(program), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	mode, err := parseOutputMode(r.outputFmt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := driver.Run(os.Stdout, program, mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseProgram parses source according to inputFmt, prepending the
// standard combinator library first when prelude is set and inputFmt is
// "standard" (the binary parser has no macro layer to prepend to).
func parseProgram(source string, inputFmt string, prelude bool) (term.Term, error) {
	switch inputFmt {
	case "binary":
		return parser.ParseBLC(source)
	case "standard":
		if prelude {
			source = stdlib.WithPrelude(source)
		}
		return parser.ParseTextual(source)
	default:
		return nil, fmt.Errorf("💥 unknown --input-fmt %q (want binary or standard)", inputFmt)
	}
}

func parseOutputMode(outputFmt string) (driver.Mode, error) {
	switch outputFmt {
	case "bytes":
		return driver.ModeBytes, nil
	case "bits":
		return driver.ModeBits, nil
	default:
		return 0, fmt.Errorf("💥 unknown --output-fmt %q (want bytes or bits)", outputFmt)
	}
}
