package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"blc/parser"
	"blc/stdlib"
	"blc/termcode"
)

// dumpCmd implements the dump command: it parses a standard-syntax
// program without reducing it and prints its de Bruijn and BLC forms,
// optionally also writing its termcode serialization to a file.
type dumpCmd struct {
	prelude     bool
	termcodeOut string
	bytes       bool
}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "parse a program and print its term, without reducing it" }
func (*dumpCmd) Usage() string {
	return `dump <path> [--prelude] [--termcode <out-path>] [--bytes]:
  Parse the program at <path> and print its de Bruijn and BLC forms.
`
}

func (d *dumpCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&d.prelude, "prelude", false, "prepend the standard combinator library before parsing")
	f.StringVar(&d.termcodeOut, "termcode", "", "also write the parsed term to this path as termcode")
	f.BoolVar(&d.bytes, "bytes", false, "also decode the parsed term as a Church byte list and print it raw")
}

func (d *dumpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The flag package stops at the first positional argument, so flags
	// written after <path> are parsed here.
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

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	source := string(data)
	if d.prelude {
		source = stdlib.WithPrelude(source)
	}

	parsed, err := parser.ParseTextual(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(parser.PrintDeBruijn(parsed))
	fmt.Println(parser.PrintBLC(parsed))

	if d.bytes {
		raw, err := parser.PrintBytes(parsed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 not a Church byte list: %v\n", err)
		} else {
			fmt.Printf("%s\n", raw)
		}
	}

	if d.termcodeOut != "" {
		if err := os.WriteFile(d.termcodeOut, termcode.Encode(parsed), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
