package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/inbucket/emailaddr/pkg/emailaddr"
)

type compareCmd struct{}

func (*compareCmd) Name() string {
	return "compare"
}

func (*compareCmd) Synopsis() string {
	return "order two addresses under the equivalence rules"
}

func (*compareCmd) Usage() string {
	return `compare <address-a> <address-b>:
	print -1, 0, or 1 for the relative order of the two addresses
	exit status will be 1 if the addresses differ, otherwise 0
`
}

func (*compareCmd) SetFlags(f *flag.FlagSet) {}

func (*compareCmd) Execute(
	_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usage("exactly two addresses required")
	}
	a, err := emailaddr.Parse(f.Arg(0))
	if err != nil {
		return fatal(f.Arg(0), err)
	}
	b, err := emailaddr.Parse(f.Arg(1))
	if err != nil {
		return fatal(f.Arg(1), err)
	}
	cmp := a.Compare(b)
	fmt.Println(cmp)
	if cmp != 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
