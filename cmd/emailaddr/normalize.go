package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/inbucket/emailaddr/pkg/emailaddr"
)

type normalizeCmd struct{}

func (*normalizeCmd) Name() string {
	return "normalize"
}

func (*normalizeCmd) Synopsis() string {
	return "print the canonical form of each address"
}

func (*normalizeCmd) Usage() string {
	return `normalize <address> ...:
	print the canonical form of each address, one per line
`
}

func (*normalizeCmd) SetFlags(f *flag.FlagSet) {}

func (*normalizeCmd) Execute(
	_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usage("at least one address required")
	}
	for _, arg := range f.Args() {
		addr, err := emailaddr.Parse(arg)
		if err != nil {
			return fatal(arg, err)
		}
		fmt.Println(addr.Normalize())
	}
	return subcommands.ExitSuccess
}
