package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/inbucket/emailaddr/pkg/emailaddr"
)

type validateCmd struct {
	quiet bool
}

func (*validateCmd) Name() string {
	return "validate"
}

func (*validateCmd) Synopsis() string {
	return "check addresses against RFC 5321/5322 syntax"
}

func (*validateCmd) Usage() string {
	return `validate [flags] <address> ...:
	check each address, reporting the reason for any rejection
	exit status will be 1 if any address was invalid, otherwise 0
`
}

func (v *validateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&v.quiet, "quiet", false, "suppress per-address output, exit status only")
}

func (v *validateCmd) Execute(
	_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usage("at least one address required")
	}
	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		addr, err := emailaddr.Parse(arg)
		if err != nil {
			status = subcommands.ExitFailure
			if !v.quiet {
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			}
			continue
		}
		if !v.quiet {
			fmt.Printf("%s: ok (%s domain)\n", addr, addr.Domain().Kind())
		}
	}
	return status
}
