package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/inbucket/emailaddr/pkg/extract"
)

type harvestCmd struct {
	rejected bool
}

func (*harvestCmd) Name() string {
	return "harvest"
}

func (*harvestCmd) Synopsis() string {
	return "extract participant addresses from a MIME message"
}

func (*harvestCmd) Usage() string {
	return `harvest [flags] [file]:
	extract validated addresses from the message headers, one per line
	reads from stdin when no file is given
`
}

func (h *harvestCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&h.rejected, "rejected", false, "also report rejected addresses on stderr")
}

func (h *harvestCmd) Execute(
	_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if f.NArg() > 1 {
		return usage("at most one file allowed")
	}
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			return fatal("Couldn't open message", err)
		}
		defer file.Close()
		in = file
	}
	result, err := extract.Harvest(in)
	if err != nil {
		return fatal("Harvest failed", err)
	}
	for _, addr := range result.Addresses {
		fmt.Println(addr.Normalize())
	}
	if h.rejected {
		for _, rej := range result.Rejected {
			fmt.Fprintf(os.Stderr, "rejected %s: %v\n", rej.Raw, rej.Err)
		}
	}
	return subcommands.ExitSuccess
}
