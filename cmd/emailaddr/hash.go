package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/inbucket/emailaddr/pkg/addrstore"
	"github.com/inbucket/emailaddr/pkg/emailaddr"
)

type hashCmd struct {
	index bool
}

func (*hashCmd) Name() string {
	return "hash"
}

func (*hashCmd) Synopsis() string {
	return "print the equivalence hash of each address"
}

func (*hashCmd) Usage() string {
	return `hash [flags] <address> ...:
	print the 32-bit equivalence hash of each address in hex
	equivalent addresses always hash to the same value
`
}

func (h *hashCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&h.index, "index", false, "apply the index-safe reserved value substitution")
}

func (h *hashCmd) Execute(
	_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usage("at least one address required")
	}
	for _, arg := range f.Args() {
		addr, err := emailaddr.Parse(arg)
		if err != nil {
			return fatal(arg, err)
		}
		val := addr.Hash()
		if h.index {
			val = addrstore.IndexHash(addr)
		}
		fmt.Printf("%08x  %s\n", val, addr)
	}
	return subcommands.ExitSuccess
}
