package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/theflywheel/region"
)

// commonFlags carries the region identity every subcommand needs: the
// backing file and the layout constants that must match across every
// invocation that touches it, since the header itself does not persist
// them (spec's "Region layout (ABI)").
type commonFlags struct {
	regionPath string
	slots      int
	keySize    int
	valueSize  int
}

func newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(discard{})

	cf := &commonFlags{}
	fs.StringVar(&cf.regionPath, "region", "", "path to the region file")
	fs.IntVar(&cf.slots, "slots", 1024, "slot capacity (init only)")
	fs.IntVar(&cf.keySize, "key-size", 32, "inline key width K")
	fs.IntVar(&cf.valueSize, "value-size", 64, "inline head value width V")
	return fs, cf
}

func (cf *commonFlags) layout() region.Layout {
	return region.Layout{KeySize: cf.keySize, ValueSize: cf.valueSize}
}

func (cf *commonFlags) validate() error {
	if cf.regionPath == "" {
		return fmt.Errorf("--region is required")
	}
	return nil
}

// discard implements io.Writer, swallowing pflag's own usage/error output
// so each subcommand can report its own errors instead (mirrors
// calvinalkan-agent-task's cmd_ls.go: "flagSet.SetOutput(io.Discard)").
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
