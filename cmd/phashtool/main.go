// Command phashtool exercises region.Table end to end against a real
// mmap-backed file: create, put, get, rm, ls, size, clear. It supplements
// theflywheel-phash's plain example/main.go demonstration with a genuine
// subcommand surface, grounded on calvinalkan-agent-task's cmd/ layout
// (manual dispatch + a pflag.FlagSet per subcommand).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/theflywheel/region"
	"github.com/theflywheel/region/mmapregion"
	"github.com/theflywheel/region/regiondebug"
)

var logger = log.New(os.Stderr, "phashtool: ", log.LstdFlags)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: phashtool <create|put|get|rm|ls|size|clear> [flags]")
		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create":
		return cmdCreate(os.Stdout, os.Stderr, rest)
	case "put":
		return cmdPut(os.Stdout, os.Stderr, rest)
	case "get":
		return cmdGet(os.Stdout, os.Stderr, rest)
	case "rm":
		return cmdRm(os.Stdout, os.Stderr, rest)
	case "ls":
		return cmdLs(os.Stdout, os.Stderr, rest)
	case "size":
		return cmdSize(os.Stdout, os.Stderr, rest)
	case "clear":
		return cmdClear(os.Stdout, os.Stderr, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", cmd)
		return 2
	}
}

func cmdCreate(out, errOut *os.File, args []string) int {
	fs, cf := newFlagSet("create")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if err := cf.validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	layout := cf.layout()
	size := layout.RegionBytes(cf.slots)

	r, err := mmapregion.Create(cf.regionPath, size)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer r.Close()

	if _, err := region.Open(r.Bytes(), len(r.Bytes()), layout); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	logger.Printf("created %s: %d slots, key=%d value=%d", cf.regionPath, cf.slots, cf.keySize, cf.valueSize)
	return 0
}

func attach(cf *commonFlags) (*mmapregion.Region, *region.Table, error) {
	r, err := mmapregion.Open(cf.regionPath)
	if err != nil {
		return nil, nil, err
	}
	tbl, err := region.Open(r.Bytes(), 0, cf.layout())
	if err != nil {
		r.Close()
		return nil, nil, err
	}
	return r, tbl, nil
}

func cmdPut(out, errOut *os.File, args []string) int {
	fs, cf := newFlagSet("put")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if err := cf.validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(errOut, "usage: phashtool put --region <path> <key> <value>")
		return 2
	}

	r, tbl, err := attach(cf)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer r.Close()

	if err := tbl.Put([]byte(fs.Arg(0)), []byte(fs.Arg(1))); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if err := r.Sync(); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}

func cmdGet(out, errOut *os.File, args []string) int {
	fs, cf := newFlagSet("get")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if err := cf.validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: phashtool get --region <path> <key>")
		return 2
	}

	r, tbl, err := attach(cf)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer r.Close()

	val, err := tbl.Get([]byte(fs.Arg(0)))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, string(val))
	return 0
}

func cmdRm(out, errOut *os.File, args []string) int {
	fs, cf := newFlagSet("rm")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if err := cf.validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: phashtool rm --region <path> <key>")
		return 2
	}

	r, tbl, err := attach(cf)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer r.Close()

	if err := tbl.Remove([]byte(fs.Arg(0))); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if err := r.Sync(); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}

func cmdLs(out, errOut *os.File, args []string) int {
	fs, cf := newFlagSet("ls")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if err := cf.validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	r, tbl, err := attach(cf)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer r.Close()

	c := region.NewCursor()
	for {
		entry, ok, err := tbl.Next(c)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		if !ok {
			break
		}
		fmt.Fprintf(out, "%s\t%s\n", entry.Key, entry.Value)
	}
	return 0
}

func cmdSize(out, errOut *os.File, args []string) int {
	fs, cf := newFlagSet("size")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if err := cf.validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	r, tbl, err := attach(cf)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer r.Close()

	num, used, maxslots := tbl.Size()
	fmt.Fprintf(out, "num=%d usedslots=%d maxslots=%d\n", num, used, maxslots)
	return 0
}

func cmdClear(out, errOut *os.File, args []string) int {
	fs, cf := newFlagSet("clear")
	fs.Bool("dump-before", false, "print the slot table before clearing")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if err := cf.validate(); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	r, tbl, err := attach(cf)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer r.Close()

	if dump, _ := fs.GetBool("dump-before"); dump {
		regiondebug.Dump(out, tbl)
	}

	tbl.Clear()
	if err := r.Sync(); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}
