// Command vmaskdemo multiplies two integer vectors at even indices and prints
// the result.
//
// Usage:
//
//	vmaskdemo [flags]
//
// Without flags it uses 16 elements, a[i] = i and b[i] = 2*i, and prints
// c[i] = a[i]*b[i] for even i and 0 for odd i, one "c[<i>] = <value>" line
// per index.
//
// Examples:
//
//	vmaskdemo
//	vmaskdemo -n 64 -check
//	vmaskdemo -trace -vlen 256
//	vmaskdemo -trace -hex
//	vmaskdemo -impl generic
//	vmaskdemo -list
//
// Environment:
//
//	VMASK_FORCE_GENERIC  use the scalar kernel regardless of CPU features
//	VMASK_VLEN           default register width in bits for -trace
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/xyproto/env/v2"

	"github.com/cwbudde/algo-vmask/internal/cpu"
	"github.com/cwbudde/algo-vmask/internal/kernel"
	"github.com/cwbudde/algo-vmask/internal/kernel/arch/strip"
	"github.com/cwbudde/algo-vmask/internal/report"
	"github.com/cwbudde/algo-vmask/internal/trace"
	"github.com/cwbudde/algo-vmask/parity"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vmaskdemo", flag.ContinueOnError)
	// Parse errors are reported below in the error: form.
	fs.SetOutput(io.Discard)
	n := fs.Int("n", parity.DemoLength, "number of elements")
	impl := fs.String("impl", "auto", "kernel to use: auto or a name from -list")
	list := fs.Bool("list", false, "list registered kernels and exit")
	traceStrips := fs.Bool("trace", false, "run the strip-mined kernel and trace every strip to stderr")
	vlen := fs.Int("vlen", env.Int("VMASK_VLEN", strip.DefaultVLEN), "register width in bits for -trace")
	hex := fs.Bool("hex", false, "show traced register lanes in hexadecimal")
	check := fs.Bool("check", false, "compare the result against the closed form and fail on mismatch")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vmaskdemo [flags]\n\n")
		fmt.Fprintf(stderr, "Multiplies a[i] = i and b[i] = 2*i at even indices and prints c.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vmaskdemo\n")
		fmt.Fprintf(stderr, "  vmaskdemo -n 64 -check\n")
		fmt.Fprintf(stderr, "  vmaskdemo -trace -vlen 256\n")
		fmt.Fprintf(stderr, "  vmaskdemo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stderr)
			fs.Usage()
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if env.Bool("VMASK_FORCE_GENERIC") {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	}

	if *list {
		printList(stdout)
		return 0
	}

	if *n < 0 {
		fmt.Fprintf(stderr, "error: -n must be non-negative, got %d\n", *n)
		return 1
	}

	mul, err := selectKernel(*impl, *traceStrips, *vlen, *hex, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	a, b := parity.Demo(*n)
	c := make([]int32, *n)
	mul(c, a, b)

	if err := report.WriteLines(stdout, "c", c); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *check {
		want := parity.Expected(*n)
		for i := range want {
			if c[i] != want[i] {
				fmt.Fprintf(stderr, "error: c[%d] = %d, want %d\n", i, c[i], want[i])
				return 1
			}
		}
	}

	return 0
}

// selectKernel resolves the flags to a block kernel.
func selectKernel(impl string, traceStrips bool, vlen int, hex bool, stderr io.Writer) (func(dst, a, b []int32), error) {
	if traceStrips {
		if impl != "auto" {
			return nil, errors.New("-trace and -impl are mutually exclusive")
		}
		k, err := strip.New(vlen)
		if err != nil {
			return nil, err
		}
		p := trace.NewPrinter(stderr)
		p.Hex = hex
		k.Tracer = p
		return k.MulEvenBlock, nil
	}

	if impl == "auto" {
		return parity.MulEvenBlock, nil
	}

	entry := kernel.Find(impl)
	if entry == nil {
		return nil, fmt.Errorf("unknown kernel %q (see -list)", impl)
	}
	return entry.MulEvenBlock, nil
}

func printList(w io.Writer) {
	features := cpu.DetectFeatures()
	selected := parity.Implementation()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tLEVEL\tPRIORITY\tVLEN\tSUPPORTED\n")
	for _, e := range kernel.Entries() {
		name := e.Name
		if name == selected {
			name += " *"
		}
		vlen := "-"
		if e.VLEN > 0 {
			vlen = fmt.Sprint(e.VLEN)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%t\n", name, e.SIMDLevel, e.Priority, vlen, cpu.Supports(features, e.SIMDLevel))
	}
	tw.Flush()
}
