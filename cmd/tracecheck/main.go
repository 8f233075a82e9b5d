package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"uconn.dev/tracecheck/conformance"
	"uconn.dev/tracecheck/intake"
	"uconn.dev/tracecheck/scenario"
	"uconn.dev/tracecheck/tracecid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "check":
		return cmdCheck(args[1:], out, errOut)
	case "scenarios":
		return cmdScenarios(args[1:], out, errOut)
	case "digest":
		return cmdDigest(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "tracecheck: trace conformance checker for p2p lesson checkpoints")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tracecheck check --scenario <name> [--dir <dir>] [--intake <addr>] [--ordered]")
	fmt.Fprintln(w, "  tracecheck scenarios")
	fmt.Fprintln(w, "  tracecheck digest <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - check reads the scenario's well-known log names from --dir (default .)")
	fmt.Fprintln(w, "  - --intake fetches the same log names from a tracecheck-intaked service instead")
	fmt.Fprintln(w, "  - --ordered additionally requires required events in declaration order")
	fmt.Fprintln(w, "  - exit code is 0 iff every required expectation holds")
}

func cmdCheck(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var dir string
	var intakeAddr string
	var ordered bool
	fs.StringVar(&name, "scenario", "", "Scenario name (see 'tracecheck scenarios')")
	fs.StringVar(&dir, "dir", ".", "Directory holding the trace log files")
	fs.StringVar(&intakeAddr, "intake", "", "Address of a trace intake service to fetch logs from")
	fs.BoolVar(&ordered, "ordered", false, "Require required events in declaration order")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "usage: tracecheck check --scenario <name> [--dir <dir>] [--intake <addr>] [--ordered]")
		return 2
	}
	s, ok := scenario.Lookup(name)
	if !ok {
		fmt.Fprintf(errOut, "unknown scenario: %s (known: %s)\n", name, strings.Join(scenario.Names(), ", "))
		return 2
	}

	var corpus conformance.Corpus
	var err error
	if intakeAddr != "" {
		corpus, err = loadFromIntake(s, intakeAddr)
	} else {
		corpus, err = s.Load(dir)
	}
	if err != nil {
		rep := conformance.IngestFailure(s.Name, err)
		return conformance.Emit(out, rep)
	}

	opts := s.Options
	if ordered {
		opts.Ordering = conformance.OrderingChronological
	}
	rep := conformance.Run(s.Name, corpus, s.Grammar, opts)
	return conformance.Emit(out, rep)
}

// loadFromIntake fetches the scenario's log names from an intake service,
// applying the same optionality rules as directory loading.
func loadFromIntake(s *scenario.Scenario, addr string) (conformance.Corpus, error) {
	client, err := intake.Dial(addr, intake.DialOptions{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("dial intake %s: %w", addr, err)
	}
	defer client.Close()
	client.Timeout = 5 * time.Second

	var corpus conformance.Corpus
	for _, l := range s.Logs {
		b, err := client.Get(l.Name)
		if err != nil {
			if intake.IsNotFound(err) && l.Optional {
				continue
			}
			return nil, fmt.Errorf("trace source unavailable: %s: %w", l.Name, err)
		}
		corpus = append(corpus, conformance.Blob{Name: l.Name, Text: string(b)})
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("no trace available from intake %s", addr)
	}
	return corpus, nil
}

func cmdScenarios(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "usage: tracecheck scenarios")
		return 2
	}
	for _, name := range scenario.Names() {
		s, _ := scenario.Lookup(name)
		fmt.Fprintf(out, "%s\t%s\n", name, s.Description)
	}
	return 0
}

func cmdDigest(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("digest", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: tracecheck digest <file>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read trace: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, tracecid.Fingerprint(b))
	return 0
}
