package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `ctree - a lexerless parser for a restricted C dialect

Usage:
    ctree <command> [arguments]

Commands:
    parse <file>    Parse a C file and print its syntax tree as JSON
    check <file>... Parse files and report the first error in each
    eval <code>     Parse inline C code and print its syntax tree
    watch <file>    Re-parse and re-print the tree on every file change
    help            Show this help message

Examples:
    ctree parse examples/hello.c
    ctree parse -compact -o tree.json hello.c
    ctree eval 'int x = 40 + 2;'
    ctree check src/*.c

Environment:
    CTREE_COMPACT         print compact JSON by default
    CTREE_WATCH_INTERVAL  polling interval in ms for watch (non-Linux)

Use "ctree <command> -h" for more information about a command.
`)
}

func parseCommand(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	output := fs.String("o", "", "Output file path (default: stdout)")
	compact := fs.Bool("compact", env.Bool("CTREE_COMPACT"), "Print compact JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctree parse [-compact] [-o output] <file>\n")
		fmt.Fprintf(os.Stderr, "Parse a C file and print its syntax tree as JSON\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)
	rendered, err := parseFileToJSON(filename, *compact)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		os.Exit(1)
	}

	if *output == "" {
		fmt.Println(string(rendered))
		return
	}
	if err := os.WriteFile(*output, append(rendered, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
}

func checkCommand(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	quiet := fs.Bool("q", false, "Only report failures")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctree check [-q] <file>...\n")
		fmt.Fprintf(os.Stderr, "Parse files and report the first error in each\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: expected at least one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	failed := false
	for _, filename := range fs.Args() {
		source, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			failed = true
			continue
		}
		if _, err := ParseSource(string(source)); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			failed = true
			continue
		}
		if !*quiet {
			fmt.Printf("%s: OK\n", filename)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func evalCommand(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	compact := fs.Bool("compact", env.Bool("CTREE_COMPACT"), "Print compact JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctree eval [-compact] <code>\n")
		fmt.Fprintf(os.Stderr, "Parse inline C code and print its syntax tree\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one code argument\n")
		fs.Usage()
		os.Exit(1)
	}

	program, err := ParseSource(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
		os.Exit(1)
	}
	rendered, err := MarshalTree(program, *compact)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering tree: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(rendered))
}

func watchCommand(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	compact := fs.Bool("compact", env.Bool("CTREE_COMPACT"), "Print compact JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctree watch [-compact] <file>\n")
		fmt.Fprintf(os.Stderr, "Re-parse and re-print the tree on every file change\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)
	report := func(path string) {
		rendered, err := parseFileToJSON(path, *compact)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return
		}
		fmt.Println(string(rendered))
	}

	report(filename)

	watcher, err := NewFileWatcher(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting watcher: %v\n", err)
		os.Exit(1)
	}
	if err := watcher.AddFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", filename, err)
		os.Exit(1)
	}
	watcher.Watch()
}

func parseFileToJSON(filename string, compact bool) ([]byte, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	program, err := ParseSource(string(source))
	if err != nil {
		return nil, err
	}
	return MarshalTree(program, compact)
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "parse":
		parseCommand(args)
	case "check":
		checkCommand(args)
	case "eval":
		evalCommand(args)
	case "watch":
		watchCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		showUsage()
		os.Exit(1)
	}
}
