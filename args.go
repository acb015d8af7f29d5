package main

import (
	"strings"

	"github.com/urfave/cli/v3"
)

// filterArgs drops arguments no flag in flags recognizes so that a typo
// costs a warning instead of the password. args[0] is the program name.
func filterArgs(flags []cli.Flag, args []string) (kept, skipped []string) {
	known := map[string]cli.Flag{}
	for _, f := range append([]cli.Flag{cli.HelpFlag}, flags...) {
		for _, name := range f.Names() {
			known[name] = f
		}
	}

	if len(args) == 0 {
		return nil, nil
	}
	kept = append(kept, args[0])

	for i := 1; i < len(args); i++ {
		arg := args[i]

		name, inline := flagName(arg)
		f, ok := known[name]
		switch {
		case ok:
			kept = append(kept, arg)
			if !inline && takesValue(f) && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		case isShortCluster(arg, known):
			kept = append(kept, arg)
		default:
			skipped = append(skipped, arg)
		}
	}

	return kept, skipped
}

// flagName returns the name in "-x", "--name" or "--name=value", and
// whether the value was given inline. Non-flags yield "".
func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" {
		return "", false
	}

	name := strings.TrimPrefix(arg[1:], "-")
	name, _, inline := strings.Cut(name, "=")
	return name, inline
}

// isShortCluster reports whether arg is a run of single-letter boolean
// flags such as -dlu.
func isShortCluster(arg string, known map[string]cli.Flag) bool {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return false
	}

	for _, r := range arg[1:] {
		f, ok := known[string(r)]
		if !ok || takesValue(f) {
			return false
		}
	}
	return true
}

func takesValue(f cli.Flag) bool {
	_, isBool := f.(*cli.BoolFlag)
	return !isBool
}
