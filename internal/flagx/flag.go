// Package flagx contains helpers for cooperative flag parsing: several
// components read their own flags from os.Args without registering each
// other's definitions, so each one filters the argument list down to the
// flags it owns before parsing.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args containing only the flags listed in
// allowed, together with their values.
//
// Two spellings are recognized: a flag with a separate value ("-c conf.json")
// and the combined form ("--config=conf.json"). A token following an allowed
// flag is treated as its value unless it starts with a dash.
func FilterArgs(args []string, allowed []string) []string {
	set := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		set[name] = struct{}{}
	}

	// Always non-nil so callers can hand the result to flag.FlagSet.Parse.
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := set[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := set[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFileFlag extracts the config file path given via -c or -config.
// Other arguments are ignored, which lets the config loader run before the
// rest of the flags are defined. Returns "" when neither flag is present.
func ConfigFileFlag() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
