// Package flagx contains small helpers for parsing a subset of the
// command line without tripping over flags owned by other packages
// (including the test binary's own -test.* flags).
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments belonging to the flags named in
// keep, so a FlagSet can parse them without choking on anything else.
//
// Both spellings are recognized:
//
//	separate value:   -d postgres://...
//	inline value:     -config=server.json
func FilterArgs(args []string, keep []string) []string {
	wanted := make(map[string]bool, len(keep))
	for _, name := range keep {
		wanted[name] = true
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// inline form: the whole "-flag=value" token is kept or dropped
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			if wanted[strings.SplitN(arg, "=", 2)[0]] {
				out = append(out, arg)
			}
			continue
		}

		if wanted[arg] {
			out = append(out, arg)
			// a following token that is not itself a flag is this flag's value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, args[i+1])
				i++
			}
		}
	}

	return out
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// All other arguments are ignored, so every component can run this against
// os.Args regardless of what flags it defines itself. Returns "" when
// neither flag is present.
func JsonConfigFlags() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return path
}
