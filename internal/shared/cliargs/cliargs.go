// Package cliargs parses a subcommand line where flags may appear before
// or after positional arguments, the way argparse-style CLIs accept them.
package cliargs

import "flag"

// Parse runs fs over args, collecting positionals and re-parsing the
// remainder so that flag position does not matter. Unknown flags after a
// positional still fail like any other parse error.
func Parse(fs *flag.FlagSet, args []string) ([]string, error) {
	var positionals []string

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()

	for len(rest) > 0 {
		positionals = append(positionals, rest[0])
		if err := fs.Parse(rest[1:]); err != nil {
			return nil, err
		}
		rest = fs.Args()
	}

	return positionals, nil
}
