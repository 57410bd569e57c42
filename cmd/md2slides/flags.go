package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config    string
	template  string
	targetDir string
	delimiter string
	force     bool
	verbose   bool
	version   bool
}

// parseFlags parses command-line arguments. Returns the flags and the
// remaining positional arguments (input and output paths).
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2slides", flag.ContinueOnError)
	fs.StringVarP(&flags.config, "config", "c", "", "config file path or name")
	fs.StringVarP(&flags.template, "template", "t", "", "reveal.js HTML template to splice the slides into")
	fs.StringVar(&flags.targetDir, "target-dir", "", "single output directory for all generated assets (overrides config)")
	fs.StringVarP(&flags.delimiter, "delimiter", "d", "", "slide delimiter (overrides config, default \">>>\")")
	fs.BoolVarP(&flags.force, "force", "f", false, "overwrite existing output file and target directories")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output on stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
