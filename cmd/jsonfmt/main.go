// Command jsonfmt reformats JSON/JSONC files for human readability.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kesho-dev/jsonfmt"
)

func main() {
	inPlace := flag.Bool("i", false, "write result to each source file instead of stdout")
	minify := flag.Bool("m", false, "minify instead of reformat")
	configPath := flag.String("config", "", "path to a YAML options file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `jsonfmt - reformat JSON/JSONC for human readability

Usage:
  jsonfmt [options] [file...]

With no file arguments, reads from stdin and writes to stdout.

Options:
  -i             Write result to each source file instead of stdout
  -m             Minify instead of reformat
  -config PATH   Load formatting options from a YAML file
`)
	}
	flag.Parse()

	opts := jsonfmt.Default
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonfmt: %v\n", err)
			os.Exit(2)
		}
		opts = loaded
	}

	files := flag.Args()
	if len(files) == 0 {
		os.Exit(runStdin(opts, *minify))
	}
	os.Exit(runFiles(files, opts, *minify, *inPlace))
}

func loadConfig(path string) (jsonfmt.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return jsonfmt.Options{}, err
	}
	defer f.Close()
	return jsonfmt.LoadOptionsYAML(f)
}

func runStdin(opts jsonfmt.Options, minify bool) int {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonfmt: reading stdin: %v\n", err)
		return 1
	}
	out, err := process(string(content), opts, minify)
	if err != nil {
		return reportError("<stdin>", err)
	}
	fmt.Print(out)
	return 0
}

func runFiles(files []string, opts jsonfmt.Options, minify, inPlace bool) int {
	exitCode := 0
	for _, name := range files {
		content, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jsonfmt: reading %s: %v\n", name, err)
			exitCode = 1
			continue
		}

		out, err := process(string(content), opts, minify)
		if err != nil {
			if reportError(name, err) != 0 {
				exitCode = 1
			}
			continue
		}

		if inPlace {
			if err := os.WriteFile(name, []byte(out), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "jsonfmt: writing %s: %v\n", name, err)
				exitCode = 1
			}
			continue
		}
		fmt.Print(out)
	}
	return exitCode
}

func process(source string, opts jsonfmt.Options, minify bool) (string, error) {
	if minify {
		return jsonfmt.Minify(source, opts)
	}
	return jsonfmt.Reformat(source, 0, opts)
}

func reportError(name string, err error) int {
	var fe *jsonfmt.FormattingError
	if errors.As(err, &fe) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, fe)
		return 1
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	return 1
}
