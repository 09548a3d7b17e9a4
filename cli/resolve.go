package cli

import (
	"fmt"
	"os"
	"strings"

	"resolve.sh/internal/importmap"
	"resolve.sh/internal/resolve"
	"resolve.sh/internal/resolvefs"
)

// Resolve runs a single resolution against the local disk and prints
// the result, or the error, exiting non-zero on failure.
func Resolve(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "resolve.sh resolve: a specifier is required")
		os.Exit(1)
	}
	specifier := args[0]
	var importer string
	var extensions []string
	var importMapFile string
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--importer":
			if i+1 < len(args) {
				i++
				importer = args[i]
			}
		case "--ext":
			if i+1 < len(args) {
				i++
				extensions = strings.Split(args[i], ",")
			}
		case "--importmap":
			if i+1 < len(args) {
				i++
				importMapFile = args[i]
			}
		}
	}
	if importer == "" {
		fmt.Fprintln(os.Stderr, "resolve.sh resolve: --importer is required")
		os.Exit(1)
	}

	if importMapFile != "" {
		data, err := os.ReadFile(importMapFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		im, err := importmap.Parse(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if rewritten, ok := im.Resolve(specifier, resolve.Dirname(importer)); ok {
			specifier = rewritten
		}
	}

	fs := resolvefs.OS{}
	path, err := resolve.ResolveSync(specifier, resolve.Options{
		Filename:   importer,
		Extensions: extensions,
		IsFile:     fs.IsFile,
		ReadFile:   fs.ReadFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(path)
}
