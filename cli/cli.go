// Package cli implements the resolve.sh command line: a one-shot
// resolution command, an HTTP server command, and a version command —
// dispatched with a flat switch on os.Args rather than a subcommand
// framework.
package cli

import (
	"fmt"
	"os"
)

// VERSION is the CLI's reported build version.
const VERSION = "0.1.0"

const helpMessage = "resolve.sh - a module specifier resolver.\n" + `
Usage: resolve.sh [command] [options]

Commands:
  resolve <specifier>   Resolve a specifier against the local disk
  serve                 Start the HTTP resolve API

Options for resolve:
  --importer <path>     Absolute path of the importing file (required)
  --ext <.js,.ts,...>   Comma-separated extension probe order
  --importmap <file>    Import map JSON consulted before resolution

Options for serve:
  --config <file>       JSON config file (port, storage backend, cache size)

Options:
  --version, -v         Show the version
  --help, -h            Display this help message
`

// Run dispatches os.Args[1] to the matching subcommand.
func Run() {
	if len(os.Args) < 2 {
		fmt.Print(helpMessage)
		return
	}
	switch command := os.Args[1]; command {
	case "resolve":
		Resolve(os.Args[2:])
	case "serve":
		ServeCmd(os.Args[2:])
	case "version":
		fmt.Println("resolve.sh CLI " + VERSION)
	default:
		for _, arg := range os.Args[1:] {
			if arg == "--version" {
				fmt.Println("resolve.sh CLI " + VERSION)
				return
			}
			if arg == "-v" {
				fmt.Println(VERSION)
				return
			}
		}
		fmt.Print(helpMessage)
	}
}
