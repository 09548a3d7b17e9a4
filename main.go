package main

import "resolve.sh/cli"

func main() {
	cli.Run()
}
