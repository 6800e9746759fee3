// Package main is the entry point for the sciframe CLI.
package main

import "github.com/sciframe-io/sciframe/internal/cli"

func main() {
	cli.Execute()
}
