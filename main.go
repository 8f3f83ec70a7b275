// Package main is the entry point for the funcsnap CLI.
package main

import "funcsnap.dev/pkg/funcsnap/cmd"

func main() {
	cmd.Execute()
}
