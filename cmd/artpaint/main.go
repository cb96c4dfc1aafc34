// Command artpaint applies one pixel operation to an image file.
//
// Usage:
//
//	artpaint <command> -i in.png -o out.png [flags]
//
// Run "artpaint help" for the list of commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "artpaint:", err)
		os.Exit(1)
	}
}
