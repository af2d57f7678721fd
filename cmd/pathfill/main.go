// Command pathfill runs the max-probability path search and the flood fill
// on graphs described by YAML documents.
package main

import (
	"os"
)

var version string

func main() {
	if err := newRootCmd(&app{out: os.Stdout}).Execute(); err != nil {
		os.Exit(1)
	}
}
