// Package main implements the entry point for the tasks API server, a small
// task-tracking service meant to run behind Kubernetes liveness and readiness
// probes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
