// verifier resolves structured predictions against external evidence.
//
// Usage:
//
//	verifier verify --subject=Bitcoin --predicate='>' --object=70000 --deadline=2025-06-30T23:59:59Z --context=crypto
//	verifier verify -f predictions.yaml
//	verifier demo
//	verifier serve [--addr=:8080]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
