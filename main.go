// Package main provides the entry point for fpusim.
// fpusim is a cycle-accurate single-precision FMA execution core model.
//
// For the full CLI, use: go run ./cmd/fpusim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("fpusim - pipelined FP32 FMA execution core model")
	fmt.Println("")
	fmt.Println("Usage: fpusim [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to timing configuration JSON file")
	fmt.Println("  -trace     Print a cycle-by-cycle completion trace")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/fpusim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/fpusim' instead.")
	}
}
