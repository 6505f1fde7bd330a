// Package main provides a banner entry point for bitreg, a bit-addressable
// register indexing library built around the bitidx typed-index algebra.
//
// For the demo CLI, use: go run ./cmd/bitreg
package main

import "fmt"

func main() {
	fmt.Println("bitreg - bit-addressable register indexing")
	fmt.Println("Typed-index and region arithmetic via bitidx")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/bitreg -value 0xFF00 -lsb 4 -width 60' for a bitfield-move demo.")
}
