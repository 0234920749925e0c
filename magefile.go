//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary   = "gallifreyan"
	coverage = "coverage.out"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the gallifreyan binary
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/gallifreyan")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Coverage runs all tests and writes a coverage profile
func Coverage() error {
	return sh.RunV("go", "test", "-coverprofile="+coverage, "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/gallifreyan")
}

// Clean removes build artifacts
func Clean() error {
	if err := sh.Rm(binary); err != nil {
		return err
	}
	return sh.Rm(coverage)
}
