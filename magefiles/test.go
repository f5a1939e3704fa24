//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test with the race detector.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs the math tests with the mathdebug assertions compiled in.
func (Test) Debug() error {
	_, err := executeCmd("go", withArgs("test", "-tags", "mathdebug", "./..."), withDir("engine/math"), withStream())
	return err
}

// Runs the math benchmarks.
func (Test) Bench() error {
	_, err := executeCmd("go", withArgs("test", "-run", "^$", "-bench", ".", "./..."), withDir("engine/math"), withStream())
	return err
}
