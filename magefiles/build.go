//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Downloads the modules and builds the testbed binary into bin/.
func (Build) Engine() error {
	if _, err := executeCmd("go", withArgs("mod", "download")); err != nil {
		return err
	}
	fmt.Println("Build engine...")
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/ogltech", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds with the mathdebug tag so degenerate inputs panic.
func (Build) Debug() error {
	_, err := executeCmd("go", withArgs("build", "-tags", "mathdebug", "-o", "bin/ogltech-debug", "."), withStream())
	return err
}
