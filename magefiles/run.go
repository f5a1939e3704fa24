//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed on the sample scene and reloads it on change.
func (Run) Testbed() error {
	mg.Deps(Build.Engine)
	fmt.Println("Run testbed...")
	if _, err := executeCmd("bin/ogltech", withArgs("-config", "testbed/scene.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the built-in scene for a fixed number of frames.
func (Run) Smoke() error {
	mg.Deps(Build.Engine)
	dir, err := tempDir()
	if err != nil {
		return err
	}
	scene := dir + "/scene.toml"
	if _, err := executeCmd("bin/ogltech", withArgs("-init", scene)); err != nil {
		return err
	}
	_, err = executeCmd("bin/ogltech", withArgs("-config", scene), withStream())
	return err
}
