/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/ogltech/engine"
	"github.com/spaghettifunk/ogltech/engine/config"
	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/testbed"
)

func main() {
	scenePath := flag.String("config", "", "scene file to load; the built-in scene is used when empty")
	watch := flag.Bool("watch", false, "reload the scene file whenever it changes")
	initPath := flag.String("init", "", "write the built-in scene to this path and exit")
	flag.Parse()

	if *initPath != "" {
		if err := config.Default().Save(*initPath); err != nil {
			core.LogFatal("failed to write %s: %s", *initPath, err)
		}
		core.LogInfo("wrote default scene to %s", *initPath)
		return
	}

	scene := config.Default()
	if *scenePath != "" {
		s, err := config.Load(*scenePath)
		if err != nil {
			core.LogFatal("failed to load scene: %s", err)
		}
		scene = s
	}

	tb, err := testbed.NewTestGame(scene)
	if err != nil {
		core.LogFatal(err.Error())
	}

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	if *watch {
		if *scenePath == "" {
			core.LogWarn("-watch needs -config, ignoring")
		} else if err := e.WatchScene(*scenePath); err != nil {
			core.LogFatal(err.Error())
		}
	}

	// capture sigterm and other system calls here
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogError(runErr.Error())
		os.Exit(1)
	}
}
