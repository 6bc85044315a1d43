package main

import (
	"fmt"
	"os"

	"github.com/ZygmaCore/orbit/lib/logger"
)

func main() {
	debug := os.Getenv("ORBIT_DEBUG") == "true"
	logger.Init(debug)

	c, err := newConsole()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer c.close()

	if !debug && c.cfg.Debug() {
		logger.Init(true)
	}

	if err := newRootCmd(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
