// Command wui formats delimited text as terminal tables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/wui/cli"
	"github.com/bjaus/wui/internal/logging"
)

// aliasEnv names a YAML file of "@alias" expansions.
const aliasEnv = "WUI_ALIASES"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	logger := logging.New(logging.DebugFromEnv(os.Getenv), os.Stderr)
	p := newProgram(os.Stdin, os.Stdout, os.Stderr)
	p.app.Logger = logger

	if path := os.Getenv(aliasEnv); path != "" {
		aliases, err := cli.LoadAliasFile(path)
		if err != nil {
			logger.Error("loading aliases", "path", path, "err", err)
			os.Exit(1)
		}
		p.app.Aliases = aliases
	}

	os.Exit(p.app.Main(ctx, os.Args[1:]))
}
