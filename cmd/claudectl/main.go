package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/claudectl/internal/infrastructure/cli"
	"github.com/doeshing/claudectl/internal/infrastructure/config"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{
		Verbose:    isVerbose(),
		ConfigPath: os.Getenv(config.EnvConfigPath),
	}

	root, container, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	err = root.ExecuteContext(ctx)
	_ = container.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("CLAUDECTL_DEBUG"), "1") || strings.EqualFold(os.Getenv("CLAUDECTL_DEBUG"), "true")
}
