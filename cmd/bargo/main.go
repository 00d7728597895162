// Command bargo is the BASIC build system and package manager.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/bargo/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bargo/internal/adapters/driven/fetch/github"
	"github.com/custodia-labs/bargo/internal/adapters/driven/fetch/web"
	"github.com/custodia-labs/bargo/internal/adapters/driven/process"
	"github.com/custodia-labs/bargo/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/bargo/internal/adapters/driven/watch"
	"github.com/custodia-labs/bargo/internal/adapters/driving/cli"
	"github.com/custodia-labs/bargo/internal/core/services"
)

// version is set at build time.
var version = "dev"

// projectRoot is the directory commands operate on.
const projectRoot = "."

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not determine working directory: %w", err)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	fs := filesystem.New()
	manifests := file.NewManifestStore(homeDir)
	fetchers := services.NewFetcherRegistry(
		github.NewFetcher(ctx, githubToken()),
		web.NewFetcher(),
	)

	builder := services.NewBuildService(projectRoot, manifests, fs, fs, fs, fetchers)

	cli.SetVersion(version)
	cli.SetBuildService(builder)
	cli.SetWatchService(services.NewWatchService(projectRoot, builder, watch.New()))
	cli.SetDependencyService(services.NewDependencyService(projectRoot, manifests))
	cli.SetProjectService(services.NewProjectService(projectRoot, workDir, homeDir, fs, manifests, process.NewGit()))
	cli.SetEmulatorService(services.NewEmulatorService(projectRoot, homeDir, fs, manifests, process.NewRunner()))

	return cli.Execute(ctx)
}

// githubToken returns the token used for GitHub fetches, if any.
func githubToken() string {
	if token := os.Getenv("BARGO_GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GITHUB_TOKEN")
}
