package container

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/google/uuid"
	"github.com/updeshxp/op5-nethunter-kernel/internal"
	"github.com/updeshxp/op5-nethunter-kernel/internal/command"
	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Working directory inside the build container. The build root is mounted
// here, so the inner invocation sees the same tree as the host.
const workdir = "/build"

// Drives a containerized build through the docker or podman executable.
type Engine struct {
	binary string
	env    *env.Environment
}

// Resolves the requested container engine binary on the host.
func NewEngine(buildenv request.BuildEnv, e *env.Environment) (*Engine, error) {
	binary, err := exec.LookPath(string(buildenv))
	if err != nil {
		return nil, fmt.Errorf("%w: %s executable not found: %w", ErrEngine, buildenv, err)
	}
	return &Engine{binary: binary, env: e}, nil
}

// Executes the projected build inside the container engine.
//
// The build root is mounted into the container and the wrapper re-invokes
// itself with the projected parameter set. When image cleanup was requested,
// the engine image is removed from the host after the run.
func (e *Engine) Run(ctx context.Context, params Parameters) error {
	if err := e.ensureImage(ctx); err != nil {
		return err
	}

	name := fmt.Sprintf("%s-build-%s", e.env.Product.Name, uuid.NewString()[:8])
	slog.Info("starting containerized build",
		"engine", params.BuildEnv,
		"module", params.BuildModule,
		"container", name,
	)

	args := []string{
		"run", "--rm",
		"--name", name,
		"-v", e.env.Root + ":" + workdir,
		"-w", workdir,
		e.imageTag(),
		"./" + internal.Name,
	}
	args = append(args, params.Args()...)

	if _, err := command.Launch(ctx, e.env.LogLevel, e.binary, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrEngine, err)
	}

	if params.CleanImage {
		if _, err := command.Launch(ctx, e.env.LogLevel, e.binary, "rmi", e.imageTag()); err != nil {
			return fmt.Errorf("%w: %w", ErrEngine, err)
		}
		slog.Info("engine image removed", "image", e.imageTag())
	}

	return nil
}

// Builds the engine image from the build root unless it already exists.
func (e *Engine) ensureImage(ctx context.Context) error {
	tag := e.imageTag()

	if _, err := command.Launch(ctx, env.LevelQuiet, e.binary, "image", "inspect", tag); err == nil {
		return nil
	}

	slog.Info("building engine image", "image", tag)
	if _, err := command.Launch(ctx, e.env.LogLevel, e.binary, "build", "-t", tag, e.env.Root); err != nil {
		return fmt.Errorf("%w: %w", ErrEngine, err)
	}

	return nil
}

// Returns the image tag for this product version.
func (e *Engine) imageTag() string {
	return fmt.Sprintf("%s:%s", e.env.Product.Name, e.env.Product.Version)
}
