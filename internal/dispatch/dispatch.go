package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/updeshxp/op5-nethunter-kernel/internal/assets"
	"github.com/updeshxp/op5-nethunter-kernel/internal/bundle"
	"github.com/updeshxp/op5-nethunter-kernel/internal/container"
	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
	"github.com/updeshxp/op5-nethunter-kernel/internal/kernel"
	"github.com/updeshxp/op5-nethunter-kernel/internal/manifest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Resolves the build mode for a validated request and invokes the matching
// collaborator.
type Dispatcher struct {
	env     *env.Environment
	catalog *manifest.DeviceCatalog

	buildKernel   func(context.Context, *env.Environment, manifest.Device, kernel.Options) error
	collectAssets func(context.Context, *env.Environment, manifest.Device, assets.Options) error
	createBundle  func(context.Context, *env.Environment, manifest.Device, bundle.Options) error
	runContainer  func(context.Context, *env.Environment, container.Parameters) error
}

// Creates a dispatcher wired to the real build collaborators.
func New(e *env.Environment, catalog *manifest.DeviceCatalog) *Dispatcher {
	return &Dispatcher{
		env:           e,
		catalog:       catalog,
		buildKernel:   kernel.Run,
		collectAssets: assets.Collect,
		createBundle:  bundle.Create,
		runContainer:  runContainer,
	}
}

// Runs a validated build request to completion.
//
// Containerized environments project the request onto the allow-list and
// hand off to the engine collaborator; the local environment dispatches on
// the request variant. Collaborator failures are opaque and fatal: nothing
// is retried, and the environment is left as the collaborator left it.
func (d *Dispatcher) Run(ctx context.Context, req request.Request) error {
	base := req.Base()

	if base.BuildEnv.Containerized() {
		return d.runContainer(ctx, d.env, container.Project(req))
	}

	device, ok := d.catalog.Get(base.Codename)
	if !ok {
		return fmt.Errorf("%w: unknown device %q", ErrDispatch, base.Codename)
	}

	slog.Debug("dispatching local build", "module", req.Module(), "codename", base.Codename)

	switch r := req.(type) {
	case request.Kernel:
		return d.buildKernel(ctx, d.env, device, kernel.Options{
			Codename:   r.Codename,
			LOSVersion: r.LOSVersion,
			Clean:      r.Clean,
		})
	case request.Assets:
		return d.collectAssets(ctx, d.env, device, assets.Options{
			Codename:    r.Codename,
			LOSVersion:  r.LOSVersion,
			Chroot:      r.Chroot,
			Clean:       r.Clean,
			ROMOnly:     r.ROMOnly,
			ExtraAssets: r.ExtraAssets,
		})
	case request.Bundle:
		return d.createBundle(ctx, d.env, device, bundle.Options{
			Codename:    r.Codename,
			LOSVersion:  r.LOSVersion,
			PackageType: r.PackageType,
			ConanUpload: r.ConanUpload,
		})
	default:
		return fmt.Errorf("%w: unhandled request type %T", ErrDispatch, req)
	}
}

// Hands a projected parameter set to the container engine collaborator.
func runContainer(ctx context.Context, e *env.Environment, params container.Parameters) error {
	engine, err := container.NewEngine(params.BuildEnv, e)
	if err != nil {
		return err
	}
	return engine.Run(ctx, params)
}
