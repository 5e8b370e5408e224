package container

import (
	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Fixed set of field names that may cross into a containerized
// re-invocation. Anything a request carries beyond these stays on the host.
var AllowedFields = []string{
	"buildenv",
	"build_module",
	"codename",
	"losversion",
	"clean_image",
	"chroot",
	"package_type",
	"clean_kernel",
	"clean_assets",
	"rom_only",
	"extra_assets",
	"conan_upload",
}

// The allow-listed subset of a build request forwarded into a containerized
// re-invocation.
//
// Host-only settings (log level, output log path) have no field here and
// cannot cross, no matter how the request types grow.
type Parameters struct {
	BuildEnv    request.BuildEnv
	BuildModule string
	Codename    string
	LOSVersion  string
	CleanImage  bool
	Chroot      request.Chroot      // Assets builds only.
	PackageType request.PackageType // Bundle builds only.
	CleanKernel bool                // Kernel builds only.
	CleanAssets bool                // Assets builds only.
	ROMOnly     bool                // Assets builds only.
	ExtraAssets string              // Assets builds only.
	ConanUpload bool                // Bundle builds only.
}

// Computes the parameters forwarded for a request.
//
// BuildModule is always the resolved command name. Each request variant
// contributes only its own fields; everything else stays at its zero value
// and is omitted from [Parameters.Fields] and [Parameters.Args].
func Project(req request.Request) Parameters {
	base := req.Base()
	p := Parameters{
		BuildEnv:    base.BuildEnv,
		BuildModule: req.Module(),
		Codename:    base.Codename,
		LOSVersion:  base.LOSVersion,
		CleanImage:  base.CleanImage,
	}

	switch r := req.(type) {
	case request.Kernel:
		p.CleanKernel = r.Clean
	case request.Assets:
		p.Chroot = r.Chroot
		p.CleanAssets = r.Clean
		p.ROMOnly = r.ROMOnly
		p.ExtraAssets = r.ExtraAssets
	case request.Bundle:
		p.PackageType = r.PackageType
		p.ConanUpload = r.ConanUpload
	}

	return p
}

// Returns the populated parameter set keyed by wire name.
//
// Common fields are always present. Module-specific fields appear only for
// the module that populates them, and optional ones only when set.
func (p Parameters) Fields() map[string]any {
	fields := map[string]any{
		"buildenv":     string(p.BuildEnv),
		"build_module": p.BuildModule,
		"codename":     p.Codename,
		"losversion":   p.LOSVersion,
		"clean_image":  p.CleanImage,
	}

	switch p.BuildModule {
	case "kernel":
		if p.CleanKernel {
			fields["clean_kernel"] = true
		}
	case "assets":
		fields["chroot"] = string(p.Chroot)
		fields["rom_only"] = p.ROMOnly
		if p.CleanAssets {
			fields["clean_assets"] = true
		}
		if p.ExtraAssets != "" {
			fields["extra_assets"] = p.ExtraAssets
		}
	case "bundle":
		fields["package_type"] = string(p.PackageType)
		fields["conan_upload"] = p.ConanUpload
	}

	return fields
}

// Renders the re-invocation command line executed inside the container.
//
// The inner build always runs in the local environment. Image cleanup stays
// on the host side, where the engine removes the image after the run.
func (p Parameters) Args() []string {
	args := []string{p.BuildModule, string(request.EnvLocal), p.LOSVersion, p.Codename}

	switch p.BuildModule {
	case "kernel":
		if p.CleanKernel {
			args = append(args, "--clean")
		}
	case "assets":
		args = append(args, string(p.Chroot))
		if p.ROMOnly {
			args = append(args, "--rom-only")
		}
		if p.CleanAssets {
			args = append(args, "--clean")
		}
		if p.ExtraAssets != "" {
			args = append(args, "--extra-assets", p.ExtraAssets)
		}
	case "bundle":
		args = append(args, string(p.PackageType))
		if p.ConanUpload {
			args = append(args, "--conan-upload")
		}
	}

	return args
}
