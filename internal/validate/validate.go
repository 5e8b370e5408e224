package validate

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/updeshxp/op5-nethunter-kernel/internal/manifest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Facts about the host relevant to validation.
type Facts struct {
	OS     string // Host operating system (runtime.GOOS).
	Debian bool   // Whether a Debian-family package manager is available.
}

// Probes the host for platform facts.
//
// The Debian check is a capability probe: it runs "apt --version" and
// inspects only the exit status.
func HostFacts() Facts {
	return Facts{OS: runtime.GOOS, Debian: hasAPT()}
}

// Returns true if the apt package manager is available on the host.
func hasAPT() bool {
	return exec.Command("apt", "--version").Run() == nil
}

// Checks a build request against platform facts and the device catalog.
//
// Evaluation order is fixed: platform (local builds only), then device
// codename, then command-specific checks. The first violated invariant is
// returned; later checks are not evaluated.
func Check(req request.Request, facts Facts, devices *manifest.DeviceCatalog) error {
	base := req.Base()

	if base.BuildEnv == request.EnvLocal {
		if facts.OS != "linux" {
			return fmt.Errorf("%w: cannot build on a non-Linux machine", ErrUnsupportedPlatform)
		}
		if !facts.Debian {
			return fmt.Errorf("%w: detected Linux distribution is not Debian-based", ErrUnsupportedPlatform)
		}
	}

	if !devices.Supported(base.Codename) {
		return fmt.Errorf("%w: %q", ErrUnsupportedDevice, base.Codename)
	}

	if r, ok := req.(request.Bundle); ok {
		if r.PackageType != request.PackageConan && r.ConanUpload {
			return fmt.Errorf("%w: cannot use Conan-related arguments with non-Conan packaging", ErrInvalidArguments)
		}
	}

	return nil
}
