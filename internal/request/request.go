package request

// Execution environment for a build.
type BuildEnv string

const (
	EnvLocal  BuildEnv = "local"
	EnvDocker BuildEnv = "docker"
	EnvPodman BuildEnv = "podman"
)

// Returns true if the build must run inside a container engine.
func (e BuildEnv) Containerized() bool {
	return e == EnvDocker || e == EnvPodman
}

// Flavor of the auxiliary root filesystem collected with the assets.
type Chroot string

const (
	ChrootFull    Chroot = "full"
	ChrootMinimal Chroot = "minimal"
)

// Packaging format for bundled build outputs.
type PackageType string

const (
	PackageConan       PackageType = "conan"
	PackageGenericSlim PackageType = "generic-slim"
)

// Fields shared by every build request.
type Common struct {
	BuildEnv   BuildEnv // Where the build runs: local host or a container engine.
	LOSVersion string   // Target OS distribution version.
	Codename   string   // Target device codename.
	CleanImage bool     // Remove the engine image from the host after the build.
}

// A parsed build command. Each variant carries only its own fields and is
// immutable once constructed.
type Request interface {

	// Name of the build module the request selects ("kernel", "assets",
	// "bundle").
	Module() string

	// Fields shared by all request variants.
	Base() Common
}

// Request to build the kernel.
type Kernel struct {
	Common
	Clean bool // Clean the kernel workspace instead of building.
}

func (Kernel) Module() string { return "kernel" }

func (r Kernel) Base() Common { return r.Common }

// Request to collect device and ROM assets.
type Assets struct {
	Common
	Chroot      Chroot // Auxiliary rootfs flavor to collect.
	ExtraAssets string // Optional path to a JSON manifest of extra assets.
	ROMOnly     bool   // Collect only the ROM.
	Clean       bool   // Recreate the assets directory if it already exists.
}

func (Assets) Module() string { return "assets" }

func (r Assets) Base() Common { return r.Common }

// Request to bundle build artifacts into a distributable package.
type Bundle struct {
	Common
	PackageType PackageType // Bundle packaging format.
	ConanUpload bool        // Upload Conan packages to the remote after bundling.
}

func (Bundle) Module() string { return "bundle" }

func (r Bundle) Base() Common { return r.Common }
