package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
)

// A downloadable asset attached to a device descriptor.
type Asset struct {
	URL    string        `json:"url"`
	Digest digest.Digest `json:"digest,omitempty"` // Expected content digest, empty to skip verification.
}

// Descriptor of a supported target device.
type Device struct {
	Arch      string  `json:"arch"`             // Target CPU architecture (e.g., "arm64").
	Defconfig string  `json:"defconfig"`        // Kernel defconfig name for the device.
	ROM       string  `json:"rom"`              // ROM download URL template.
	Assets    []Asset `json:"assets,omitempty"` // Additional assets collected for the device.
}

// Read-only set of supported devices, keyed by codename.
//
// Loaded once from the devices manifest and never mutated afterwards.
type DeviceCatalog struct {
	devices map[string]Device
}

// Loads the device catalog from a JSON manifest keyed by codename.
func LoadDevices(path string) (*DeviceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	devices := make(map[string]Device)
	if err := json.Unmarshal(data, &devices); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifest, path, err)
	}

	return &DeviceCatalog{devices: devices}, nil
}

// Returns true if the codename belongs to a supported device.
func (c *DeviceCatalog) Supported(codename string) bool {
	_, ok := c.devices[codename]
	return ok
}

// Looks up the descriptor for a device codename.
func (c *DeviceCatalog) Get(codename string) (Device, bool) {
	device, ok := c.devices[codename]
	return device, ok
}

// Product name and version, read from the product manifest.
type Product struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Loads product metadata from a JSON manifest.
func LoadProduct(path string) (Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return Product{}, fmt.Errorf("%w: %s: %w", ErrManifest, path, err)
	}

	if product.Name == "" || product.Version == "" {
		return Product{}, fmt.Errorf("%w: %s: missing name or version", ErrManifest, path)
	}

	return product, nil
}
