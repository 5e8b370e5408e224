// Package manifest loads the static JSON manifests shipped with the build
// root: the device catalog (codename to device descriptor) and the product
// metadata (name and version).
//
// Both manifests are read-only inputs resolved relative to the build root.
// A missing or unparseable manifest is a fatal configuration error; callers
// are not expected to recover from ErrManifest.
package manifest
