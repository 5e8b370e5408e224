// Package request defines the typed build request variants produced by the
// CLI and consumed by validation, dispatch, and container projection.
//
// Each subcommand maps to exactly one variant (Kernel, Assets, Bundle), and
// each variant carries only the fields its build module accepts. Downstream
// code switches on the concrete type instead of inspecting a generic
// key/value container.
package request
