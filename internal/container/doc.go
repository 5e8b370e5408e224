// Package container projects a build request onto the fixed parameter
// allow-list and re-invokes the wrapper inside a docker or podman container.
//
// Projection is typed: Parameters declares exactly the allow-listed fields,
// so the re-invocation can never receive unrecognized or host-only settings
// regardless of how the request types evolve. The engine side is a narrow
// collaborator that shells out to the selected executable; image lifecycle
// beyond build-if-missing and optional removal is out of its hands.
package container
