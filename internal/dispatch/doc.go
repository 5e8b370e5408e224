// Package dispatch resolves which build mode a validated request runs in
// and invokes the matching collaborator.
//
// The resolution is terminal in every branch: a containerized environment
// projects the request and hands off to the engine, the local environment
// invokes the kernel, assets, or bundle collaborator directly, and any
// failure unwinds to the top level without retries.
package dispatch
