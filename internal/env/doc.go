// Package env establishes the process-wide state for a build run: the build
// root, the effective log verbosity, product metadata, and optional log file
// redirection.
//
// The Environment value is constructed once, before validation and dispatch,
// and treated as read-only for the rest of the process. There is no ambient
// global state: every collaborator receives the Environment by reference.
package env
