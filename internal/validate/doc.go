// Package validate enforces the cross-field and platform invariants of a
// build request before anything is dispatched.
//
// Validation is a pure check over the request, the probed host facts, and
// the device catalog. Failures map to one of three sentinel errors and are
// never recovered from: the caller reports the reason and exits.
package validate
