// Package fileops provides the generic transfer primitives shared by the
// build collaborators: local copies, blocking HTTP downloads, and tarball
// creation.
//
// Downloads stage into a cache-backed scratch file and move to their
// destination only once fully received (and digest-verified when the source
// declares one), so a failed transfer never leaves partial output behind.
// All failures surface as ErrTransfer and are fatal to the run.
package fileops
