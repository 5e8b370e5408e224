// Provides well-known paths under the build root.
//
// Everything the wrapper reads or produces lives relative to the resolved
// root directory, with one exception: in-flight downloads are staged in an
// XDG cache directory so that a failed transfer never leaves a partial file
// inside the build tree.
package paths
