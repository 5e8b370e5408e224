// Parses the wrapper's command line into typed build requests.
//
// The grammar has three build subcommands, each mapping to one request
// variant:
//
//	kernel <buildenv> <losversion> <codename>
//	assets <buildenv> <losversion> <codename> <chroot>
//	bundle <buildenv> <losversion> <codename> <package_type>
//
// plus a top-level --clean flag that wipes the build root and exits without
// touching manifests or validation. Invoking the wrapper without arguments
// shows help. After parsing, the selected command establishes the process
// environment, validates the request, and hands it to the dispatcher.
package cli
