// Drives the external module toolchain.
//
// The toolchain is an opaque external program with a fixed subcommand
// contract: "go mod download" populates the module cache, "go mod verify"
// checks the cache against the checksum manifest, and "go mod vendor"
// materializes the vendor tree. The [Runner] interface narrows that
// contract to a single call so the orchestrator can be tested against a
// fake without spawning processes.
//
// A non-zero exit code is returned as data, not as an error; the caller
// decides that it is fatal. Calls block until the subprocess exits, with
// no timeout.
package toolchain
