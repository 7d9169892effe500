// Parses flags and configures logging for the go_modules service.
//
// The service accepts the following flags:
//
//	-q, --quiet      Suppress informational output.
//	-v, --verbose    Enable verbose output.
//	-d, --debug      Enable debug output.
//	--strategy       Pipeline behavior (default "vendor").
//	--archive        Explicit source archive path.
//	--outdir         Output directory for the vendor artifact.
//	--compression    Compression mode (default "gz").
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// pipeline runs.
package cli
