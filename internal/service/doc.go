// Orchestrates the vendoring pipeline.
//
// A run is a single-shot, fully sequential sequence: locate (or accept) the
// source archive, extract it into the output directory, find the module
// root, drive the toolchain through download, verify, and vendor, package
// the vendor tree into a compressed artifact, and remove the extracted
// source tree. Each stage must succeed before the next begins; any failure
// aborts the run, so a vendor artifact exists only when the whole pipeline
// completed. Verification runs before vendoring by design: it keeps
// tampered or corrupted dependency sources out of the artifact.
//
// Only the "vendor" strategy performs work. Other strategy values are
// accepted at the configuration layer and return without touching the
// filesystem.
//
// Example usage:
//
//	result, err := service.Run(ctx, service.Options{
//	    Strategy:    "vendor",
//	    Outdir:      "out",
//	    Compression: "gz",
//	})
//	if err != nil {
//	    return err
//	}
package service
