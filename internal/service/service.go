package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/sebd71/obs-service-go-modules/internal/codec"
	"github.com/sebd71/obs-service-go-modules/internal/locate"
	"github.com/sebd71/obs-service-go-modules/internal/paths"
	"github.com/sebd71/obs-service-go-modules/internal/tarball"
	"github.com/sebd71/obs-service-go-modules/internal/toolchain"
)

// The strategy that performs the vendoring pipeline.
const StrategyVendor = "vendor"

// Toolchain subcommands in their required order. Verify must run between
// download and vendor; reordering would package unverified sources.
var pipeline = []toolchain.Op{toolchain.OpDownload, toolchain.OpVerify, toolchain.OpVendor}

// Controls a service run. Built once from parsed flags and never mutated.
type Options struct {
	Strategy    string           // Requested pipeline behavior.
	Archive     string           // Explicit archive path; autodetected when empty.
	Outdir      string           // Destination for extraction and the artifact; XDG fallback when empty.
	Compression string           // Compression mode identifier (e.g. "gz").
	Dir         string           // Working directory for autodetection. Defaults to ".".
	Tool        toolchain.Runner // Module toolchain. Defaults to the real "go" binary.
}

// Returned after a successful run.
type Result struct {
	Artifact string        // Path of the produced vendor artifact, empty for no-op strategies.
	Digest   digest.Digest // Digest of the artifact as written.
}

// Executes the pipeline selected by the strategy.
//
// The compression mode is validated before any file is touched. Strategies
// other than "vendor" return immediately with an empty result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Strategy != StrategyVendor {
		slog.Info("strategy performs no vendoring", "strategy", opts.Strategy)
		return &Result{}, nil
	}

	c, err := codec.Parse(opts.Compression)
	if err != nil {
		return nil, err
	}

	return newRun(opts, c).execute(ctx)
}

// Holds resolved state for a single vendor run.
type run struct {
	codec   codec.Codec
	dir     string
	archive string
	outdir  string
	tool    toolchain.Runner
}

// Creates a [run] from the given options, filling in defaults.
func newRun(opts Options, c codec.Codec) *run {
	r := &run{
		codec:   c,
		dir:     opts.Dir,
		archive: opts.Archive,
		outdir:  opts.Outdir,
		tool:    opts.Tool,
	}
	if r.dir == "" {
		r.dir = "."
	}
	if r.outdir == "" {
		r.outdir = paths.DefaultOutdir()
		slog.Debug("no output directory given, using fallback", "outdir", r.outdir)
	}
	if r.tool == nil {
		r.tool = toolchain.New()
	}
	return r
}

// Runs the vendor pipeline end-to-end.
//
// Cleanup of the extracted source tree is best-effort: by the time it runs
// the artifact already exists, so its failures are logged but do not fail
// the run.
func (r *run) execute(ctx context.Context) (*Result, error) {
	if err := r.resolveArchive(); err != nil {
		return nil, err
	}

	slog.Info("vendoring module dependencies",
		"archive", r.archive,
		"outdir", r.outdir,
		"compression", r.codec.String(),
	)

	if err := tarball.Extract(ctx, r.archive, r.outdir, r.codec); err != nil {
		return nil, err
	}

	moduleRoot, err := locate.Manifest(r.outdir)
	if err != nil {
		return nil, err
	}
	slog.Info("module root found", "dir", moduleRoot)

	if !locate.HasChecksum(moduleRoot) {
		slog.Warn("checksum manifest missing, verification will fail", "dir", moduleRoot)
	}

	for _, op := range pipeline {
		if err := r.runStep(ctx, op, moduleRoot); err != nil {
			return nil, err
		}
	}

	artifact := filepath.Join(r.outdir, tarball.VendorRoot+"."+r.codec.Extension())
	dgst, err := tarball.Pack(filepath.Join(moduleRoot, tarball.VendorRoot), artifact, r.codec)
	if err != nil {
		return nil, err
	}
	slog.Info("vendor artifact written", "artifact", artifact, "digest", dgst)

	if outcome, err := r.cleanup(); err != nil {
		slog.Error("cleanup failed", "error", err)
	} else if outcome == CleanupNotFound {
		slog.Error("extracted source tree already missing", "dir", r.extractedDir())
	}

	return &Result{Artifact: artifact, Digest: dgst}, nil
}

// Resolves the source archive, autodetecting it when none was given.
//
// Autodetection also cross-checks the descriptor's declared version against
// the archive name. A mismatch flags a stale archive but never fails the
// run.
func (r *run) resolveArchive() error {
	if r.archive != "" {
		return nil
	}

	ref, err := locate.Archive(r.dir, r.codec.Extension())
	if err != nil {
		return err
	}
	r.archive = ref.Archive

	declared, consistent, err := locate.CheckVersion(ref.Descriptor, ref.Archive)
	if err != nil {
		slog.Warn("version consistency check skipped", "error", err)
	} else if !consistent {
		slog.Warn("descriptor version not found in archive name",
			"declared", declared,
			"archive", filepath.Base(ref.Archive),
		)
	}

	return nil
}

// Runs a single toolchain subcommand against the module root.
//
// Stdout is surfaced at info level. A non-zero exit is fatal: stderr is
// logged and the run aborts so no partial vendor state is ever packaged.
func (r *run) runStep(ctx context.Context, op toolchain.Op, moduleRoot string) error {
	result, err := r.tool.Run(ctx, op, moduleRoot)
	if err != nil {
		return err
	}

	if out := strings.TrimSpace(result.Stdout); out != "" {
		slog.Info("toolchain output", "op", op, "output", out)
	}

	if result.ExitCode != 0 {
		slog.Error("toolchain subcommand failed",
			"op", op,
			"exit_code", result.ExitCode,
			"stderr", strings.TrimSpace(result.Stderr),
		)
		return fmt.Errorf("%w: go mod %s: exit code %d", ErrVendor, op, result.ExitCode)
	}

	return nil
}
