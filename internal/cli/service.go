package cli

import (
	"context"
	"log/slog"

	"github.com/sebd71/obs-service-go-modules/internal/service"
)

// Represents the default 'go_modules service' command.
type ServiceCmd struct {
	Strategy    string `help:"Pipeline behavior. Only \"vendor\" vendors dependencies." default:"vendor"`
	Archive     string `help:"Path to the source archive. Autodetected from the package descriptor when omitted." placeholder:"PATH"`
	Outdir      string `help:"Directory for extraction and the vendor artifact." placeholder:"DIR"`
	Compression string `help:"Compression mode for the vendor artifact (tar, gz, zstd, lz4)." default:"gz"`
}

// Executes the service command.
//
// Builds the immutable pipeline options from the parsed flags and runs the
// pipeline to completion. Blocks until every stage finished or one failed.
func (c *ServiceCmd) Run(ctx context.Context) error {
	result, err := service.Run(ctx, service.Options{
		Strategy:    c.Strategy,
		Archive:     c.Archive,
		Outdir:      c.Outdir,
		Compression: c.Compression,
	})
	if err != nil {
		return err
	}

	if result.Artifact != "" {
		slog.Info("vendoring complete", "artifact", result.Artifact)
	}
	return nil
}
