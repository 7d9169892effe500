package cli

import (
	"context"
	"fmt"

	"github.com/sebd71/obs-service-go-modules/internal/buildinfo"
)

// Represents the 'go_modules version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(buildinfo.VersionString())
	return nil
}
