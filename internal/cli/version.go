package cli

import (
	"context"
	"fmt"

	"github.com/updeshxp/op5-nethunter-kernel/internal"
)

// Represents the 'nhbuild version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
