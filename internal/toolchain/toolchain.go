// Package toolchain runs the external project initializers.
package toolchain

import (
	"context"

	oerrors "github.com/solanainit/cli/internal/errors"
	"github.com/solanainit/cli/internal/runner"
)

// Run invokes name through r. Any spawn failure or non-zero exit is reported
// as a CommandError labelled with label (e.g. "cargo init").
func Run(ctx context.Context, r runner.CommandRunner, label, name string, args []string, dir string) error {
	if err := r.Run(ctx, name, args, dir); err != nil {
		return oerrors.NewCommandError(label, err)
	}
	return nil
}
