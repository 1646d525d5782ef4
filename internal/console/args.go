package console

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(name, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: positive integer expected", name, arg)
	}
	return id, nil
}

func requiredInt64Flag(cmd *cobra.Command, target *int64, name, usage string) {
	cmd.Flags().Int64Var(target, name, 0, usage)
	_ = cmd.MarkFlagRequired(name)
}
