package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xolan/devjournal/internal/cli/handlers"
	"github.com/xolan/devjournal/internal/fake"
	"github.com/xolan/devjournal/internal/service"
)

// newGenerator builds the generator used by populate. Tests replace it.
var newGenerator = func() fake.Generator {
	return fake.New(0)
}

// populateCmd represents the populate command
var populateCmd = &cobra.Command{
	Use:   "populate <n>",
	Short: "Add generated entries",
	Long: fmt.Sprintf(`Add n entries with generated titles, content and tags (at most %d).

Generated titles that already exist are skipped and retried.

Example:
  journal populate 10`, service.MaxPopulate),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid number of items %q", args[0])
		}
		handlers.Populate(deps, n, newGenerator())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(populateCmd)
}
