package cli

import (
	"fmt"

	"github.com/getmockd/shortuuid/pkg/cli/internal/output"
	"github.com/getmockd/shortuuid/pkg/shortuuid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	newCount  int
	newLength int
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate random short UUIDs",
	Long: `Generate random (version 4) UUIDs and print them encoded with the
active alphabet.`,
	Example: `  # One random short UUID
  shortuuid new

  # Five at once, hex alphabet
  shortuuid new -n 5 -a hex`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := activeAlphabet()
		if err != nil {
			return err
		}
		if newCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", newCount)
		}

		length := newLength
		if !cmd.Flags().Changed("length") {
			length = -1
		}

		results := make([]EncodeOutput, 0, newCount)
		for i := 0; i < newCount; i++ {
			u := uuid.New()
			s := shortuuid.EncodeWithAlphabet(u, a, length)
			logger.Debug("generated", "uuid", u, "short", s)
			results = append(results, EncodeOutput{UUID: u.String(), Short: s.String(), Length: s.Len()})
		}

		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), results)
		}
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r.Short)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().IntVarP(&newCount, "count", "n", 1, "Number of short UUIDs to generate")
	newCmd.Flags().IntVarP(&newLength, "length", "l", 0, "Exact output length (default: lossless length for the alphabet)")
	rootCmd.AddCommand(newCmd)
}
