package cli

import (
	"fmt"

	"github.com/getmockd/shortuuid/pkg/cli/internal/output"
	"github.com/getmockd/shortuuid/pkg/shortuuid"
	"github.com/spf13/cobra"
)

// DecodeOutput represents JSON output for one decoded code.
type DecodeOutput struct {
	Short string `json:"short"`
	UUID  string `json:"uuid"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode <code> [<code>...]",
	Short: "Decode short codes back to canonical UUIDs",
	Long: `Decode one or more short codes back to canonical UUID text using the
active alphabet.

The alphabet is not embedded in a code: decoding requires the same
alphabet that produced it. A different alphabet with overlapping
characters yields a different UUID without any error.`,
	Example: `  # Decode a base58 code
  shortuuid decode fkn2bydeDFVvMwv43KGfF3

  # Decode with a custom alphabet
  shortuuid decode -a abcdef1234567890 aaae2beb11ce1fe5d8cb643921fe9dcb`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := activeAlphabet()
		if err != nil {
			return err
		}

		results := make([]DecodeOutput, 0, len(args))
		for _, code := range args {
			u, err := shortuuid.DecodeWithAlphabet(code, a)
			if err != nil {
				return err
			}
			logger.Debug("decoded", "short", code, "uuid", u)
			results = append(results, DecodeOutput{Short: code, UUID: u.String()})
		}

		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), results)
		}
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r.UUID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
