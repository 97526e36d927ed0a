package cli

import (
	"fmt"

	"github.com/getmockd/shortuuid/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// LengthOutput represents JSON output for the length command.
type LengthOutput struct {
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
	Length   int    `json:"length"`
}

var lengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Show the lossless code length for the active alphabet",
	Long: `Show the minimum code length that can represent any 128-bit UUID in
the active alphabet's base: ceil(log(2^128) / log(size)).`,
	Example: `  shortuuid length
  shortuuid length -a hex`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := activeAlphabet()
		if err != nil {
			return err
		}

		out := LengthOutput{Alphabet: a.String(), Size: a.Len(), Length: a.EncodedLength()}
		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Length)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lengthCmd)
}
