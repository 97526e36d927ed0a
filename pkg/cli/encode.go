package cli

import (
	"fmt"

	"github.com/getmockd/shortuuid/pkg/cli/internal/output"
	"github.com/getmockd/shortuuid/pkg/shortuuid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var encodeLength int

// EncodeOutput represents JSON output for one encoded UUID.
type EncodeOutput struct {
	UUID   string `json:"uuid"`
	Short  string `json:"short"`
	Length int    `json:"length"`
}

var encodeCmd = &cobra.Command{
	Use:   "encode <uuid> [<uuid>...]",
	Short: "Encode canonical UUIDs as short codes",
	Long: `Encode one or more UUIDs (canonical 36-character hyphenated form)
as short codes using the active alphabet.

Without --length the output is the alphabet's lossless length, which
round-trips exactly. An explicit shorter length truncates high-order bits
and does not decode back to the original UUID.`,
	Example: `  # Encode with the default base58 alphabet (22 characters)
  shortuuid encode 123e4567-e89b-12d3-a456-426614174000

  # Encode with a literal 16-character alphabet
  shortuuid encode -a abcdef1234567890 123e4567-e89b-12d3-a456-426614174000

  # Lossy 10-character code
  shortuuid encode --length 10 123e4567-e89b-12d3-a456-426614174000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := activeAlphabet()
		if err != nil {
			return err
		}

		length := encodeLength
		if !cmd.Flags().Changed("length") {
			length = -1 // lossless default for this alphabet
		}

		results := make([]EncodeOutput, 0, len(args))
		for _, arg := range args {
			u, err := uuid.Parse(arg)
			if err != nil {
				return fmt.Errorf("invalid UUID %q: %w", arg, err)
			}
			s := shortuuid.EncodeWithAlphabet(u, a, length)
			logger.Debug("encoded", "uuid", u, "short", s, "length", s.Len())
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
	encodeCmd.Flags().IntVarP(&encodeLength, "length", "l", 0, "Exact output length (default: lossless length for the alphabet)")
	rootCmd.AddCommand(encodeCmd)
}
