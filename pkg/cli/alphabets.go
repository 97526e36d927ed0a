package cli

import (
	"fmt"
	"sort"

	"github.com/getmockd/shortuuid/pkg/cli/internal/output"
	"github.com/getmockd/shortuuid/pkg/config"
	"github.com/getmockd/shortuuid/pkg/shortuuid"
	"github.com/spf13/cobra"
)

// AlphabetOutput represents JSON output for one alphabet profile.
type AlphabetOutput struct {
	Name       string `json:"name"`
	Source     string `json:"source"` // builtin or config
	Size       int    `json:"size"`
	Length     int    `json:"length"`
	Characters string `json:"characters"`
}

var alphabetsCmd = &cobra.Command{
	Use:   "alphabets",
	Short: "List built-in and configured alphabet profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []AlphabetOutput

		for _, name := range config.BuiltinProfiles() {
			if _, shadowed := cfg.Alphabets[name]; shadowed {
				continue
			}
			chars, _ := config.LookupProfile(name)
			results = append(results, profileRow(name, "builtin", chars))
		}

		names := make([]string, 0, len(cfg.Alphabets))
		for name := range cfg.Alphabets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			results = append(results, profileRow(name, "config", cfg.Alphabets[name]))
		}

		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), results)
		}

		w := output.Table(cmd.OutOrStdout())
		fmt.Fprintln(w, "NAME\tSOURCE\tSIZE\tLENGTH\tCHARACTERS")
		for _, r := range results {
			length := "-"
			if r.Length > 0 {
				length = fmt.Sprintf("%d", r.Length)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.Name, r.Source, r.Size, length, r.Characters)
		}
		return w.Flush()
	},
}

// profileRow builds one listing row. Invalid configured alphabets are
// listed with length 0 rather than failing the whole listing.
func profileRow(name, source, chars string) AlphabetOutput {
	row := AlphabetOutput{Name: name, Source: source, Size: len([]rune(chars)), Characters: chars}
	if a, err := shortuuid.NewAlphabet(chars); err == nil {
		row.Length = a.EncodedLength()
	} else {
		output.Warn("profile %q: %v", name, err)
	}
	return row
}

func init() {
	rootCmd.AddCommand(alphabetsCmd)
}
