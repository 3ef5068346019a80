package cli

import (
	"fmt"
	"io"

	"github.com/adnsv/go-xlbuilder/xl"
	"github.com/spf13/cobra"
)

var refCmd = &cobra.Command{
	Use:   "ref <reference>...",
	Short: "Classify A1 references",
	Long: `Ref prints the kind of each reference with its zero-based coordinates.
Ranges are shown normalized; --expand lists every enclosed address.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expand, err := cmd.Flags().GetBool("expand")
		if err != nil {
			return fmt.Errorf("failed to get expand flag: %w", err)
		}
		w := cmd.OutOrStdout()
		for _, text := range args {
			describeRef(w, text, expand)
		}
		return nil
	},
}

func describeRef(w io.Writer, text string, expand bool) {
	switch xl.ClassifyReference(text) {
	case xl.KindAddress:
		a, _ := xl.ParseAddress(text)
		fmt.Fprintf(w, "%s\taddress\tcol=%d row=%d type=%s\n", text, a.Column(), a.Row(), a.Type())
	case xl.KindRange:
		r, _ := xl.ParseRange(text)
		fmt.Fprintf(w, "%s\trange\t%s %dx%d\n", text, r, r.Columns(), r.Rows())
		if expand {
			for a := range r.All() {
				fmt.Fprintf(w, "  %s\n", a)
			}
		}
	default:
		fmt.Fprintf(w, "%s\tinvalid\n", text)
	}
}

func init() {
	refCmd.Flags().BoolP("expand", "e", false, "List every address of a range")
	rootCmd.AddCommand(refCmd)
}
