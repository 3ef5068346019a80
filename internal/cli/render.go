package cli

import (
	"errors"
	"fmt"

	"github.com/adnsv/go-xlbuilder/internal/manifest"
	"github.com/adnsv/go-xlbuilder/xl"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <manifest.yaml>",
	Short: "Render a workbook manifest to xlsx",
	Long: `Render builds the workbook described by a YAML manifest and writes it as
an xlsx file. With --dir the package parts are written unpacked instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return fmt.Errorf("failed to get dir flag: %w", err)
		}
		if (out == "") == (dir == "") {
			return errors.New("exactly one of --output or --dir is required")
		}

		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		wb, err := m.Build()
		if err != nil {
			return err
		}

		target := out
		if dir != "" {
			target = dir
			err = xl.NewWriter(xl.NewDirStorage(dir)).Write(wb)
		} else {
			err = xl.SaveFile(wb, out)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d sheets, %d styles\n",
			target, len(wb.Sheets), wb.Styles().Len())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output xlsx file")
	renderCmd.Flags().StringP("dir", "d", "", "Write unpacked parts into this directory")
	rootCmd.AddCommand(renderCmd)
}
