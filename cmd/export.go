package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <system>",
	Short: "Export a system's records as JSON",
	Long: `Fetch a system together with its members, groups and current fronters
and write the bundle as JSON to stdout or a file. Only records visible to
the client are included.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger.Info().Str("system", args[0]).Msg("Exporting system")

	export, err := client.ExportSystem(ctx, args[0])
	if err != nil {
		return err
	}
	if export == nil {
		return fmt.Errorf("no system found for reference %q", args[0])
	}

	encoded, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	encoded = append(encoded, '\n')

	if exportOutput == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}

	if err := os.WriteFile(exportOutput, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	logger.Info().
		Str("path", exportOutput).
		Int("members", len(export.Members)).
		Int("groups", len(export.Groups)).
		Msg("Export written")
	return nil
}
