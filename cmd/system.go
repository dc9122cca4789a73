package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// systemCmd represents the system command
var systemCmd = &cobra.Command{
	Use:   "system <ref>",
	Short: "Show a system",
	Long: `Look up a system by its 5-character ID, UUID or a linked Discord
account ID. Use @me for the system of the configured token.`,
	Args: cobra.ExactArgs(1),
	RunE: runSystem,
}

// systemSettingsCmd shows a system's settings
var systemSettingsCmd = &cobra.Command{
	Use:   "settings <ref>",
	Short: "Show a system's settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runSystemSettings,
}

func init() {
	systemCmd.AddCommand(systemSettingsCmd)
	rootCmd.AddCommand(systemCmd)
}

func runSystem(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	system, err := client.GetSystem(ctx, args[0])
	if err != nil {
		return err
	}
	if system == nil {
		fmt.Printf("No system found for reference %q.\n", args[0])
		return nil
	}

	fmt.Printf("%s [%s]\n", system.Name, system.ID)
	if system.Tag != "" {
		fmt.Printf("  Tag: %s\n", system.Tag)
	}
	if system.Pronouns != nil {
		fmt.Printf("  Pronouns: %s\n", *system.Pronouns)
	}
	if system.Color != nil {
		fmt.Printf("  Color: #%s\n", *system.Color)
	}
	fmt.Printf("  Created: %s\n", system.Created.Format("2006-01-02"))
	if system.Description != nil {
		fmt.Printf("  Description: %s\n", *system.Description)
	}

	return nil
}

func runSystemSettings(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := client.GetSystemSettings(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Timezone: %s\n", settings.Timezone)
	fmt.Printf("Pings enabled: %v\n", settings.PingsEnabled)
	if settings.LatchTimeout != nil {
		fmt.Printf("Latch timeout: %ds\n", *settings.LatchTimeout)
	}
	fmt.Printf("Members private by default: %v\n", settings.MemberDefaultPrivate)
	fmt.Printf("Groups private by default: %v\n", settings.GroupDefaultPrivate)
	fmt.Printf("Member limit: %d\n", settings.MemberLimit)
	fmt.Printf("Group limit: %d\n", settings.GroupLimit)

	return nil
}
