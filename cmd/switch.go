package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	switchesBefore string
	switchesLimit  int
)

// switchesCmd represents the switches command
var switchesCmd = &cobra.Command{
	Use:   "switches <system>",
	Short: "Show a system's switch history",
	Long: `Show one page of a system's switch history, newest first. Page
through older history by passing the timestamp of the last listed switch
via --before.`,
	Args: cobra.ExactArgs(1),
	RunE: runSwitches,
}

// frontersCmd represents the fronters command
var frontersCmd = &cobra.Command{
	Use:   "fronters <system>",
	Short: "Show a system's current fronters",
	Args:  cobra.ExactArgs(1),
	RunE:  runFronters,
}

func init() {
	switchesCmd.Flags().StringVar(&switchesBefore, "before", "", "only show switches before this RFC3339 timestamp")
	switchesCmd.Flags().IntVar(&switchesLimit, "limit", 20, "maximum number of switches to show")

	rootCmd.AddCommand(switchesCmd)
	rootCmd.AddCommand(frontersCmd)
}

func runSwitches(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var before time.Time
	if switchesBefore != "" {
		var err error
		before, err = time.Parse(time.RFC3339, switchesBefore)
		if err != nil {
			return fmt.Errorf("invalid --before timestamp: %w", err)
		}
	}

	switches, err := client.GetSwitches(ctx, args[0], before, switchesLimit)
	if err != nil {
		return err
	}
	if switches == nil {
		fmt.Printf("No system found for reference %q.\n", args[0])
		return nil
	}
	if len(switches) == 0 {
		fmt.Println("No switches found.")
		return nil
	}

	for _, sw := range switches {
		members := "none"
		if len(sw.Members) > 0 {
			members = strings.Join(sw.Members, ", ")
		}
		fmt.Printf("%s  %s\n", sw.Timestamp.Local().Format("2006-01-02 15:04"), members)
	}
	fmt.Printf("\n%d switches; use --before %s for older history\n",
		len(switches), switches[len(switches)-1].Timestamp.UTC().Format(time.RFC3339))
	return nil
}

func runFronters(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fronters, err := client.GetFronters(ctx, args[0])
	if err != nil {
		return err
	}
	if fronters == nil {
		fmt.Println("No fronters registered.")
		return nil
	}

	fmt.Printf("Fronting since %s:\n", fronters.Timestamp.Local().Format("2006-01-02 15:04"))
	for _, m := range fronters.Members {
		fmt.Printf("  • %s [%s]\n", m.Name, m.ID)
	}
	return nil
}
