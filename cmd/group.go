package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var withMembers bool

// groupCmd represents the group command
var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Look up system groups",
}

var groupListCmd = &cobra.Command{
	Use:   "list <system>",
	Short: "List a system's groups",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupList,
}

var groupGetCmd = &cobra.Command{
	Use:   "get <ref>",
	Short: "Show a group and its members",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupGet,
}

func init() {
	groupListCmd.Flags().BoolVar(&withMembers, "with-members", false, "include member counts")

	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupGetCmd)
	rootCmd.AddCommand(groupCmd)
}

func runGroupList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	groups, err := client.GetSystemGroups(ctx, args[0], withMembers)
	if err != nil {
		return err
	}
	if groups == nil {
		fmt.Printf("No system found for reference %q.\n", args[0])
		return nil
	}
	if len(groups) == 0 {
		fmt.Println("No groups found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	header := table.Row{"ID", "Name", "Display Name", "Created"}
	if withMembers {
		header = append(header, "Members")
	}
	t.AppendHeader(header)
	for _, g := range groups {
		row := table.Row{g.ID, g.Name, deref(g.DisplayName), g.Created.Format("2006-01-02")}
		if withMembers {
			row = append(row, len(g.Members))
		}
		t.AppendRow(row)
	}
	t.Render()

	fmt.Printf("\n%d groups\n", len(groups))
	return nil
}

func runGroupGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	group, err := client.GetGroup(ctx, args[0])
	if err != nil {
		return err
	}
	if group == nil {
		fmt.Printf("No group found for reference %q.\n", args[0])
		return nil
	}

	fmt.Printf("%s [%s]\n", group.Name, group.ID)
	if group.DisplayName != nil {
		fmt.Printf("  Display name: %s\n", *group.DisplayName)
	}
	if group.Description != nil {
		fmt.Printf("  Description: %s\n", *group.Description)
	}
	fmt.Printf("  Created: %s\n", group.Created.Format("2006-01-02"))

	members, err := client.GetGroupMembers(ctx, args[0])
	if err != nil {
		return err
	}
	if len(members) > 0 {
		fmt.Println("  Members:")
		for _, m := range members {
			fmt.Printf("    • %s [%s]\n", m.Name, m.ID)
		}
	}

	return nil
}
