package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/s0up4200/pluralkit-go/filter"
)

// memberCmd represents the member command
var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Look up system members",
}

var memberListCmd = &cobra.Command{
	Use:   "list <system>",
	Short: "List a system's members",
	Long: `List the members of a system that are visible to the client,
optionally narrowed by a filter expression such as:

  pkctl member list exmpl --filter 'Name contains "al"'
  pkctl member list @me --filter 'daysSince(Created) < 30'`,
	Args: cobra.ExactArgs(1),
	RunE: runMemberList,
}

var memberGetCmd = &cobra.Command{
	Use:   "get <ref>",
	Short: "Show a member",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemberGet,
}

var memberGroupsCmd = &cobra.Command{
	Use:   "groups <ref>",
	Short: "List the groups a member belongs to",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemberGroups,
}

func init() {
	memberListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	memberListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	memberCmd.AddCommand(memberListCmd)
	memberCmd.AddCommand(memberGetCmd)
	memberCmd.AddCommand(memberGroupsCmd)
	rootCmd.AddCommand(memberCmd)
}

func runMemberList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	members, err := client.GetSystemMembers(ctx, args[0])
	if err != nil {
		return err
	}
	if members == nil {
		fmt.Printf("No system found for reference %q.\n", args[0])
		return nil
	}

	// Apply filter if one was given
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		members, err = f.Members(members)
		if err != nil {
			return err
		}
	}

	if len(members) == 0 {
		fmt.Println("No members found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "Display Name", "Pronouns", "Birthday", "Created"})
	for _, m := range members {
		birthday := ""
		if m.Birthday != nil {
			birthday = m.Birthday.String()
		}
		t.AppendRow(table.Row{
			m.ID, m.Name, deref(m.DisplayName), deref(m.Pronouns),
			birthday, m.Created.Format("2006-01-02"),
		})
	}
	t.Render()

	fmt.Printf("\n%d members\n", len(members))
	return nil
}

func runMemberGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	member, err := client.GetMember(ctx, args[0])
	if err != nil {
		return err
	}
	if member == nil {
		fmt.Printf("No member found for reference %q.\n", args[0])
		return nil
	}

	fmt.Printf("%s [%s]\n", member.Name, member.ID)
	if member.DisplayName != nil {
		fmt.Printf("  Display name: %s\n", *member.DisplayName)
	}
	if member.Pronouns != nil {
		fmt.Printf("  Pronouns: %s\n", *member.Pronouns)
	}
	if member.Birthday != nil {
		fmt.Printf("  Birthday: %s\n", member.Birthday.String())
	}
	if member.Color != nil {
		fmt.Printf("  Color: #%s\n", *member.Color)
	}
	fmt.Printf("  Created: %s\n", member.Created.Format("2006-01-02"))
	for _, tag := range member.ProxyTags {
		fmt.Printf("  Proxy: %stext%s\n", deref(tag.Prefix), deref(tag.Suffix))
	}
	if member.Description != nil {
		fmt.Printf("  Description: %s\n", *member.Description)
	}

	return nil
}

func runMemberGroups(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	groups, err := client.GetMemberGroups(ctx, args[0])
	if err != nil {
		return err
	}
	if groups == nil {
		fmt.Printf("No member found for reference %q.\n", args[0])
		return nil
	}

	for _, g := range groups {
		fmt.Printf("• %s [%s]\n", g.Name, g.ID)
	}
	fmt.Printf("\n%d groups\n", len(groups))
	return nil
}
