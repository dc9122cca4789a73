package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// messageCmd represents the message command
var messageCmd = &cobra.Command{
	Use:   "message <id>",
	Short: "Look up a proxied message",
	Long: `Look up a proxied message by Discord message ID. Works with both the
proxied message and the original that triggered it.`,
	Args: cobra.ExactArgs(1),
	RunE: runMessage,
}

func init() {
	rootCmd.AddCommand(messageCmd)
}

func runMessage(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid message ID: %s", args[0])
	}

	ctx := context.Background()
	message, err := client.GetMessage(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		fmt.Printf("No proxied message found for ID %d.\n", id)
		return nil
	}

	fmt.Printf("Message %d\n", message.ID)
	fmt.Printf("  Sent: %s\n", message.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Sender account: %d\n", message.Sender)
	fmt.Printf("  Channel: %d\n", message.Channel)
	if message.System != nil {
		fmt.Printf("  System: %s [%s]\n", message.System.Name, message.System.ID)
	}
	if message.Member != nil {
		fmt.Printf("  Member: %s [%s]\n", message.Member.Name, message.Member.ID)
	}

	return nil
}
