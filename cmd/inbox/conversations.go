package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/s21platform/market-chat/internal/messaging"
	"github.com/s21platform/market-chat/internal/model"
)

var (
	listRole       string
	listOutputType string

	threadConversation string

	sendConversation string
	sendProduct      string
	sendRecipient    string

	deleteConversation string
	deleteConfirmed    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations of one role",
	Long:  `List the conversations where you are buying (asking about someone else's listing) or selling (answering about yours).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := messaging.ParseRole(listRole)
		if err != nil {
			return err
		}

		if err := inbox.loadConversations(cmd.Context()); err != nil {
			return err
		}
		inbox.store.SetRole(role)
		conversations := inbox.store.Conversations()

		if listOutputType == "json" {
			data, err := json.MarshalIndent(conversations, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode conversations: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		rows := make([][]string, 0, len(conversations))
		for _, conv := range conversations {
			rows = append(rows, []string{
				conv.ID,
				conv.Product.Summary(),
				counterpart(conv),
				truncateText(conv.Content, 48),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("ID", "Product", "With", "Last message").
			Rows(rows...)

		fmt.Println(t)
		fmt.Printf("%d %s conversation(s)\n", len(conversations), role)
		return nil
	},
}

var threadCmd = &cobra.Command{
	Use:   "thread",
	Short: "Print the messages of a conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := inbox.loadConversations(cmd.Context()); err != nil {
			return err
		}
		if err := inbox.store.Open(cmd.Context(), threadConversation); err != nil {
			return fmt.Errorf("failed to open conversation %s: %w", threadConversation, err)
		}

		me := inbox.session.UserID()
		for _, msg := range inbox.loader.Messages() {
			from := "?"
			if msg.Sender != nil {
				from = msg.Sender.DisplayName()
				if msg.Sender.ID == me {
					from = "you"
				}
			}
			stamp := ""
			if msg.CreatedAt != nil {
				stamp = msg.CreatedAt.Local().Format("2006-01-02 15:04") + " "
			}
			fmt.Printf("%s%s: %s\n", stamp, from, msg.Content)
		}

		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <text>",
	Short: "Send a message in a conversation or to the seller of a product",
	Long: `Send a message in an existing conversation (--conversation), or start one
about a product by naming it and the person to write to (--product and --to).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("message is empty")
		}

		if err := inbox.loadConversations(cmd.Context()); err != nil {
			return err
		}
		inbox.composer.SetText(text)

		if sendConversation == "" {
			if err := inbox.composer.SendTo(cmd.Context(), sendProduct, sendRecipient); err != nil {
				return err
			}
			fmt.Println("Message sent")
			return nil
		}

		if _, err := inbox.store.Select(sendConversation); err != nil {
			return fmt.Errorf("failed to select conversation %s: %w", sendConversation, err)
		}
		if err := inbox.composer.Send(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Message sent")
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteConfirmed {
			return fmt.Errorf("deleting a conversation cannot be undone, pass --yes to confirm")
		}

		if err := inbox.loadConversations(cmd.Context()); err != nil {
			return err
		}
		if err := inbox.store.Delete(cmd.Context(), deleteConversation); err != nil {
			return fmt.Errorf("failed to delete conversation %s: %w", deleteConversation, err)
		}

		fmt.Println("Conversation deleted")
		return nil
	},
}

func counterpart(conv model.Conversation) string {
	return messaging.OtherParticipant(conv, inbox.session.UserID()).DisplayName()
}

func truncateText(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func init() {
	listCmd.Flags().StringVarP(&listRole, "role", "r", "buying", "buying or selling")
	listCmd.Flags().StringVarP(&listOutputType, "output", "o", "table", "table or json")

	threadCmd.Flags().StringVarP(&threadConversation, "conversation", "c", "", "conversation id")
	_ = threadCmd.MarkFlagRequired("conversation")

	sendCmd.Flags().StringVarP(&sendConversation, "conversation", "c", "", "conversation id")
	sendCmd.Flags().StringVarP(&sendProduct, "product", "p", "", "product id, to start a conversation")
	sendCmd.Flags().StringVarP(&sendRecipient, "to", "t", "", "user id to write to, to start a conversation")
	sendCmd.MarkFlagsRequiredTogether("product", "to")
	sendCmd.MarkFlagsMutuallyExclusive("conversation", "product")
	sendCmd.MarkFlagsOneRequired("conversation", "product")

	deleteCmd.Flags().StringVarP(&deleteConversation, "conversation", "c", "", "conversation id")
	deleteCmd.Flags().BoolVarP(&deleteConfirmed, "yes", "y", false, "confirm the deletion")
	_ = deleteCmd.MarkFlagRequired("conversation")

	rootCmd.AddCommand(listCmd, threadCmd, sendCmd, deleteCmd)
}
