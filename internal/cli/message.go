package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSendCmd() *cobra.Command {
	var to, text string
	var private bool

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required")
			}
			if text == "" {
				return fmt.Errorf("--text is required")
			}

			msgType := "message"
			if private {
				msgType = "private_message"
			}

			req := map[string]string{
				"to":   to,
				"text": text,
				"type": msgType,
			}
			var result Message

			if err := client.Post("/messages", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "Everyone", "Recipient name")
	cmd.Flags().StringVar(&text, "text", "", "Message text (required)")
	cmd.Flags().BoolVar(&private, "private", false, "Send as a private message")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newMessagesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List messages visible to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required")
			}

			path := "/messages"
			if limit > 0 {
				path += "?limit=" + strconv.Itoa(limit)
			}

			var result []Message
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Return only the most recent N messages")

	return cmd
}

func newEditCmd() *cobra.Command {
	var to, text string
	var private bool

	cmd := &cobra.Command{
		Use:   "edit <message-id>",
		Short: "Edit one of your messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required")
			}
			if text == "" {
				return fmt.Errorf("--text is required")
			}

			msgType := "message"
			if private {
				msgType = "private_message"
			}

			req := map[string]string{
				"to":   to,
				"text": text,
				"type": msgType,
			}
			var result Message

			if err := client.Put("/messages/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "Everyone", "Recipient name")
	cmd.Flags().StringVar(&text, "text", "", "Replacement text (required)")
	cmd.Flags().BoolVar(&private, "private", false, "Make it a private message")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <message-id>",
		Short: "Delete one of your messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required")
			}

			if err := client.Delete("/messages/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Message deleted")
			return nil
		},
	}
}
