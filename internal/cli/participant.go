package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJoinCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join the room as a participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fall back to the global --user flag
			if name == "" {
				name = cfg.User
			}
			if name == "" {
				return fmt.Errorf("--name or --user is required")
			}

			req := map[string]string{"name": name}
			var result Participant

			if err := client.Post("/participants", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Participant name")

	return cmd
}

func newParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants",
		Short: "List current participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Participant

			if err := client.Get("/participants", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHeartbeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heartbeat",
		Short: "Refresh your presence in the room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.User == "" {
				return fmt.Errorf("--user is required")
			}

			if err := client.Post("/status", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Still here")
			return nil
		},
	}
}
