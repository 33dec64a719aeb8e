package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planflow/internal/service"
)

func newBackupCmd(planner *service.Planner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the full planner state",
	}
	cmd.AddCommand(newBackupExportCmd(planner), newBackupImportCmd(planner))
	return cmd
}

func newBackupExportCmd(planner *service.Planner) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full backup (stdout by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := planner.Export()
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Println("backup written to", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "O", "", "backup file path")
	return cmd
}

func newBackupImportCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore state from a backup file",
		Long: `Restore state from a backup file.

The backup must carry at least one of categories, tasks, or habits and is
fully validated before anything is overwritten; on any error the current
state is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			if err := planner.Import(cmd.Context(), data); err != nil {
				return err
			}
			fmt.Println("backup imported")
			return nil
		},
	}
}

func newResetCmd(planner *service.Planner) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all planner state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe state without --yes")
			}
			if err := planner.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("planner state cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}

func newNameCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "name [new-name]",
		Short: "Show or set the display name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(planner.Username())
				return nil
			}
			planner.SetUsername(args[0])
			fmt.Println("hello,", args[0])
			return nil
		},
	}
}
