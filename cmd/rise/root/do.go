package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rise/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx, args[0])
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s +%d XP", ui.Good.Render(ui.IconDone+" Done"), res.XPGained)
			if res.LevelUp {
				line += " " + ui.BadgeLevelUp + fmt.Sprintf(" %d → %d", res.LevelBefore, res.LevelAfter)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	return cmd
}
