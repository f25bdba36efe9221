package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rise/internal/ui"
)

func newListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in schedule order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.ListTasks(ctx, status)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks."))
				return nil
			}
			for _, t := range tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s–%s %s %s %s\n",
					ui.CategoryIcon(t.Category),
					t.Start.Format("2006-01-02"),
					t.Start.Format("15:04"),
					t.End.Format("15:04"),
					t.Title,
					ui.StatusText(t.Status),
					ui.Muted.Render(t.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (scheduled|done)")
	return cmd
}
