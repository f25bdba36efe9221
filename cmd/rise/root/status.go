package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rise/internal/engine"
	"rise/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile progress and schedule counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconRise, "Profile"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", ui.XPBar(p.XP, engine.LevelThreshold)))
			fmt.Fprintln(out, ui.LabelValue("Streak", p.Streak))
			fmt.Fprintln(out, "")

			counts, err := svc.TaskRepo().CountByStatus(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render("📋 Schedule"))
			fmt.Fprintln(out, ui.LabelValue("Scheduled", counts[string(engine.StatusScheduled)]))
			fmt.Fprintln(out, ui.LabelValue("Done", counts[string(engine.StatusDone)]))

			conflicts, err := svc.ScheduleConflicts(ctx)
			if err != nil {
				return err
			}
			for _, pair := range conflicts {
				fmt.Fprintf(out, "%s %q overlaps %q\n",
					ui.Warn.Render(ui.IconWarn+" Conflict:"), pair.A.Title, pair.B.Title)
			}
			return nil
		},
	}

	return cmd
}
