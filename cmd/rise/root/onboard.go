package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"rise/internal/engine"
	"rise/internal/ui"
)

func newOnboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Answer the questionnaire and accept your Base Protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			in, err := runQuestionnaire()
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			plan, err := svc.ProposeOnboarding(*in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconRise, plan.ProtocolName))
			for _, b := range plan.Blocks {
				fmt.Fprintf(out, "- %s %s–%s %s %s\n",
					ui.CategoryIcon(string(b.Category)),
					b.Start.Format("15:04"),
					b.End.Format("15:04"),
					b.Title,
					ui.Muted.Render("("+string(b.Category)+")"))
			}
			fmt.Fprintln(out, ui.Muted.Render(plan.Message))

			warnConflicts(cmd, svc, plan)

			accept := true
			confirm := huh.NewConfirm().
				Title("Accept this protocol?").
				Value(&accept)
			if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
				return err
			}
			if !accept {
				fmt.Fprintln(out, ui.Muted.Render("Protocol discarded."))
				return nil
			}

			records := make([]engine.TaskCreate, 0, len(plan.Blocks))
			for _, b := range plan.Blocks {
				records = append(records, engine.TaskCreate{
					Title:    b.Title,
					Start:    b.Start,
					End:      b.End,
					Category: b.Category,
				})
			}
			res, err := svc.AcceptPlan(ctx, records)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s created %d tasks %s\n",
				ui.Good.Render(ui.IconDone+" Accepted:"),
				res.Created,
				ui.Muted.Render("(profile "+res.ProfileID+")"))
			return nil
		},
	}

	return cmd
}

func runQuestionnaire() (*engine.OnboardingInput, error) {
	var (
		goalsRaw  string
		blocker   string
		workHours string
		energy    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goals (comma-separated, 1-5)").
				Placeholder("learn python, run a 10k").
				Value(&goalsRaw).
				Validate(validateGoals),
			huh.NewInput().
				Title("Main blocker").
				Placeholder("low energy after work").
				Value(&blocker).
				Validate(validateRequired),
			huh.NewInput().
				Title("Typical work hours").
				Placeholder(engine.DefaultWorkHours).
				Value(&workHours),
			huh.NewSelect[string]().
				Title("Energy pattern").
				Options(
					huh.NewOption("Low in the evening", engine.DefaultEnergyPattern),
					huh.NewOption("Morning person", "morning-person"),
					huh.NewOption("Steady all day", "steady"),
				).
				Value(&energy),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}

	in := &engine.OnboardingInput{
		Goals:   splitGoals(goalsRaw),
		Blocker: strings.TrimSpace(blocker),
	}
	if wh := strings.TrimSpace(workHours); wh != "" {
		in.WorkHours = &wh
	}
	if energy != "" {
		in.EnergyPattern = &energy
	}
	return in, nil
}

func splitGoals(raw string) []string {
	var goals []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			goals = append(goals, g)
		}
	}
	return goals
}

func validateGoals(raw string) error {
	n := len(splitGoals(raw))
	if n == 0 {
		return errors.New("at least one goal is required")
	}
	if n > engine.MaxGoals {
		return fmt.Errorf("at most %d goals", engine.MaxGoals)
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func warnConflicts(cmd *cobra.Command, svc *engine.Service, plan *engine.OnboardingPlan) {
	ctx := context.Background()
	existing, err := svc.ListTasks(ctx, string(engine.StatusScheduled))
	if err != nil {
		return
	}
	intervals := append(engine.TaskIntervals(existing), engine.PlanIntervals(plan)...)
	for _, pair := range engine.Overlaps(intervals) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q overlaps %q\n",
			ui.Warn.Render(ui.IconWarn+" Conflict:"), pair.A.Title, pair.B.Title)
	}
}
