package engine

import (
	"strings"
	"time"
)

const (
	// ProtocolName is the name of the starter plan offered during
	// onboarding.
	ProtocolName = "Base Protocol"

	protocolMessage = "Here is your new Base Protocol. Accept to generate your schedule and start earning XP."

	// DefaultWorkHours and DefaultEnergyPattern fill in omitted
	// questionnaire fields.
	DefaultWorkHours     = "9-6"
	DefaultEnergyPattern = "low-evening"

	// MaxGoals bounds the goals list.
	MaxGoals = 5
)

// OnboardingInput is the questionnaire. WorkHours and EnergyPattern
// are pointers so an omitted field takes its default while an
// explicit empty string does not.
type OnboardingInput struct {
	Goals         []string `json:"goals"`
	Blocker       string   `json:"blocker"`
	WorkHours     *string  `json:"work_hours,omitempty"`
	EnergyPattern *string  `json:"energy_pattern,omitempty"`
}

// ProposedBlock is a candidate time block. It is never persisted;
// acceptance turns blocks into tasks.
type ProposedBlock struct {
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Category Category  `json:"category"`
}

// OnboardingPlan is the proposed protocol shown to the caller for
// approval.
type OnboardingPlan struct {
	ProtocolName string          `json:"protocol_name"`
	Blocks       []ProposedBlock `json:"blocks"`
	Message      string          `json:"message"`
}

func validateOnboarding(in OnboardingInput) error {
	if len(in.Goals) == 0 {
		return ValidationError{Field: "goals", Reason: "at least one goal is required"}
	}
	if len(in.Goals) > MaxGoals {
		return ValidationError{Field: "goals", Reason: "at most 5 goals are allowed"}
	}
	if strings.TrimSpace(in.Blocker) == "" {
		return ValidationError{Field: "blocker", Reason: "blocker is required"}
	}
	return nil
}

func (in OnboardingInput) energyPattern() string {
	if in.EnergyPattern == nil {
		return DefaultEnergyPattern
	}
	return *in.EnergyPattern
}

// ProposePlan maps the questionnaire to the fixed starter blocks for
// the calendar day of now, in now's location. It is deterministic
// given (day, energy pattern) and touches no persisted state.
//
// Goals, blocker and work hours are validated but do not yet steer
// the heuristic; only the energy pattern moves the learning block.
func ProposePlan(now time.Time, in OnboardingInput) (*OnboardingPlan, error) {
	if err := validateOnboarding(in); err != nil {
		return nil, err
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	block := func(hour, minute, durationMin int, title string, cat Category) ProposedBlock {
		start := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		return ProposedBlock{
			Title:    title,
			Start:    start,
			End:      start.Add(time.Duration(durationMin) * time.Minute),
			Category: cat,
		}
	}

	// Low evening energy means learning moves to the morning slot.
	learnHour := 19
	if strings.Contains(in.energyPattern(), "low") {
		learnHour = 7
	}

	blocks := []ProposedBlock{
		block(learnHour, 0, 25, "Python Micro-Learning", CategoryMind),
		block(12, 30, 40, "Zone 2 Run", CategoryFitness),
		block(18, 0, 45, "Meal Prep", CategoryVitality),
	}

	return &OnboardingPlan{
		ProtocolName: ProtocolName,
		Blocks:       blocks,
		Message:      protocolMessage,
	}, nil
}

// ProposeOnboarding is the service entry point; it evaluates the
// heuristic against the current local day.
func (s *Service) ProposeOnboarding(in OnboardingInput) (*OnboardingPlan, error) {
	return ProposePlan(time.Now(), in)
}
