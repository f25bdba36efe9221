package engine

// Category tags a task for XP purposes. The set is open: anything
// outside the known tags is accepted and falls back to the default
// gain on completion.
type Category string

const (
	CategoryMind     Category = "mind"
	CategoryFitness  Category = "fitness"
	CategoryVitality Category = "vitality"
	CategoryWealth   Category = "wealth"
	CategoryCharisma Category = "charisma"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusDone      Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusDone:
		return true
	default:
		return false
	}
}
