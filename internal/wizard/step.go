package wizard

import "fmt"

// Step is a wizard page. Steps are strictly linear.
type Step int

const (
	StepType Step = iota + 1
	StepIndustry
	StepFeatures
	StepTeam
	StepAddOns
	StepTheme
	StepPages
	StepSummary
)

// FirstStep and LastStep bound the sequence.
const (
	FirstStep = StepType
	LastStep  = StepSummary
)

var stepNames = map[Step]string{
	StepType:     "type",
	StepIndustry: "industry",
	StepFeatures: "features",
	StepTeam:     "team",
	StepAddOns:   "addons",
	StepTheme:    "theme",
	StepPages:    "pages",
	StepSummary:  "summary",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Next returns the following step, or s itself on the last step.
func (s Step) Next() Step {
	if s >= LastStep {
		return s
	}
	return s + 1
}

// Previous returns the preceding step, or s itself on the first step.
func (s Step) Previous() Step {
	if s <= FirstStep {
		return s
	}
	return s - 1
}
