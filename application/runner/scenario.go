package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"e2e_automation/domain/entities"
)

// Step actions understood by the runner.
const (
	ActionNavigate      = "navigate"
	ActionClick         = "click"
	ActionFill          = "fill"
	ActionWaitVisible   = "wait_visible"
	ActionScreenshot    = "screenshot"
	ActionAssertTitle   = "assert_title"
	ActionAssertURL     = "assert_url"
	ActionAssertText    = "assert_text"
	ActionAssertValue   = "assert_value"
	ActionAssertVisible = "assert_visible"
)

// Step is one scenario action. Locator fields are inlined, so a step reads
//
//	- action: click
//	  role: button
//	  name: Search (Ctrl+K)
type Step struct {
	Action  string           `yaml:"action"`
	Path    string           `yaml:"path,omitempty"`
	Locator entities.Locator `yaml:",inline"`
	Text    string           `yaml:"text,omitempty"`
	Expect  string           `yaml:"expect,omitempty"`
}

// Scenario is a named, marker-tagged sequence of steps executed against one
// session.
type Scenario struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Markers     []entities.Marker `yaml:"markers,omitempty"`
	Severity    entities.Severity `yaml:"severity,omitempty"`
	Feature     string            `yaml:"feature,omitempty"`
	Story       string            `yaml:"story,omitempty"`
	Steps       []Step            `yaml:"steps"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks structural requirements before a run starts.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (step Step) validate() error {
	switch step.Action {
	case ActionNavigate:
		if step.Path == "" {
			return fmt.Errorf("navigate requires a path")
		}
	case ActionClick, ActionWaitVisible, ActionAssertVisible:
		if step.Locator.IsZero() {
			return fmt.Errorf("%s requires a locator", step.Action)
		}
	case ActionFill:
		if step.Locator.IsZero() {
			return fmt.Errorf("fill requires a locator")
		}
	case ActionAssertText, ActionAssertValue:
		if step.Locator.IsZero() {
			return fmt.Errorf("%s requires a locator", step.Action)
		}
		if step.Expect == "" {
			return fmt.Errorf("%s requires an expect value", step.Action)
		}
	case ActionAssertTitle, ActionAssertURL:
		if step.Expect == "" {
			return fmt.Errorf("%s requires an expect value", step.Action)
		}
	case ActionScreenshot:
	case "":
		return fmt.Errorf("step action is required")
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	return nil
}

// describe - step name recorded on the result
func (step Step) describe() string {
	switch step.Action {
	case ActionNavigate:
		return fmt.Sprintf("navigate %s", step.Path)
	case ActionClick:
		return fmt.Sprintf("click %s", step.Locator)
	case ActionFill:
		return fmt.Sprintf("fill %s", step.Locator)
	case ActionWaitVisible:
		return fmt.Sprintf("wait for %s", step.Locator)
	case ActionScreenshot:
		return "screenshot"
	case ActionAssertTitle:
		return fmt.Sprintf("assert title %q", step.Expect)
	case ActionAssertURL:
		return fmt.Sprintf("assert url %q", step.Expect)
	case ActionAssertText:
		return fmt.Sprintf("assert %s contains %q", step.Locator, step.Expect)
	case ActionAssertValue:
		return fmt.Sprintf("assert %s has value %q", step.Locator, step.Expect)
	case ActionAssertVisible:
		return fmt.Sprintf("assert %s visible", step.Locator)
	}
	return step.Action
}

// Labels builds the result labels for the scenario.
func (sc *Scenario) Labels() []entities.Label {
	severity := sc.Severity
	if severity == "" {
		severity = entities.SeverityNormal
	}
	labels := []entities.Label{entities.SeverityLabel(severity)}
	if sc.Feature != "" {
		labels = append(labels, entities.FeatureLabel(sc.Feature))
	}
	if sc.Story != "" {
		labels = append(labels, entities.StoryLabel(sc.Story))
	}
	for _, m := range sc.Markers {
		labels = append(labels, entities.TagLabel(string(m)))
	}
	return labels
}
