package entities

// Status is the outcome of a test result or step, using the result-file
// vocabulary understood by Allure tooling.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusBroken  Status = "broken"
	StatusSkipped Status = "skipped"
)

// Severity values accepted by the "severity" label.
type Severity string

const (
	SeverityBlocker  Severity = "blocker"
	SeverityCritical Severity = "critical"
	SeverityNormal   Severity = "normal"
	SeverityMinor    Severity = "minor"
	SeverityTrivial  Severity = "trivial"
)

// Label is a name/value pair attached to a result (severity, feature, story,
// tag, ...).
type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SeverityLabel builds the severity label.
func SeverityLabel(s Severity) Label { return Label{Name: "severity", Value: string(s)} }

// FeatureLabel builds the feature label.
func FeatureLabel(v string) Label { return Label{Name: "feature", Value: v} }

// StoryLabel builds the story label.
func StoryLabel(v string) Label { return Label{Name: "story", Value: v} }

// TagLabel builds a tag label; markers are recorded this way.
func TagLabel(v string) Label { return Label{Name: "tag", Value: v} }

// Step is one recorded action inside a result. Start/Stop are epoch
// milliseconds, matching the result-file convention.
type Step struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Start  int64  `json:"start"`
	Stop   int64  `json:"stop"`
}

// Attachment references a file written next to the result (screenshot, log).
type Attachment struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Type   string `json:"type"`
}

// StatusDetails carries the failure message for failed/broken results.
type StatusDetails struct {
	Message string `json:"message,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// TestResult is one executed test or scenario, serialized by the reporting
// writer as a single result file.
type TestResult struct {
	UUID          string         `json:"uuid"`
	HistoryID     string         `json:"historyId"`
	Name          string         `json:"name"`
	FullName      string         `json:"fullName"`
	Status        Status         `json:"status"`
	StatusDetails *StatusDetails `json:"statusDetails,omitempty"`
	Stage         string         `json:"stage"`
	Steps         []Step         `json:"steps,omitempty"`
	Labels        []Label        `json:"labels,omitempty"`
	Attachments   []Attachment   `json:"attachments,omitempty"`
	Start         int64          `json:"start"`
	Stop          int64          `json:"stop"`
}

// AddStep appends a recorded step.
func (r *TestResult) AddStep(s Step) {
	r.Steps = append(r.Steps, s)
}

// Markers extracts the markers recorded as tag labels.
func (r *TestResult) Markers() []Marker {
	var markers []Marker
	for _, l := range r.Labels {
		if l.Name == "tag" {
			markers = append(markers, Marker(l.Value))
		}
	}
	return markers
}
