package interfaces

import "e2e_automation/domain/entities"

// Reporter records test results and their attachments. Implementations decide
// the on-disk layout; callers only hand over the result model.
type Reporter interface {
	// StartResult opens a new result with the given name and labels.
	StartResult(name string, labels ...entities.Label) *entities.TestResult

	// Attach stores a file next to the result and records the reference.
	Attach(r *entities.TestResult, name, mediaType string, body []byte) error

	// FinishResult stamps the stop time and writes the result file.
	FinishResult(r *entities.TestResult) error
}
