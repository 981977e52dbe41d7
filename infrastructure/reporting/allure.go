// Package reporting writes Allure-compatible result files and renders them
// into a standalone HTML report.
package reporting

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

// Writer persists one JSON file per test result under the results directory,
// in the layout consumed by the Allure command line tool.
type Writer struct {
	dir    string
	logger *logrus.Logger
	now    func() time.Time
	newID  func() string
}

// NewWriter - creates a results writer rooted at dir.
func NewWriter(dir string, logger *logrus.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// NewWriterWithClock - creates a writer with injected clock and id generator.
// Used by tests that compare serialized output byte for byte.
func NewWriterWithClock(dir string, logger *logrus.Logger, now func() time.Time, newID func() string) *Writer {
	return &Writer{dir: dir, logger: logger, now: now, newID: newID}
}

// NowMS returns the writer's clock reading in epoch milliseconds, the unit
// used for step timings.
func (w *Writer) NowMS() int64 {
	return w.now().UnixMilli()
}

// StartResult - opens a result with start time stamped.
func (w *Writer) StartResult(name string, labels ...entities.Label) *entities.TestResult {
	sum := md5.Sum([]byte(name))
	return &entities.TestResult{
		UUID:      w.newID(),
		HistoryID: hex.EncodeToString(sum[:]),
		Name:      name,
		FullName:  name,
		Stage:     "finished",
		Labels:    labels,
		Start:     w.now().UnixMilli(),
	}
}

// Attach - writes the attachment file and records it on the result.
func (w *Writer) Attach(r *entities.TestResult, name, mediaType string, body []byte) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	source := fmt.Sprintf("%s-attachment%s", w.newID(), extensionFor(mediaType))
	if err := os.WriteFile(filepath.Join(w.dir, source), body, 0644); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}

	r.Attachments = append(r.Attachments, entities.Attachment{
		Name:   name,
		Source: source,
		Type:   mediaType,
	})
	return nil
}

// FinishResult - stamps the stop time and writes the result file.
func (w *Writer) FinishResult(r *entities.TestResult) error {
	if r.Status == "" {
		r.Status = entities.StatusPassed
	}
	r.Stop = w.now().UnixMilli()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	path := filepath.Join(w.dir, r.UUID+"-result.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}

	w.logger.Infof("Result written: %s (%s)", path, r.Status)
	return nil
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "image/png":
		return ".png"
	case "application/json":
		return ".json"
	case "text/html":
		return ".html"
	default:
		return ".txt"
	}
}

// ReadResults - loads every result file under dir. Missing directory yields an
// empty slice, matching a run that produced no results yet.
func ReadResults(dir string) ([]entities.TestResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	var results []entities.TestResult
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if !isResultFile(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read result file %s: %w", entry.Name(), err)
		}
		var r entities.TestResult
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to parse result file %s: %w", entry.Name(), err)
		}
		results = append(results, r)
	}
	return results, nil
}

func isResultFile(name string) bool {
	base := name[:len(name)-len(filepath.Ext(name))]
	return len(base) > len("-result") && base[len(base)-len("-result"):] == "-result"
}

var _ interfaces.Reporter = (*Writer)(nil)
