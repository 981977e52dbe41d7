// Package runner executes scenarios against a browser session and records the
// outcome through the reporter.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

// assertionError separates expectation mismatches (failed) from engine errors
// (broken) in the recorded result.
type assertionError struct {
	msg string
}

func (e *assertionError) Error() string { return e.msg }

func assertionFailed(format string, args ...interface{}) error {
	return &assertionError{msg: fmt.Sprintf(format, args...)}
}

// Runner drives one session through scenarios. The session is borrowed; the
// caller owns its lifecycle.
type Runner struct {
	session  interfaces.Session
	reporter interfaces.Reporter
	logger   *logrus.Logger
	nowMS    func() int64
}

// NewRunner - creates a scenario runner.
func NewRunner(session interfaces.Session, reporter interfaces.Reporter, logger *logrus.Logger) *Runner {
	return &Runner{
		session:  session,
		reporter: reporter,
		logger:   logger,
		nowMS:    func() int64 { return time.Now().UnixMilli() },
	}
}

// Run executes the scenario unless the marker filter rejects it. The returned
// result is always finished and written; the error reports the first failing
// step, nil for passed and skipped runs.
func (r *Runner) Run(ctx context.Context, sc *Scenario, filter entities.MarkerFilter) (*entities.TestResult, error) {
	result := r.reporter.StartResult(sc.Name, sc.Labels()...)

	if !filter.Matches(sc.Markers) {
		r.logger.Infof("Skipping scenario %q (marker filter)", sc.Name)
		result.Status = entities.StatusSkipped
		if err := r.reporter.FinishResult(result); err != nil {
			return result, err
		}
		return result, nil
	}

	r.logger.Infof("Running scenario: %s", sc.Name)

	for _, step := range sc.Steps {
		start := r.nowMS()
		err := r.executeStep(ctx, step, result)
		recorded := entities.Step{
			Name:   step.describe(),
			Status: entities.StatusPassed,
			Start:  start,
			Stop:   r.nowMS(),
		}

		if err != nil {
			status := entities.StatusBroken
			var ae *assertionError
			if errors.As(err, &ae) {
				status = entities.StatusFailed
			}
			recorded.Status = status
			result.AddStep(recorded)
			result.Status = status
			result.StatusDetails = &entities.StatusDetails{
				Message: fmt.Sprintf("%s: %v", recorded.Name, err),
			}

			r.attachFailureScreenshot(ctx, result)

			if finishErr := r.reporter.FinishResult(result); finishErr != nil {
				r.logger.Warnf("Failed to write result: %v", finishErr)
			}
			return result, fmt.Errorf("scenario %q failed at %s: %w", sc.Name, recorded.Name, err)
		}

		result.AddStep(recorded)
	}

	result.Status = entities.StatusPassed

	if err := r.session.SaveState(); err != nil {
		r.logger.Warnf("Failed to save browser state: %v", err)
	}

	if err := r.reporter.FinishResult(result); err != nil {
		return result, err
	}
	return result, nil
}

func (r *Runner) executeStep(ctx context.Context, step Step, result *entities.TestResult) error {
	switch step.Action {
	case ActionNavigate:
		return r.session.Navigate(ctx, step.Path)

	case ActionClick:
		return r.session.Click(ctx, step.Locator)

	case ActionFill:
		return r.session.Fill(ctx, step.Locator, step.Text)

	case ActionWaitVisible:
		return r.session.WaitVisible(ctx, step.Locator)

	case ActionScreenshot:
		img, err := r.session.Screenshot(ctx)
		if err != nil {
			return err
		}
		return r.reporter.Attach(result, "screenshot", "image/png", img)

	case ActionAssertTitle:
		title, err := r.session.Title(ctx)
		if err != nil {
			return err
		}
		if title != step.Expect {
			return assertionFailed("title is %q, expected %q", title, step.Expect)
		}
		return nil

	case ActionAssertURL:
		url, err := r.session.URL(ctx)
		if err != nil {
			return err
		}
		if url != step.Expect {
			return assertionFailed("url is %q, expected %q", url, step.Expect)
		}
		return nil

	case ActionAssertText:
		text, err := r.session.Text(ctx, step.Locator)
		if err != nil {
			return err
		}
		if !strings.Contains(text, step.Expect) {
			return assertionFailed("%s text %q does not contain %q", step.Locator, text, step.Expect)
		}
		return nil

	case ActionAssertValue:
		value, err := r.session.InputValue(ctx, step.Locator)
		if err != nil {
			return err
		}
		if value != step.Expect {
			return assertionFailed("%s value is %q, expected %q", step.Locator, value, step.Expect)
		}
		return nil

	case ActionAssertVisible:
		visible, err := r.session.IsVisible(ctx, step.Locator)
		if err != nil {
			return err
		}
		if !visible {
			return assertionFailed("%s is not visible", step.Locator)
		}
		return nil
	}

	return fmt.Errorf("unknown action %q", step.Action)
}

func (r *Runner) attachFailureScreenshot(ctx context.Context, result *entities.TestResult) {
	img, err := r.session.Screenshot(ctx)
	if err != nil {
		r.logger.Warnf("Failed to capture failure screenshot: %v", err)
		return
	}
	if err := r.reporter.Attach(result, "failure screenshot", "image/png", img); err != nil {
		r.logger.Warnf("Failed to attach failure screenshot: %v", err)
	}
}
