package e2e

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2e_automation/application/runner"
	"e2e_automation/domain/entities"
	"e2e_automation/infrastructure/reporting"
)

// TestScenarioRun drives the bundled search scenario end to end: browser
// session, runner, and result files on disk.
func TestScenarioRun(t *testing.T) {
	session, cfg := newSession(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sc, err := runner.LoadScenario("../scenarios/search.yaml")
	require.NoError(t, err)

	resultsDir := t.TempDir()
	reporter := reporting.NewWriter(resultsDir, logger)
	r := runner.NewRunner(session, reporter, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	result, err := r.Run(ctx, sc, entities.MarkerFilter{})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPassed, result.Status)

	written, err := reporting.ReadResults(resultsDir)
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, sc.Name, written[0].Name)
	assert.Equal(t, entities.StatusPassed, written[0].Status)
}
