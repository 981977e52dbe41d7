package terminal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"e2e_automation/application/runner"
	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/browser"
	"e2e_automation/infrastructure/config"
	"e2e_automation/infrastructure/reporting"
	"e2e_automation/infrastructure/storage"
)

type TerminalInterface struct {
	cfg      entities.Config
	store    interfaces.StateStore
	reporter *reporting.Writer
	logger   *logrus.Logger
	reader   *bufio.Reader
}

func NewTerminalInterface() (*TerminalInterface, error) {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	// Setup logger
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Load(os.Getenv("E2E_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	statePath := cfg.StorageStatePath
	if statePath == "" {
		statePath = storage.DefaultStatePath()
	}

	return &TerminalInterface{
		cfg:      cfg,
		store:    storage.NewStateStore(statePath),
		reporter: reporting.NewWriter(cfg.ResultsDir, logger),
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (t *TerminalInterface) Run() error {
	fmt.Println("Browser E2E Runner")
	fmt.Println("==================")
	fmt.Printf("Base URL: %s  Browser: %s  Driver: %s\n", t.cfg.BaseURL, t.cfg.Browser, t.cfg.Driver)
	fmt.Println("Commands: run <scenario.yaml> [markers], report, serve [addr], install, state clear, quit")
	fmt.Println()

	for {
		fmt.Print("> ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" || input == "q" {
			fmt.Println("Bye!")
			return nil
		}

		if err := t.dispatch(input); err != nil {
			fmt.Printf("Error: %v\n\n", err)
		}
	}
}

func (t *TerminalInterface) dispatch(input string) error {
	fields := strings.Fields(input)
	switch fields[0] {
	case "run":
		if len(fields) < 2 {
			return fmt.Errorf("usage: run <scenario.yaml> [markers]")
		}
		filterExpr := ""
		if len(fields) > 2 {
			filterExpr = strings.Join(fields[2:], " ")
		}
		return t.runScenario(fields[1], filterExpr)

	case "report":
		if err := reporting.GenerateHTML(t.cfg.ResultsDir, t.cfg.ReportDir, reporting.DefaultReportTitle); err != nil {
			return err
		}
		fmt.Printf("Report written to %s/index.html\n\n", t.cfg.ReportDir)
		return nil

	case "serve":
		addr := ":8080"
		if len(fields) > 1 {
			addr = fields[1]
		}
		fmt.Printf("Serving report on %s (Ctrl+C to stop)\n", addr)
		return reporting.ServeReport(t.cfg.ReportDir, addr)

	case "install":
		fmt.Printf("Installing %s...\n", t.cfg.Browser)
		if err := playwright.Install(&playwright.RunOptions{
			Browsers: []string{installName(t.cfg.Browser)},
		}); err != nil {
			return fmt.Errorf("failed to install browser: %w", err)
		}
		fmt.Println("Done")
		return nil

	case "state":
		if len(fields) > 1 && fields[1] == "clear" {
			if err := t.store.Clear(); err != nil {
				return fmt.Errorf("failed to clear storage state: %w", err)
			}
			fmt.Println("Storage state cleared")
			return nil
		}
		return fmt.Errorf("usage: state clear")

	case "help":
		fmt.Println("Commands: run <scenario.yaml> [markers], report, serve [addr], install, state clear, quit")
		return nil
	}

	return fmt.Errorf("unknown command %q", fields[0])
}

func (t *TerminalInterface) runScenario(path, filterExpr string) error {
	sc, err := runner.LoadScenario(path)
	if err != nil {
		return err
	}

	filter, err := entities.ParseMarkerFilter(filterExpr)
	if err != nil {
		return err
	}

	// One isolated session per scenario run.
	session, err := browser.NewSession(t.cfg, t.store, t.logger)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	result, runErr := runner.NewRunner(session, t.reporter, t.logger).Run(context.Background(), sc, filter)
	fmt.Printf("Scenario %q: %s\n\n", sc.Name, result.Status)
	return runErr
}

// installName maps the config browser name onto the install target.
func installName(browserName string) string {
	switch strings.ToLower(browserName) {
	case "", "chromium", "chrome":
		return "chromium"
	case "firefox":
		return "firefox"
	case "webkit":
		return "webkit"
	}
	return browserName
}

func (t *TerminalInterface) Close() error {
	return nil
}
