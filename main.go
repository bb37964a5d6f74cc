// project-identity gives an editor workspace a recognisable name and color.
// It asks for a project name and a title bar color, then merges them into
// <workspace>/.vscode/settings.json, backing up the previous file.
//
// Without flags it runs an interactive prompt. With --name and --color it
// runs unattended, which suits scripts and dotfile setups.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/connorleisz/project-identity/internal/app"
	"github.com/connorleisz/project-identity/internal/colors"
	"github.com/connorleisz/project-identity/internal/config"
	"github.com/connorleisz/project-identity/internal/host"
	"github.com/connorleisz/project-identity/internal/logging"
	"github.com/connorleisz/project-identity/internal/settings"
	"github.com/connorleisz/project-identity/internal/terminal"
	"github.com/connorleisz/project-identity/internal/ui/styles"
	"github.com/spf13/pflag"
)

const name = "project-identity"

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// exitError ends the process with a status code without printing again;
// the TUI has already shown the message.
type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitError) ExitCode() int { return int(e) }

func main() {
	if err := run(os.Args[1:]); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", app.Message(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		projectName string
		color       string
		settingsDir string
		reloadCmd   string
		logFile     string
		gitRoot     bool
		listColors  bool
		showVersion bool
	)

	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVarP(&projectName, "name", "n", "", "project name (with --color, skips the prompts)")
	flagSet.StringVarP(&color, "color", "c", "", "preset name (e.g. blue, dark-gray) or hex code")
	flagSet.StringVar(&settingsDir, "settings-dir", "", "configuration directory inside the workspace (default .vscode)")
	flagSet.StringVar(&reloadCmd, "reload-cmd", "", "command run in the workspace after writing, e.g. \"code --reuse-window .\"")
	flagSet.StringVar(&logFile, "log-file", "", "append logs to this file")
	flagSet.BoolVar(&gitRoot, "git-root", false, "use the enclosing git repository root as the workspace")
	flagSet.BoolVar(&listColors, "list-colors", false, "print the preset colors and exit")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(os.Stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(os.Stdout, flagSet)
		return nil
	}
	if showVersion {
		fmt.Printf("%s %s\n", name, version)
		return nil
	}

	caps := terminal.Detect()
	if listColors {
		printColors(os.Stdout, caps)
		return nil
	}

	if flagSet.NArg() > 1 {
		return fmt.Errorf("expected at most one workspace path, got %d", flagSet.NArg())
	}
	path := "."
	if flagSet.NArg() == 1 {
		path = flagSet.Arg(0)
	}

	configDir, err := config.DefaultDir()
	if err != nil {
		configDir = ""
	}
	cfg := config.Load(configDir)
	if settingsDir != "" {
		cfg.SettingsDir = settingsDir
	}
	if reloadCmd != "" {
		cfg.ReloadCommand = reloadCmd
	}

	deps := app.Deps{
		Workspace: func() (string, error) { return host.ResolveWorkspace(path, gitRoot) },
		Reloader:  host.CommandReloader{Command: cfg.ReloadCommand},
		Config:    cfg,
		ConfigDir: configDir,
		Caps:      caps,
	}

	if projectName != "" || color != "" {
		if projectName == "" || color == "" {
			return errors.New("--name and --color must be given together")
		}
		return runUnattended(deps, logFile, app.Request{Name: projectName, Color: color})
	}

	if !caps.Interactive {
		return errors.New("not running in a terminal; pass --name and --color")
	}
	return runInteractive(deps, logFile)
}

func runUnattended(deps app.Deps, logFile string, req app.Request) error {
	var out io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := logging.New(name, logging.Level(), out)
	deps.Logger = logger
	deps.Writer = settings.NewWriter(deps.Config.SettingsDir, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := app.Run(ctx, req, deps)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", outcome.Result.SettingsPath)
	if outcome.Result.BackupPath != "" {
		fmt.Printf("Previous settings (%s) kept in %s\n", outcome.Result.Backup, outcome.Result.BackupPath)
	}
	if outcome.ReloadErr != nil {
		if errors.Is(outcome.ReloadErr, host.ErrNoReloader) {
			fmt.Println("Reload your editor window to apply the new settings.")
		} else {
			fmt.Fprintf(os.Stderr, "warning: %v\n", outcome.ReloadErr)
		}
	}
	return nil
}

func runInteractive(deps app.Deps, logFile string) error {
	logger, closeLog, err := logging.Open(name, logFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()
	logger.Debug("starting prompts", "terminal", deps.Caps)

	deps.Logger = logger
	deps.Writer = settings.NewWriter(deps.Config.SettingsDir, logger)

	p := tea.NewProgram(app.NewModel(deps))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running prompts: %w", err)
	}

	m, ok := final.(app.Model)
	if !ok {
		return nil
	}
	if outcome := m.Outcome(); outcome.State == app.StateFailed {
		return exitError(1)
	}
	return nil
}

func printColors(w io.Writer, caps terminal.Capabilities) {
	for _, opt := range colors.Predefined() {
		if opt.IsCustom() {
			fmt.Fprintf(w, "%s  (any #rgb or #rrggbb)\n", opt.Label)
			continue
		}
		swatch := styles.Swatch(opt.Value, "    ")
		if !caps.Interactive {
			swatch = ""
		}
		fmt.Fprintf(w, "%-16s %s %s\n", opt.Label, opt.Value, swatch)
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [flags] [workspace]\n\n", name)
	fmt.Fprintln(w, "Set a project name and title bar color for an editor workspace.")
	fmt.Fprintln(w, "The workspace defaults to the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagSet.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Environment:\n  %s  log level (default warn)\n  %s   set to 1 for JSON logs\n",
		logging.LevelEnv, logging.JSONEnv)
}
