// Package cli provides the command-line interface for combobox
package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"combobox/internal/config"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
	"combobox/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// EnvE2E makes the demo print a ready marker once the program is built
const EnvE2E = "COMBOBOX_E2E_TEST"

var allEvents = []eventbus.EventType{
	eventbus.EventOptionSelected,
	eventbus.EventQueryChanged,
	eventbus.EventDropdownToggled,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
	eventbus.EventError,
}

type options struct {
	configPath string
	logPath    string
}

// NewRootCmd creates the root command for combobox
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "combobox",
		Short: "A searchable dropdown select for the terminal",
		Long: `combobox mounts a single select widget described by a TOML config file.

Press enter or click the control to open the dropdown, type to filter the
options and click one to select it. The selection is written back to the
config file when save_on_select is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "log file, - to discard (default $"+logging.EnvFile+" or "+logging.DefaultFile+")")

	rootCmd.AddCommand(newOptionsCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "combobox %s\n", version)
		},
	})

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute(version string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runDemo(ctx context.Context, opts *options) error {
	closer := logging.Setup(opts.logPath)
	defer closer.Close()

	bus := eventbus.New()
	defer bus.Close()

	for _, t := range allEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		})
	}

	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model, err := ui.NewModel(bus, cfg, configSvc)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// forward events to the UI for the status line
	for _, t := range allEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	if os.Getenv(EnvE2E) == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting combobox with %d options from %s", len(cfg.Options), configSvc.Path())
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}
