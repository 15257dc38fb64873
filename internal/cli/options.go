package cli

import (
	"fmt"
	"os"

	"combobox/internal/config"
	"combobox/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newOptionsCmd(opts *options) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Page through the option catalogue",
		Long: `List every configured option with its value and search keyword.

The list is shown in a pager when stdout is a terminal and printed
otherwise. Options without a keyword are listed here even though the
dropdown never shows them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfigService(opts.configPath).Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			w, err := cfg.Widget()
			if err != nil {
				return err
			}

			selected := -1
			if cfg.LastSelected != nil && w.Initial != nil {
				selected = *cfg.LastSelected
			}
			content := ui.NewCatalogueRenderer().Render(cfg.Label, w.Options, selected)

			if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
				return err
			}
			return ui.NewPager(nil).Show(content)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print instead of paging")
	return cmd
}

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := config.NewConfigService(opts.configPath)
			path := svc.Path()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
