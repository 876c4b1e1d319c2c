package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/config"
	"github.com/sandeepkv93/todolist/internal/update"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "todolist failed: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "todolist",
		Short:         "A terminal to-do list",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", config.ResolvePath(), "Path to the TOML config file")
	cmd.AddCommand(snapshotsCmd(&configPath))
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return cfg, err
	}
	cfg = config.FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runTUI(cfg config.Config) error {
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "todolist")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(update.NewModelWithConfig(cfg, update.Options{}), opts...)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
