package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sandeepkv93/todolist/internal/storage"
	"github.com/spf13/cobra"
)

func snapshotsCmd(configPath *string) *cobra.Command {
	var (
		dbPath string
		limit  int
		label  string
	)
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List exported task snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				cfg, err := loadConfig(*configPath)
				if err != nil {
					return err
				}
				dbPath = cfg.ExportPath
			}
			out := cmd.OutOrStdout()
			if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(out, "no snapshots in %s\n", dbPath)
				return nil
			}
			repo, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer repo.Close()

			snaps, err := repo.ListSnapshots(cmd.Context(), storage.SnapshotListFilter{Label: label, Limit: limit})
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Fprintf(out, "no snapshots in %s\n", dbPath)
				return nil
			}
			fmt.Fprintf(out, "%-36s  %-20s  %-9s  %s\n", "ID", "LABEL", "FILTER", "CREATED")
			fmt.Fprintln(out, strings.Repeat("-", 90))
			for _, s := range snaps {
				fmt.Fprintf(out, "%-36s  %-20s  %-9s  %s\n", s.ID, valueOrDash(s.Label), s.Filter, s.CreatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "Snapshot database (defaults to export_path from config)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum snapshots to list")
	cmd.Flags().StringVar(&label, "label", "", "Only list snapshots with this label")
	return cmd
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
