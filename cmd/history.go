/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/bedrocktran/internal/config"
	"github.com/valpere/bedrocktran/internal/prompt"
	"github.com/valpere/bedrocktran/internal/store"
)

var (
	historyKind  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded invocations",
	Long: `List, inspect, and clear the SQLite invocation history.

Invocations are recorded only when history is enabled (--history or
"history: true" in the config file).`,
}

// withStore opens the configured history database for the duration of fn.
func withStore(fn func(ctx context.Context, db *store.Store) error) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	db, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(context.Background(), db)
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded invocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyKind != "" {
			if _, err := prompt.ParseKind(historyKind); err != nil {
				return err
			}
		}
		return withStore(func(ctx context.Context, db *store.Store) error {
			entries, err := db.ListInvocations(ctx, historyKind, historyLimit)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No recorded invocations.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tMODEL\tTARGET\tLATENCY\tWHEN\tFAILED\tTEXT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dms\t%s\t%v\t%s\n",
					e.ID, e.Kind, e.ModelID, e.TargetLang, e.LatencyMs,
					e.Timestamp.Format("2006-01-02 15:04"), e.Error != "",
					snippet(e.InputText, 40))
			}
			return w.Flush()
		})
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded invocation in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, db *store.Store) error {
			e, err := db.GetInvocation(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("ID:      %s\n", e.ID)
			fmt.Printf("Kind:    %s\n", e.Kind)
			fmt.Printf("Model:   %s\n", e.ModelID)
			if e.SourceLang != "" || e.TargetLang != "" {
				fmt.Printf("Langs:   %s -> %s\n", e.SourceLang, e.TargetLang)
			}
			fmt.Printf("When:    %s (%dms)\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.LatencyMs)
			fmt.Printf("\nInput:\n%s\n", e.InputText)
			if e.Translated != "" {
				fmt.Printf("\nTranslated:\n%s\n", e.Translated)
			}
			if e.Error != "" {
				fmt.Printf("\nError:\n%s\n", e.Error)
			} else {
				fmt.Printf("\nOutput:\n%s\n", e.OutputText)
			}
			return nil
		})
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show invocation history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, db *store.Store) error {
			stats, err := db.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			fmt.Printf("Total invocations:  %d\n", stats.Total)
			fmt.Printf("Failed invocations: %d\n", stats.Failed)
			fmt.Printf("Average latency:    %.0fms\n", stats.AvgLatencyMs)
			for _, k := range prompt.Kinds {
				fmt.Printf("  %-10s %d\n", k, stats.ByKind[string(k)])
			}
			return nil
		})
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded invocation by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, db *store.Store) error {
			if err := db.DeleteInvocation(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete entry: %w", err)
			}
			fmt.Printf("Deleted entry: %s\n", args[0])
			return nil
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded invocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, db *store.Store) error {
			n, err := db.ClearInvocations(ctx)
			if err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Printf("Cleared %d entries from history.\n", n)
			return nil
		})
	},
}

func snippet(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyListCmd.Flags().StringVarP(&historyKind, "kind", "k", "", "Filter by kind (translate, respond, analyze)")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
