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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/bedrocktran/internal/catalog"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEntries("languages", (*catalog.Catalog).Languages)
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available Bedrock models",
	Long:  `List the on-demand Anthropic text models available in the configured region.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEntries("models", (*catalog.Catalog).Models)
	},
}

func listEntries(list string, fetch func(*catalog.Catalog, context.Context) ([]catalog.Entry, error)) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := fetch(a.catalog, ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No %s available.\n", list)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Code, e.Name)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(modelsCmd)
}
