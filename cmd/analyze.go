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
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/bedrocktran/internal/xmltag"
)

var (
	analyzeOriginalFile   string
	analyzeOriginalText   string
	analyzeTranslatedFile string
	analyzeTranslatedText string
	analyzeModelID        string
	analyzeExtract        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Review the quality of an existing translation",
	Long: `Ask a Bedrock model to review a translation against its original text.
The analysis is written in English.

Example:
  bedrocktran analyze --original post.md --translated post.vi.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		original, err := readInput(analyzeOriginalText, analyzeOriginalFile)
		if err != nil {
			return fmt.Errorf("original: %w", err)
		}
		translated, err := readInput(analyzeTranslatedText, analyzeTranslatedFile)
		if err != nil {
			return fmt.Errorf("translated: %w", err)
		}

		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		analysis, err := a.service.Analyze(ctx, original, translated, a.model(analyzeModelID))
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		if analyzeExtract {
			analysis = strings.TrimSpace(xmltag.ExtractOr(analysis, "analysis"))
		}
		fmt.Println(analysis)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeOriginalFile, "original", "", "File with the original text")
	analyzeCmd.Flags().StringVar(&analyzeOriginalText, "original-text", "", "Original text (instead of --original)")
	analyzeCmd.Flags().StringVar(&analyzeTranslatedFile, "translated", "", "File with the translated text")
	analyzeCmd.Flags().StringVar(&analyzeTranslatedText, "translated-text", "", "Translated text (instead of --translated)")
	analyzeCmd.Flags().StringVarP(&analyzeModelID, "model", "m", "", "Bedrock model ID (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeExtract, "extract", false, "Print only the text inside the answer tags")
}
