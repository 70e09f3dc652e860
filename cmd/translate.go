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

	"github.com/spf13/cobra"

	"github.com/valpere/bedrocktran/internal/detector"
	"github.com/valpere/bedrocktran/internal/xmltag"
)

var (
	inputFile  string
	inputText  string
	outputFile string
	sourceLang string
	targetLang string
	modelID    string

	withAnalysis bool
	extractTag   bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate text with a Bedrock model",
	Long: `Translate text from the source language to the target language using an
Anthropic model on Amazon Bedrock.

Languages may be given as codes (en, vi, zh-TW) or display names; codes are
resolved to display names through the language catalog. Use --source auto to
detect the source language.

Examples:
  bedrocktran translate --text "Amazon S3 provides object storage" -t vi
  bedrocktran translate -i post.md -o post.vi.md -s en -t vi --analyze`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile != "-" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, err := readInput(inputText, inputFile)
		if err != nil {
			return err
		}

		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		source := sourceLang
		if strings.EqualFold(source, detector.Auto) {
			source = detector.New().ResolveSource(text, source)
			fmt.Fprintf(os.Stderr, "Detected source language: %s\n", source)
		}

		srcName := a.languageName(ctx, source)
		tgtName := a.languageName(ctx, targetLang)
		model := a.model(modelID)

		translated, err := a.service.Translate(ctx, text, srcName, tgtName, model)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		result := translated
		if extractTag {
			result = strings.TrimSpace(xmltag.ExtractOr(translated, "translated_text"))
		}
		if err := writeOutput(outputFile, result); err != nil {
			return err
		}
		if outputFile != "" {
			fmt.Printf("Successfully translated %s to %s\n", srcName, tgtName)
		}

		if withAnalysis {
			fmt.Fprintf(os.Stderr, "Analyzing translation quality...\n")
			analysis, err := a.service.Analyze(ctx, text, translated, model)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}
			if extractTag {
				analysis = strings.TrimSpace(xmltag.ExtractOr(analysis, "analysis"))
			}
			fmt.Printf("\nAnalysis:\n%s\n", analysis)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (- for stdin)")
	translateCmd.Flags().StringVar(&inputText, "text", "", "Text to translate (instead of --input)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for translation (default stdout)")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Source language code or name")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code or name (required)")
	translateCmd.Flags().StringVarP(&modelID, "model", "m", "", "Bedrock model ID (default from config)")
	translateCmd.Flags().BoolVar(&withAnalysis, "analyze", false, "Also analyze the quality of the translation")
	translateCmd.Flags().BoolVar(&extractTag, "extract", false, "Print only the text inside the answer tags")

	translateCmd.MarkFlagRequired("target")
}
