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
	chatInputFile  string
	chatText       string
	chatTargetLang string
	chatModelID    string
	chatExtract    bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Respond to a message in the target language",
	Long: `Send a message to a Bedrock model and get the answer written in the
target language.

Example:
  bedrocktran chat --text "What is AWS Lambda?" -t vi`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(chatText, chatInputFile)
		if err != nil {
			return err
		}

		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		answer, err := a.service.Respond(ctx, text, a.languageName(ctx, chatTargetLang), a.model(chatModelID))
		if err != nil {
			return fmt.Errorf("chat failed: %w", err)
		}
		if chatExtract {
			answer = strings.TrimSpace(xmltag.ExtractOr(answer, "response"))
		}
		fmt.Println(answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&chatInputFile, "input", "i", "", "File holding the message (- for stdin)")
	chatCmd.Flags().StringVar(&chatText, "text", "", "Message text (instead of --input)")
	chatCmd.Flags().StringVarP(&chatTargetLang, "target", "t", "", "Target language code or name (required)")
	chatCmd.Flags().StringVarP(&chatModelID, "model", "m", "", "Bedrock model ID (default from config)")
	chatCmd.Flags().BoolVar(&chatExtract, "extract", false, "Print only the text inside the answer tags")

	chatCmd.MarkFlagRequired("target")
}
