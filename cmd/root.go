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
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/bedrocktran/internal/config"
)

var version = "0.1.0"

var (
	cfgFile string
	v       *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "bedrocktran",
	Short: "CLI translator backed by Amazon Bedrock",
	Long: `A CLI application that translates text, answers in a target language and
reviews translation quality using Anthropic models on Amazon Bedrock.

Supported languages come from Amazon Translate (or Google Cloud Translation),
available models from the Bedrock model catalog.

Use "bedrocktran translate --help" for translation options.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./bedrocktran.yaml or $HOME/bedrocktran.yaml)")
	rootCmd.PersistentFlags().String("region", "", "AWS region for Bedrock runtime")
	rootCmd.PersistentFlags().String("profile", "", "AWS shared config profile")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Connect/read timeout for AWS calls")
	rootCmd.PersistentFlags().String("db", "", "Database path for invocation history")
	rootCmd.PersistentFlags().Bool("history", false, "Record invocations in the history database")
}

// initConfig loads .env, the config file and the environment, then lets
// explicitly set persistent flags override them.
func initConfig(cmd *cobra.Command) error {
	_ = godotenv.Load()

	var err error
	v, err = config.New(cfgFile)
	if err != nil {
		return err
	}

	for _, name := range []string{"region", "profile", "timeout", "db", "history"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(name, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	return nil
}
