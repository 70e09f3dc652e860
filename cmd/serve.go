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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/valpere/bedrocktran/internal/detector"
	"github.com/valpere/bedrocktran/internal/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the translator over HTTP",
	Long: `Start a JSON HTTP API exposing translation, chat, analysis, the language
and model catalogs, invocation history and Prometheus metrics.

Routes:
  GET  /health
  GET  /languages
  GET  /models
  GET  /history?kind=&limit=
  POST /translate   {"text","source_lang","target_lang","model_id","extract"}
  POST /chat        {"text","target_lang","model_id","extract"}
  POST /analyze     {"text","translated","model_id","extract"}
  GET  /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("listen") {
			v.Set("listen", listenAddr)
		}

		a, err := newApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		var history server.History
		if a.db != nil {
			history = a.db
		}

		h := server.NewHandler(a.service, a.catalog, history, detector.New(detector.WithPreload()), a.cfg.Model)
		r := server.NewRouter(h)

		slog.Info("starting server", "addr", a.cfg.Listen, "region", a.cfg.Region, "history", a.db != nil)
		if err := r.Run(a.cfg.Listen); err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "Address to listen on")
}
