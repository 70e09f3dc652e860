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
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/valpere/bedrocktran/internal/awsclient"
	"github.com/valpere/bedrocktran/internal/catalog"
	"github.com/valpere/bedrocktran/internal/config"
	"github.com/valpere/bedrocktran/internal/metrics"
	"github.com/valpere/bedrocktran/internal/store"
	"github.com/valpere/bedrocktran/internal/translator"
)

// app bundles everything a command needs. Build it with newApp and release
// it with Close.
type app struct {
	cfg     *config.Config
	service *translator.BedrockService
	catalog *catalog.Catalog
	db      *store.Store
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	awsOpts := awsclient.Options{
		Region:        cfg.Region,
		Profile:       cfg.Profile,
		Timeout:       cfg.Timeout,
		CatalogRegion: cfg.CatalogRegion,
	}
	awsCfg, err := awsclient.LoadConfig(ctx, awsOpts)
	if err != nil {
		return nil, err
	}
	clients := awsclient.New(awsCfg, awsOpts)

	service := translator.NewBedrockService(clients.Runtime, cfg.MaxTokens)
	service.AddRecorder(metrics.Recorder{})

	var languages catalog.LanguageLister
	switch cfg.LanguageSource {
	case "google":
		languages = catalog.NewGoogleLanguages(cfg.GoogleCredentials, language.English)
	default:
		languages = catalog.NewAWSLanguages(clients.Translate)
	}

	a := &app{
		cfg:     cfg,
		service: service,
		catalog: catalog.New(languages, catalog.NewAWSModels(clients.Bedrock, "")),
	}

	if cfg.History {
		db, err := openStore(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		a.db = db
		service.AddRecorder(db)
	}

	return a, nil
}

func (a *app) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// model returns flagValue when set, otherwise the configured default model.
func (a *app) model(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.cfg.Model
}

// languageName resolves code to a display name, falling back to the code
// when the catalog cannot be reached.
func (a *app) languageName(ctx context.Context, code string) string {
	name, err := a.catalog.LanguageName(ctx, code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Language lookup failed: %v, using %q\n", err, code)
		return code
	}
	return name
}

func openStore(dbPath string) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// readInput returns text when set, otherwise the contents of path. A path of
// "-" reads standard input.
func readInput(text, path string) (string, error) {
	if text != "" {
		return text, nil
	}
	switch path {
	case "":
		return "", fmt.Errorf("no input given: pass text or a file")
	case "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(b), nil
	}
}

// writeOutput writes text to path, or to stdout when path is empty.
func writeOutput(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
