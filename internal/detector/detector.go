// Package detector guesses the language of source text so that callers can
// pass "auto" instead of naming the source language.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Auto is the source-language value that requests detection.
const Auto = "auto"

// Undetected is interpolated into prompts when detection fails.
const Undetected = "the detected language"

// Detector wraps a lingua language detector. Language models are loaded on
// first use unless the detector was built with WithPreload; reuse the
// instance.
type Detector struct {
	detector  lingua.LanguageDetector
	preloaded bool
}

type Option func(*Detector)

// WithPreload loads every language model while building the detector. Only
// long-running processes should pay for it.
func WithPreload() Option {
	return func(d *Detector) { d.preloaded = true }
}

func New(opts ...Option) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}

	builder := lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	if d.preloaded {
		builder = builder.WithPreloadedLanguageModels()
	}
	d.detector = builder.Build()

	return d
}

// Preloaded reports whether the language models were loaded by New.
func (d *Detector) Preloaded() bool {
	return d.preloaded
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectCode returns the lower-case ISO 639-1 code of text, the form used by
// Amazon Translate language codes.
func (d *Detector) DetectCode(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// ResolveSource returns sourceLang unchanged unless it is empty or Auto, in
// which case the language of text is detected. Undetected is returned when
// detection fails.
func (d *Detector) ResolveSource(text, sourceLang string) string {
	if sourceLang != "" && !strings.EqualFold(sourceLang, Auto) {
		return sourceLang
	}
	if code, ok := d.DetectCode(text); ok {
		return code
	}
	return Undetected
}
