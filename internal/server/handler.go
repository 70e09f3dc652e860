// Package server exposes the translator and catalog over a JSON HTTP API.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/valpere/bedrocktran/internal"
	"github.com/valpere/bedrocktran/internal/catalog"
	"github.com/valpere/bedrocktran/internal/prompt"
	"github.com/valpere/bedrocktran/internal/translator"
	"github.com/valpere/bedrocktran/internal/xmltag"
)

// Catalog is the reference-data accessor used by the handlers.
type Catalog interface {
	Languages(ctx context.Context) ([]catalog.Entry, error)
	Models(ctx context.Context) ([]catalog.Entry, error)
	LanguageName(ctx context.Context, code string) (string, error)
}

// History lists past invocations.
type History interface {
	ListInvocations(ctx context.Context, kind string, limit int) ([]internal.InvocationRecord, error)
}

// SourceResolver turns an "auto" source language into a detected one.
type SourceResolver interface {
	ResolveSource(text, sourceLang string) string
}

type Handler struct {
	invoker      translator.Invoker
	catalog      Catalog
	history      History
	resolver     SourceResolver
	defaultModel string
}

// NewHandler creates the API handlers. history and resolver may be nil.
func NewHandler(invoker translator.Invoker, cat Catalog, history History, resolver SourceResolver, defaultModel string) *Handler {
	return &Handler{
		invoker:      invoker,
		catalog:      cat,
		history:      history,
		resolver:     resolver,
		defaultModel: defaultModel,
	}
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", h.GetHealth)
	r.GET("/languages", h.GetLanguages)
	r.GET("/models", h.GetModels)
	r.GET("/history", h.GetHistory)
	r.POST("/translate", h.PostTranslate)
	r.POST("/chat", h.PostChat)
	r.POST("/analyze", h.PostAnalyze)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) GetLanguages(c *gin.Context) {
	h.writeEntries(c, "languages", h.catalog.Languages)
}

func (h *Handler) GetModels(c *gin.Context) {
	h.writeEntries(c, "models", h.catalog.Models)
}

func (h *Handler) writeEntries(c *gin.Context, list string, fetch func(context.Context) ([]catalog.Entry, error)) {
	entries, err := fetch(c.Request.Context())
	if err != nil {
		slog.Error("error fetching catalog", "list", list, "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	c.JSON(http.StatusOK, EntriesResponse{Items: entries, Total: len(entries)})
}

func (h *Handler) GetHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "history is disabled"})
		return
	}

	kind := c.Query("kind")
	if kind != "" {
		if _, err := prompt.ParseKind(kind); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	records, err := h.history.ListInvocations(c.Request.Context(), kind, getQueryInt("limit", 20, c))
	if err != nil {
		slog.Error("error listing history", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Database error"})
		return
	}
	if records == nil {
		records = []internal.InvocationRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"items": records, "total": len(records)})
}

func (h *Handler) PostTranslate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Text == "" || req.TargetLang == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text and target_lang are required"})
		return
	}

	ctx := c.Request.Context()
	source := req.SourceLang
	if h.resolver != nil {
		source = h.resolver.ResolveSource(req.Text, source)
	}

	fields := prompt.Fields{
		Text:       req.Text,
		SourceLang: h.languageName(ctx, source),
		TargetLang: h.languageName(ctx, req.TargetLang),
	}
	h.invoke(c, prompt.KindTranslate, fields, req.ModelID, req.Extract, "translated_text")
}

func (h *Handler) PostChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Text == "" || req.TargetLang == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text and target_lang are required"})
		return
	}

	fields := prompt.Fields{
		Text:       req.Text,
		TargetLang: h.languageName(c.Request.Context(), req.TargetLang),
	}
	h.invoke(c, prompt.KindRespond, fields, req.ModelID, req.Extract, "response")
}

func (h *Handler) PostAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Text == "" || req.Translated == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text and translated are required"})
		return
	}

	fields := prompt.Fields{Text: req.Text, Translated: req.Translated}
	h.invoke(c, prompt.KindAnalyze, fields, req.ModelID, req.Extract, "analysis")
}

func (h *Handler) invoke(c *gin.Context, kind prompt.Kind, fields prompt.Fields, modelID string, extract bool, tag string) {
	if modelID == "" {
		modelID = h.defaultModel
	}

	res, err := h.invoker.Invoke(c.Request.Context(), kind, fields, modelID)
	if err != nil {
		slog.Error("invocation failed", "kind", kind, "model", modelID, "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	text := res.Text
	if extract {
		text = strings.TrimSpace(xmltag.ExtractOr(text, tag))
	}

	c.JSON(http.StatusOK, InvokeResponse{
		Kind:       string(kind),
		ModelID:    modelID,
		SourceLang: fields.SourceLang,
		TargetLang: fields.TargetLang,
		Text:       text,
		LatencyMs:  res.Latency.Milliseconds(),
	})
}

// languageName maps a code to its catalog display name. Catalog failures
// are logged and the code is used as-is.
func (h *Handler) languageName(ctx context.Context, code string) string {
	if h.catalog == nil || code == "" {
		return code
	}
	name, err := h.catalog.LanguageName(ctx, code)
	if err != nil {
		slog.Warn("language lookup failed, using code", "code", code, "error", err)
		return code
	}
	return name
}

func getQueryInt(key string, defaultValue int, c *gin.Context) int {
	value := c.Query(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
