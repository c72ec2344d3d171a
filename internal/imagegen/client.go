// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/klawrence/brandgen/internal/metrics"
	"github.com/klawrence/brandgen/internal/models"
)

// ErrGenerationDisabled is returned when image generation is not
// configured (no API key).
var ErrGenerationDisabled = errors.New("image generation is not configured")

// Options selects per-request generation parameters. Zero values fall
// back to the client's configured defaults.
type Options struct {
	Size    string
	Quality string
	Style   string
	Model   string
}

// Result is one generation outcome. Data holds the downloaded image
// bytes on success and is nil on failure; the campaign record keeps
// only the metadata.
type Result struct {
	Image models.GeneratedImage
	Data  []byte
}

// Generator produces one marketing image for a prompt. Implementations
// must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (*Result, error)
}

// Config configures the OpenAI-backed client.
type Config struct {
	APIKey  string
	BaseURL string

	Model   string
	Size    string
	Quality string
	Style   string

	// RequestsPerMinute throttles outbound generation calls.
	RequestsPerMinute int

	// BreakerMaxFailures consecutive failures open the circuit for
	// BreakerTimeout.
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// apiImage is the breaker-protected slice of one API response.
type apiImage struct {
	url           string
	revisedPrompt string
}

// OpenAIClient generates images through the OpenAI image API with a
// circuit breaker and client-side rate limiting.
type OpenAIClient struct {
	api      openai.Client
	download *http.Client
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[*apiImage]
	defaults Options
	logger   zerolog.Logger

	mu      sync.Mutex
	history []models.GeneratedImage
}

// NewOpenAIClient creates a client from the given configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewOpenAIClient(cfg Config, logger zerolog.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrGenerationDisabled
	}
	if cfg.Model == "" {
		cfg.Model = "dall-e-3"
	}
	if cfg.Size == "" {
		cfg.Size = "1024x1024"
	}
	if cfg.Quality == "" {
		cfg.Quality = "standard"
	}
	if cfg.Style == "" {
		cfg.Style = "vivid"
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 5
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = time.Minute
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	clientLogger := logger.With().Str("component", "imagegen").Logger()

	breaker := gobreaker.NewCircuitBreaker[*apiImage](gobreaker.Settings{
		Name:        "openai-images",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			clientLogger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("image generation circuit breaker state change")
		},
	})

	return &OpenAIClient{
		api:      openai.NewClient(opts...),
		download: &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1),
		breaker:  breaker,
		defaults: Options{
			Size:    cfg.Size,
			Quality: cfg.Quality,
			Style:   cfg.Style,
			Model:   cfg.Model,
		},
		logger: clientLogger,
	}, nil
}

// Generate produces one image for the prompt. The call blocks on the
// rate limiter, then runs the API request through the circuit breaker
// and downloads the resulting image. Successful generations are
// appended to the client's history.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, opts Options) (*Result, error) {
	opts = c.fillDefaults(opts)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	img, err := c.breaker.Execute(func() (*apiImage, error) {
		return c.callAPI(ctx, prompt, opts)
	})
	if err != nil {
		status := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			status = "breaker_open"
		}
		metrics.RecordImageGeneration(status, time.Since(start))
		c.logger.Error().Err(err).Str("status", status).Msg("image generation failed")
		return nil, err
	}

	data, err := c.downloadImage(ctx, img.url)
	if err != nil {
		metrics.RecordImageGeneration("error", time.Since(start))
		return nil, fmt.Errorf("failed to download generated image: %w", err)
	}
	metrics.RecordImageGeneration("success", time.Since(start))

	result := &Result{
		Image: models.GeneratedImage{
			ID:            uuid.New().String(),
			SegmentID:     models.SegmentUnassigned,
			Prompt:        prompt,
			RevisedPrompt: img.revisedPrompt,
			URL:           img.url,
			Size:          opts.Size,
			Quality:       opts.Quality,
			Style:         opts.Style,
			Model:         opts.Model,
			Success:       true,
			Timestamp:     time.Now().UTC(),
		},
		Data: data,
	}

	c.mu.Lock()
	c.history = append(c.history, result.Image)
	c.mu.Unlock()

	c.logger.Info().
		Str("image_id", result.Image.ID).
		Str("size", opts.Size).
		Dur("elapsed", time.Since(start)).
		Msg("image generated")

	return result, nil
}

// callAPI performs the raw OpenAI image request.
func (c *OpenAIClient) callAPI(ctx context.Context, prompt string, opts Options) (*apiImage, error) {
	resp, err := c.api.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:  prompt,
		Model:   openai.ImageModel(opts.Model),
		Size:    openai.ImageGenerateParamsSize(opts.Size),
		Quality: openai.ImageGenerateParamsQuality(opts.Quality),
		Style:   openai.ImageGenerateParamsStyle(opts.Style),
		N:       openai.Int(1),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, errors.New("image API returned no image URL")
	}
	return &apiImage{
		url:           resp.Data[0].URL,
		revisedPrompt: resp.Data[0].RevisedPrompt,
	}, nil
}

// downloadImage fetches the generated image bytes.
func (c *OpenAIClient) downloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.download.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *OpenAIClient) fillDefaults(opts Options) Options {
	if opts.Size == "" {
		opts.Size = c.defaults.Size
	}
	if opts.Quality == "" {
		opts.Quality = c.defaults.Quality
	}
	if opts.Style == "" {
		opts.Style = c.defaults.Style
	}
	if opts.Model == "" {
		opts.Model = c.defaults.Model
	}
	return opts
}

// History returns a copy of the successful generation history.
func (c *OpenAIClient) History() []models.GeneratedImage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.GeneratedImage(nil), c.history...)
}

// ExportHistory writes the generation history as indented JSON. Image
// bytes are never part of the history, so the export is always small.
func (c *OpenAIClient) ExportHistory(path string) error {
	data, err := json.MarshalIndent(c.History(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal generation history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write generation history: %w", err)
	}
	return nil
}

// GenerateBatch runs the prompts sequentially through g, continuing
// past failures. Failed prompts yield a Result with Success=false and
// the error message; the rate limiting inside the generator paces the
// batch.
func GenerateBatch(ctx context.Context, g Generator, prompts []string, opts Options) []Result {
	results := make([]Result, 0, len(prompts))
	for _, prompt := range prompts {
		res, err := g.Generate(ctx, prompt, opts)
		if err != nil {
			results = append(results, Result{
				Image: models.GeneratedImage{
					ID:        uuid.New().String(),
					SegmentID: models.SegmentUnassigned,
					Prompt:    prompt,
					Size:      opts.Size,
					Quality:   opts.Quality,
					Style:     opts.Style,
					Model:     opts.Model,
					Success:   false,
					Error:     err.Error(),
					Timestamp: time.Now().UTC(),
				},
			})
			continue
		}
		results = append(results, *res)
	}
	return results
}

// SaveImage writes image bytes under dir, creating it as needed, and
// returns the full path. A .png extension is appended when the
// filename carries none.
func SaveImage(data []byte, filename, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".png") && !strings.HasSuffix(lower, ".jpg") && !strings.HasSuffix(lower, ".jpeg") {
		filename += ".png"
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return path, nil
}

// SaveBatch persists the successful results of a batch under dir and
// records the file path on each saved image. Filenames are prefixed and
// numbered in batch order.
func SaveBatch(results []Result, dir, prefix string) ([]string, error) {
	var saved []string
	stamp := time.Now().UTC().Format("20060102_150405")

	for i := range results {
		if !results[i].Image.Success || len(results[i].Data) == 0 {
			continue
		}
		filename := fmt.Sprintf("%s_%d_%s.png", prefix, i+1, stamp)
		path, err := SaveImage(results[i].Data, filename, dir)
		if err != nil {
			return saved, err
		}
		results[i].Image.FilePath = path
		saved = append(saved, path)
	}
	return saved, nil
}
