package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"easytocook/internal/recipe"
)

// Uploader mirrors generated images into our own object storage so recipe
// pages don't depend on short-lived provider URLs.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Generator calls a hosted text-to-image service for featured images. Every
// failure here is soft: a recipe without an image is fine, a failed
// ingestion is not.
type Generator struct {
	APIKey   string
	Endpoint string
	Client   *http.Client
	Uploads  Uploader // optional
}

func NewGenerator(uploads Uploader) *Generator {
	return &Generator{
		APIKey:   os.Getenv("FAL_API_KEY"),
		Endpoint: "https://fal.run/fal-ai/flux/dev",
		Client:   &http.Client{Timeout: 120 * time.Second},
		Uploads:  uploads,
	}
}

// photoStyle pins the food-photography look so every featured image matches
// the rest of the site.
const photoStyle = "overhead food photography, natural window light, rustic wooden table, " +
	"shallow depth of field, garnished and styled for a food blog, no text, no hands"

// GenerateFeaturedImage returns an image URL, or "" when generation is not
// configured or fails.
func (g *Generator) GenerateFeaturedImage(ctx context.Context, d *recipe.Draft) string {
	if g.APIKey == "" {
		log.Println("Image generation skipped: FAL_API_KEY not set")
		return ""
	}

	payload := map[string]any{
		"prompt":     buildImagePrompt(d),
		"image_size": "landscape_4_3",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		log.Printf("❌ Image generation failed: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("❌ Image generation failed: status %d", resp.StatusCode)
		return ""
	}

	var result struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("❌ Image generation failed: %v", err)
		return ""
	}
	if len(result.Images) == 0 || result.Images[0].URL == "" {
		log.Println("❌ Image generation returned no images")
		return ""
	}

	url := result.Images[0].URL
	log.Printf("✅ Featured image generated for %q", d.Title)

	if g.Uploads != nil {
		if mirrored := g.mirror(ctx, url); mirrored != "" {
			return mirrored
		}
	}
	return url
}

// mirror copies the provider image into object storage. Returns "" on any
// failure, in which case the provider URL is used as-is.
func (g *Generator) mirror(ctx context.Context, srcURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return ""
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	key := fmt.Sprintf("recipes/%s.jpg", uuid.New().String())
	publicURL, err := g.Uploads.Upload(ctx, key, resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Image mirror failed, keeping provider URL: %v", err)
		return ""
	}
	return publicURL
}

// buildImagePrompt describes the finished dish from the draft's own data.
func buildImagePrompt(d *recipe.Draft) string {
	var parts []string
	parts = append(parts, d.Title)
	if len(d.Cuisine) > 0 {
		parts = append(parts, strings.Join(d.Cuisine, " and ")+" cuisine")
	}

	var key []string
	for _, g := range d.IngredientGroups {
		for _, ing := range g.Ingredients {
			key = append(key, ing.Name)
			if len(key) >= 5 {
				break
			}
		}
		if len(key) >= 5 {
			break
		}
	}
	if len(key) > 0 {
		parts = append(parts, "featuring "+strings.Join(key, ", "))
	}

	parts = append(parts, photoStyle)
	return strings.Join(parts, ", ")
}
