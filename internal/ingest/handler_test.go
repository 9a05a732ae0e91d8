package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"easytocook/internal/recipe"
	"easytocook/internal/scrape"
	"easytocook/internal/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *recipe.InMemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := recipe.NewInMemoryRepository()
	service := NewService(
		scrape.NewScraper(),
		nil, // no rewriter in tests
		nil, // no image generation in tests
		recipe.NewService(repo),
		session.NewManager(session.DefaultTTL),
	)
	handler := NewHandler(service)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "operator-1")
	})
	r.POST("/ingest/text", handler.PasteText)
	r.POST("/ingest/caption", handler.ImportCaption)
	r.GET("/ingest/pending", handler.Preview)
	r.POST("/ingest/confirm", handler.Confirm)
	r.POST("/ingest/cancel", handler.Cancel)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPasteTextThenConfirm(t *testing.T) {
	r, repo := newTestRouter(t)

	text := "Midnight Noodles\nIngredients:\n- 200g noodles\n- 2 tbsp soy sauce\nInstructions:\n1. Boil the noodles.\n2. Toss with sauce."
	w := doJSON(t, r, http.MethodPost, "/ingest/text", gin.H{"text": text})
	if w.Code != http.StatusOK {
		t.Fatalf("paste status = %d: %s", w.Code, w.Body.String())
	}

	var pasted struct {
		Draft recipe.Draft `json:"draft"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pasted); err != nil {
		t.Fatal(err)
	}
	if pasted.Draft.Title != "Midnight Noodles" {
		t.Errorf("title = %q", pasted.Draft.Title)
	}
	if len(pasted.Draft.IngredientGroups) != 1 || len(pasted.Draft.IngredientGroups[0].Ingredients) != 2 {
		t.Errorf("ingredient groups = %+v", pasted.Draft.IngredientGroups)
	}

	// Preview shows the same pending draft.
	w = doJSON(t, r, http.MethodGet, "/ingest/pending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("preview status = %d", w.Code)
	}

	// Confirm persists it as a draft.
	w = doJSON(t, r, http.MethodPost, "/ingest/confirm", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("confirm status = %d: %s", w.Code, w.Body.String())
	}

	saved, err := repo.GetBySlug(context.Background(), "midnight-noodles")
	if err != nil {
		t.Fatalf("saved recipe not found: %v", err)
	}
	if saved.Status != recipe.StatusDraft {
		t.Errorf("status = %q, want draft", saved.Status)
	}

	// The pending slot is cleared after a successful confirm.
	w = doJSON(t, r, http.MethodPost, "/ingest/confirm", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second confirm status = %d, want 404", w.Code)
	}
}

func TestConfirmWithoutPending(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/ingest/confirm", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCancelClearsPending(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/ingest/text", gin.H{"text": "Soup\nIngredients\n- water"})
	doJSON(t, r, http.MethodPost, "/ingest/cancel", nil)

	w := doJSON(t, r, http.MethodGet, "/ingest/pending", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 after cancel", w.Code)
	}
}

func TestImportCaption(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/ingest/caption", gin.H{
		"url":     "https://www.instagram.com/p/ABC/?igsh=xyz",
		"caption": "One Pan Eggs 🤤\n- 2 eggs\n➡️ Fry the eggs",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Draft recipe.Draft `json:"draft"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Draft.Title != "One Pan Eggs" {
		t.Errorf("title = %q", resp.Draft.Title)
	}
	if resp.Draft.SourceURL != "https://www.instagram.com/p/ABC/" {
		t.Errorf("source url = %q, want tracking params stripped", resp.Draft.SourceURL)
	}
	if resp.Draft.Source != "Instagram" {
		t.Errorf("source = %q", resp.Draft.Source)
	}
}

func TestPasteTextValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/ingest/text", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
