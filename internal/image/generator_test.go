package image

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"easytocook/internal/recipe"
)

func testDraft() *recipe.Draft {
	return &recipe.Draft{
		Title:   "Lemon Pasta",
		Cuisine: []string{"Italian"},
		IngredientGroups: []recipe.IngredientGroup{
			{Ingredients: []recipe.Ingredient{{Name: "spaghetti"}, {Name: "lemon"}}},
		},
	}
}

func TestGenerateFeaturedImageMissingKey(t *testing.T) {
	g := &Generator{APIKey: "", Client: http.DefaultClient}
	if url := g.GenerateFeaturedImage(context.Background(), testDraft()); url != "" {
		t.Fatalf("expected empty URL without API key, got %q", url)
	}
}

func TestGenerateFeaturedImageSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Key test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Write([]byte(`{"images": [{"url": "https://cdn.example.com/img.jpg"}]}`))
	}))
	defer srv.Close()

	g := &Generator{APIKey: "test-key", Endpoint: srv.URL, Client: srv.Client()}
	url := g.GenerateFeaturedImage(context.Background(), testDraft())
	if url != "https://cdn.example.com/img.jpg" {
		t.Fatalf("url = %q", url)
	}
}

func TestGenerateFeaturedImageProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := &Generator{APIKey: "test-key", Endpoint: srv.URL, Client: srv.Client()}
	if url := g.GenerateFeaturedImage(context.Background(), testDraft()); url != "" {
		t.Fatalf("provider failure must be soft, got %q", url)
	}
}

type fakeUploader struct {
	key string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	f.key = key
	return "https://media.easytocook.test/" + key, nil
}

func TestGenerateFeaturedImageMirrors(t *testing.T) {
	var mux http.ServeMux
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"images": [{"url": "` + srv.URL + `/raw.jpg"}]}`))
	})
	mux.HandleFunc("/raw.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	})

	uploader := &fakeUploader{}
	g := &Generator{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/generate",
		Client:   srv.Client(),
		Uploads:  uploader,
	}

	url := g.GenerateFeaturedImage(context.Background(), testDraft())
	if uploader.key == "" {
		t.Fatal("image was not mirrored to storage")
	}
	if url != "https://media.easytocook.test/"+uploader.key {
		t.Fatalf("url = %q", url)
	}
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := buildImagePrompt(testDraft())
	for _, want := range []string{"Lemon Pasta", "Italian", "spaghetti"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q: %s", want, prompt)
		}
	}
}
