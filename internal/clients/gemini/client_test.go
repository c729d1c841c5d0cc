package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

func testLog(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	got, err := ExtractJSON("Sure! Here it is:\n```json\n{\"title\":\"T\",\"content\":\"C\",\"mcqs\":[]}\n```\nHope that helps.")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.HasPrefix(got, "{") || !strings.HasSuffix(got, "}") {
		t.Fatalf("unexpected payload: %q", got)
	}
	if !strings.Contains(got, "\"title\":\"T\"") {
		t.Fatalf("payload lost fields: %q", got)
	}
}

func TestExtractJSONNoBraces(t *testing.T) {
	t.Parallel()

	_, err := ExtractJSON("no json here at all")
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestExtractJSONSpansOuterBraces(t *testing.T) {
	t.Parallel()

	got, err := ExtractJSON(`prefix {"a":{"b":1}} suffix`)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"a":{"b":1}}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_BASE_URL", srv.URL)
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")

	c, err := NewClient(testLog(t))
	if err != nil {
		t.Fatalf("init client: %v", err)
	}
	return c
}

func completionBody(text string) string {
	payload := fmt.Sprintf("%q", text)
	return `{"candidates":[{"content":{"parts":[{"text":` + payload + `}]}}]}`
}

func TestGenerateModuleParsesCompletion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, completionBody(`Here you go: {"title":"Cells","content":"Summary","mcqs":[{"question":"Q?","options":["A","B","C","D"],"correct":1}]}`))
	})

	module, err := c.GenerateModule(context.Background(), "some extracted text")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if module.Title != "Cells" || module.Content != "Summary" {
		t.Fatalf("unexpected module: %+v", module)
	}
	if len(module.MCQs) != 1 || module.MCQs[0].Correct != 1 {
		t.Fatalf("unexpected mcqs: %+v", module.MCQs)
	}
}

func TestGenerateModuleUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.GenerateModule(context.Background(), "text")
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestGenerateModuleMalformedCompletion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody("I could not produce the module, sorry."))
	})

	_, err := c.GenerateModule(context.Background(), "text")
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestAPIKeyTravelsInHeaderNotURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("missing api key header: got=%q", got)
		}
		if strings.Contains(r.URL.RawQuery, "test-key") {
			t.Errorf("api key leaked into the URL: %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, completionBody("ok"))
	})

	if _, err := c.GenerateText(context.Background(), "hi"); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestTransportErrorDoesNotCarryAPIKey(t *testing.T) {
	// A dead endpoint makes Do fail with a *url.Error quoting the full URL.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	t.Setenv("GEMINI_API_KEY", "SUPER-SECRET-KEY")
	t.Setenv("GEMINI_BASE_URL", srv.URL)

	c, err := NewClient(testLog(t))
	if err != nil {
		t.Fatalf("init client: %v", err)
	}

	_, err = c.GenerateText(context.Background(), "hi")
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if strings.Contains(err.Error(), "SUPER-SECRET-KEY") {
		t.Fatalf("api key leaked into the error chain: %v", err)
	}
}

func TestGenerateModuleTruncatesOnRuneBoundary(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		} else if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			prompt = req.Contents[0].Parts[0].Text
		}
		fmt.Fprint(w, completionBody(`{"title":"T","content":"C","mcqs":[]}`))
	})

	// One ASCII byte then multi-byte runes: a byte-index cut at the limit
	// would land mid-rune.
	text := "a" + strings.Repeat("é", promptPrefixLimit)
	if _, err := c.GenerateModule(context.Background(), text); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !utf8.ValidString(prompt) {
		t.Fatal("prompt contains a split rune")
	}
	if strings.Contains(prompt, text) {
		t.Fatal("expected the document text to be truncated")
	}
}

func TestFirstRunes(t *testing.T) {
	t.Parallel()

	if got := firstRunes("héllo", 3); got != "hél" {
		t.Fatalf("unexpected prefix: got=%q want=%q", got, "hél")
	}
	if got := firstRunes("hi", 10); got != "hi" {
		t.Fatalf("short input must pass through: got=%q", got)
	}
	if got := firstRunes("héllo", 0); got != "" {
		t.Fatalf("zero limit: got=%q", got)
	}
}

func TestGenerateTextReturnsCompletion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody("Mitochondria produce ATP."))
	})

	got, err := c.GenerateText(context.Background(), "what do mitochondria do?")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Mitochondria produce ATP." {
		t.Fatalf("unexpected completion: %q", got)
	}
}
