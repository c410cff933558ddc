package heuristics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/goheuristics/internal/document"
	"github.com/hyperifyio/goheuristics/internal/fetch"
)

func evaluateHTML(t *testing.T, html string) Report {
	t.Helper()
	r := Evaluate("https://example.test/", document.Parse([]byte(html), "text/html; charset=utf-8"))
	if !r.Complete() {
		t.Fatalf("expected complete report, got %+v", r.Sections)
	}
	return r
}

func finding(t *testing.T, r Report, h Heuristic) string {
	t.Helper()
	f := r.Findings(h)
	if len(f) != 1 {
		t.Fatalf("expected exactly one finding for %s, got %v", h, f)
	}
	return f[0]
}

func TestAll_CanonicalOrder(t *testing.T) {
	want := []string{
		"1. Visibility of System Status",
		"2. Match Between System and Real World",
		"3. User Control and Freedom",
		"4. Consistency and Standards",
		"5. Error Prevention",
		"6. Recognition Rather Than Recall",
		"7. Flexibility and Efficiency of Use",
		"8. Aesthetic and Minimalist Design",
		"9. Error Recovery",
		"10. Help and Documentation",
	}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("expected %d heuristics, got %d", len(want), len(all))
	}
	for i, h := range all {
		if h.Label() != want[i] {
			t.Fatalf("position %d: got %q want %q", i, h.Label(), want[i])
		}
	}
}

func TestEvaluate_EmptyPageYieldsAllNegatives(t *testing.T) {
	r := evaluateHTML(t, "<html><body><p>Hello there</p></body></html>")
	want := []string{
		"No obvious system status feedback detected.",
		"Language appears user-friendly.",
		"No undo or cancel options detected.",
		"Few standard UI components detected.",
		"No forms detected.",
		"Few labels detected.",
		"No keyboard shortcuts detected.",
		"Content density appears reasonable.",
		"No visible error messages detected.",
		"No help documentation detected.",
	}
	for i, s := range r.Sections {
		if s.Findings[0] != want[i] {
			t.Fatalf("%s: got %q want %q", s.Heuristic, s.Findings[0], want[i])
		}
	}
	if r.FindingCount() != 10 {
		t.Fatalf("expected 10 findings, got %d", r.FindingCount())
	}
}

func TestEvaluate_RichPageYieldsAllPositives(t *testing.T) {
	html := `<html><body>
	  <p>Loading your dashboard via the API...</p>
	  <a href="/prev">Back</a>
	  <form><label for="q">Query</label><input id="q" accesskey="s"><button>Go</button></form>
	  <p class="err">Invalid input</p>
	  <a href="/faq">FAQ</a>
	  <p>` + strings.Repeat("word ", 1100) + `</p>
	</body></html>`
	r := evaluateHTML(t, html)
	want := []string{
		"Status indicators found.",
		"Technical jargon detected.",
		"Undo/Cancel navigation found.",
		"Standard UI components (buttons/forms) detected.",
		"Forms detected — input validation should be reviewed.",
		"Labels detected to aid recognition.",
		"Keyboard shortcuts detected.",
		"High content density detected.",
		"Error messages detected.",
		"Help/FAQ links detected.",
	}
	for i, s := range r.Sections {
		if s.Findings[0] != want[i] {
			t.Fatalf("%s: got %q want %q", s.Heuristic, s.Findings[0], want[i])
		}
	}
}

func TestEvaluate_ConcreteCases(t *testing.T) {
	t.Run("loading text", func(t *testing.T) {
		r := evaluateHTML(t, "<p>Loading...</p>")
		if got := finding(t, r, VisibilityOfSystemStatus); got != "Status indicators found." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("no form", func(t *testing.T) {
		r := evaluateHTML(t, "<p>Just text</p>")
		if got := finding(t, r, ErrorPrevention); got != "No forms detected." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("button", func(t *testing.T) {
		r := evaluateHTML(t, "<button>OK</button>")
		if got := finding(t, r, ConsistencyAndStandards); got != "Standard UI components (buttons/forms) detected." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("dense text without keywords", func(t *testing.T) {
		r := evaluateHTML(t, "<p>"+strings.Repeat("z", 6000)+"</p>")
		if got := finding(t, r, AestheticAndMinimalistDesign); got != "High content density detected." {
			t.Fatalf("got %q", got)
		}
		if got := finding(t, r, MatchSystemAndRealWorld); got != "Language appears user-friendly." {
			t.Fatalf("got %q", got)
		}
		if got := finding(t, r, ErrorRecovery); got != "No visible error messages detected." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("cancel anchor", func(t *testing.T) {
		r := evaluateHTML(t, `<a href="#">Cancel</a>`)
		if got := finding(t, r, UserControlAndFreedom); got != "Undo/Cancel navigation found." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("exactly threshold is not dense", func(t *testing.T) {
		r := evaluateHTML(t, "<p>"+strings.Repeat("z", DensityThreshold)+"</p>")
		if got := finding(t, r, AestheticAndMinimalistDesign); got != "Content density appears reasonable." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("help text outside anchors does not count", func(t *testing.T) {
		r := evaluateHTML(t, `<p>Need help? Contact support.</p>`)
		if got := finding(t, r, HelpAndDocumentation); got != "No help documentation detected." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("mixed case keywords", func(t *testing.T) {
		r := evaluateHTML(t, `<p>Request FAILED: Backend Exception</p>`)
		if got := finding(t, r, ErrorRecovery); got != "Error messages detected." {
			t.Fatalf("got %q", got)
		}
		if got := finding(t, r, MatchSystemAndRealWorld); got != "Technical jargon detected." {
			t.Fatalf("got %q", got)
		}
	})
	t.Run("noscript markup", func(t *testing.T) {
		r := evaluateHTML(t, `<noscript><a href="/help">Help</a><img src="/backend/pixel.gif" alt="x"></noscript><p>Welcome</p>`)
		if got := finding(t, r, MatchSystemAndRealWorld); got != "Language appears user-friendly." {
			t.Fatalf("got %q", got)
		}
		if got := finding(t, r, HelpAndDocumentation); got != "Help/FAQ links detected." {
			t.Fatalf("got %q", got)
		}
	})
}

func TestEvaluate_Idempotent(t *testing.T) {
	html := `<html><body><a href="/help">Help</a><form><button>Send</button></form></body></html>`
	a := evaluateHTML(t, html)
	b := evaluateHTML(t, html)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical reports:\n%+v\n%+v", a, b)
	}
}

type getterFunc func(ctx context.Context, url string) (fetch.Page, error)

func (f getterFunc) Get(ctx context.Context, url string) (fetch.Page, error) { return f(ctx, url) }

func TestAnalyze_UsesFetchedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><p>Loading...</p><label>Email</label></body></html>`))
	}))
	defer srv.Close()

	a := NewAnalyzer(&fetch.Client{Timeout: 2 * time.Second})
	r, err := a.Analyze(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Complete() {
		t.Fatalf("expected complete report")
	}
	if r.URL != srv.URL {
		t.Fatalf("expected report url %q, got %q", srv.URL, r.URL)
	}
	if got := finding(t, r, RecognitionRatherThanRecall); got != "Labels detected to aid recognition." {
		t.Fatalf("got %q", got)
	}
}

func TestAnalyze_RetrievalErrorAbortsWithoutReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewAnalyzer(&fetch.Client{Timeout: 2 * time.Second})
	r, err := a.Analyze(context.Background(), srv.URL)
	var rerr *fetch.RetrievalError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RetrievalError, got %v", err)
	}
	if len(r.Sections) != 0 {
		t.Fatalf("expected no report on failure, got %+v", r)
	}
}

func TestAnalyze_SameBytesSameReport(t *testing.T) {
	body := []byte(`<a accesskey="k" href="#">Undo</a>`)
	a := NewAnalyzer(getterFunc(func(ctx context.Context, url string) (fetch.Page, error) {
		return fetch.Page{URL: url, Body: body, ContentType: "text/html"}, nil
	}))
	first, err := a.Analyze(context.Background(), "https://example.test/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Analyze(context.Background(), "https://example.test/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports")
	}
}
