package views

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/zain0812/portfolio/internal/content"
)

func defaultProps() PageProps {
	return PageProps{
		Profile:      content.Owner(),
		Projects:     content.Projects(),
		FormEndpoint: "https://relay.example.com/f/abc",
		Year:         2026,
		AssetPrefix:  "/static",
	}
}

func TestPageIsDeterministic(t *testing.T) {
	first := render(t, Page(defaultProps()))
	second := render(t, Page(defaultProps()))
	if first != second {
		t.Fatal("rendering the same props twice produced different markup")
	}
}

func TestPageAnchorsResolve(t *testing.T) {
	doc := parse(t, render(t, Page(defaultProps())))

	ids := map[string]bool{}
	for _, n := range findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && attr(n, "id") != "" }) {
		ids[attr(n, "id")] = true
	}
	for _, want := range []string{AnchorAbout, AnchorProjects, AnchorContact} {
		if !ids[want] {
			t.Errorf("region %q missing", want)
		}
	}

	var fragments int
	for _, a := range elements(doc, "a") {
		href := attr(a, "href")
		if !strings.HasPrefix(href, "#") {
			continue
		}
		fragments++
		if !ids[strings.TrimPrefix(href, "#")] {
			t.Errorf("link %q has no target", href)
		}
	}
	if fragments != len(navLinks) {
		t.Fatalf("fragment links = %d, want %d", fragments, len(navLinks))
	}
}

func TestPageRegions(t *testing.T) {
	doc := parse(t, render(t, Page(defaultProps())))

	for _, tag := range []string{"header", "main", "footer", "nav"} {
		if len(elements(doc, tag)) != 1 {
			t.Errorf("expected exactly one <%s>", tag)
		}
	}
	if got := len(elements(doc, "article")); got != 4 {
		t.Errorf("cards = %d, want 4", got)
	}

	footer := text(elements(doc, "footer")[0])
	if !strings.Contains(footer, "© 2026 Muhammad Zain Ul Aabidin") {
		t.Errorf("footer = %q, want copyright year and name", footer)
	}

	backdrops := findAll(doc, func(n *html.Node) bool { return hasClass(n, "backdrop-photo") })
	if len(backdrops) != 1 || attr(backdrops[0], "aria-hidden") != "true" {
		t.Errorf("expected one aria-hidden backdrop layer")
	}

	links := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "link" })
	if len(links) != 1 || attr(links[0], "href") != "/static/site.css" {
		t.Errorf("stylesheet link missing or wrong")
	}
}

func TestHeroCarriesEntranceTransition(t *testing.T) {
	doc := parse(t, render(t, Page(defaultProps())))
	heroes := findAll(doc, func(n *html.Node) bool { return hasClass(n, "hero-enter") })
	if len(heroes) != 1 {
		t.Fatalf("hero-enter elements = %d, want 1", len(heroes))
	}
	if got := text(elements(heroes[0], "h2")[0]); got != content.Owner().Greeting {
		t.Errorf("hero greeting = %q", got)
	}
}

func TestAboutKeepsSpanSpacing(t *testing.T) {
	doc := parse(t, render(t, About(content.Owner())))
	paras := elements(doc, "p")
	if len(paras) != 4 {
		t.Fatalf("paragraphs = %d, want 4", len(paras))
	}
	if got := text(paras[0]); !strings.HasPrefix(got, "I’m Muhammad Zain Ul Aabidin, a data scientist") {
		t.Errorf("first paragraph = %q", got)
	}
	if got := text(paras[2]); !strings.Contains(got, "on my GitHub to help") {
		t.Errorf("third paragraph = %q", got)
	}
	if got := len(elements(paras[0], "strong")); got != 1 {
		t.Errorf("strong spans = %d, want 1", got)
	}
}

func TestAssetPath(t *testing.T) {
	tests := []struct {
		prefix, want string
	}{
		{"/static", "/static/site.css"},
		{"/static/", "/static/site.css"},
		{"static", "static/site.css"},
		{"", "site.css"},
	}
	for _, tt := range tests {
		if got := assetPath(tt.prefix, "site.css"); got != tt.want {
			t.Errorf("assetPath(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}
