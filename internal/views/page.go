// Package views builds the portfolio page as a gomponents node tree.
//
// Every function here is pure: the same input always yields the same markup,
// and nothing is read from the clock or the environment.
package views

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/zain0812/portfolio/internal/content"
)

// Region ids addressable from the header navigation.
const (
	AnchorAbout    = "about"
	AnchorProjects = "projects"
	AnchorContact  = "contact"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// PageProps is everything the page is rendered from.
type PageProps struct {
	Profile      content.Profile
	Projects     []content.ProjectEntry
	FormEndpoint string
	// Year is printed in the footer copyright line.
	Year int
	// AssetPrefix is prepended to embedded asset paths, e.g. "/static".
	AssetPrefix string
}

type navLink struct {
	Label  string
	Anchor string
}

var navLinks = []navLink{
	{Label: "About", Anchor: AnchorAbout},
	{Label: "Projects", Anchor: AnchorProjects},
	{Label: "Contact", Anchor: AnchorContact},
}

// Page returns the complete HTML document.
func Page(p PageProps) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(p.Profile.Role+" — "+p.Profile.Name)),
				h.TitleEl(g.Text(p.Profile.Name+" · "+p.Profile.Role)),
				h.Script(h.Src(tailwindCDN)),
				h.Link(h.Rel("stylesheet"), h.Href(assetPath(p.AssetPrefix, "site.css"))),
			),
			h.Body(
				h.Div(h.Class("min-h-screen bg-gradient-to-b from-gray-900 via-gray-800 to-black text-gray-100 relative overflow-hidden"),
					h.Div(h.Class("absolute inset-0 backdrop-photo opacity-20"), h.Aria("hidden", "true")),
					SiteHeader(p.Profile),
					h.Main(h.Class("relative z-10 max-w-5xl mx-auto px-6 py-8"),
						Hero(p.Profile),
						About(p.Profile),
						ProjectsSection(p.Projects),
						ContactSection(p.Profile, p.FormEndpoint),
						SiteFooter(p.Profile, p.Year),
					),
				),
			),
		),
	)
}

// SiteHeader renders the name banner and the in-page navigation.
func SiteHeader(profile content.Profile) g.Node {
	return h.Header(h.Class("relative z-10 max-w-5xl mx-auto px-6 py-8 flex items-center justify-between"),
		h.Div(
			h.H1(h.Class("text-3xl sm:text-4xl font-bold bg-gradient-to-r from-cyan-400 to-blue-500 bg-clip-text text-transparent"),
				g.Text(profile.Name),
			),
			h.P(h.Class("text-sm sm:text-base mt-1 text-gray-300"), g.Text(profile.Role)),
		),
		h.Nav(h.Class("space-x-4 text-sm text-gray-300"),
			g.Map(navLinks, func(l navLink) g.Node {
				return h.A(h.Href("#"+l.Anchor), h.Class("hover:text-white"), g.Text(l.Label))
			}),
			externalLink(profile.GitHubURL, "ml-2 underline hover:text-cyan-400", g.Text("GitHub")),
		),
	)
}

// Hero renders the greeting block. It carries the one-shot entrance
// transition defined in site.css.
func Hero(profile content.Profile) g.Node {
	return h.Section(h.Class(panelClass),
		h.Div(h.Class("hero-enter"),
			h.H2(h.Class("text-2xl sm:text-3xl font-semibold text-cyan-400"), g.Text(profile.Greeting)),
			h.P(h.Class("mt-3 text-base leading-relaxed text-gray-300"), g.Text(collapse(profile.Tagline))),
		),
	)
}

// About renders the about region.
func About(profile content.Profile) g.Node {
	return h.Section(h.ID(AnchorAbout), h.Class("mt-10 "+panelClass),
		h.H3(h.Class("text-xl font-semibold text-blue-400"), g.Text("About")),
		h.Div(h.Class("mt-4 space-y-4 text-gray-300 text-base leading-relaxed"),
			g.Map(profile.About, paragraph),
		),
	)
}

// SiteFooter renders the copyright line.
func SiteFooter(profile content.Profile, year int) g.Node {
	return h.Footer(h.Class("mt-12 text-center text-xs text-gray-500"),
		g.Textf("© %d %s — Built with Go & Tailwind", year, profile.Name),
	)
}

const panelClass = "rounded-2xl p-8 sm:p-12 bg-gray-800/80 backdrop-blur shadow-lg"

func paragraph(para content.Paragraph) g.Node {
	return h.P(g.Map(para, func(s content.Span) g.Node {
		text := g.Text(collapse(s.Text))
		switch {
		case s.Href != "":
			return externalLink(s.Href, "underline text-cyan-400", text)
		case s.Strong:
			return h.Strong(h.Class("text-white"), text)
		default:
			return text
		}
	}))
}

func externalLink(href, class string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noreferrer"), h.Class(class), g.Group(children))
}

func assetPath(prefix, name string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// collapse folds runs of whitespace, including the line breaks of the
// multi-line prose literals, into single spaces. A leading or trailing run
// is kept as one space so adjacent spans stay separated.
func collapse(s string) string {
	out := strings.Join(strings.Fields(s), " ")
	if out == "" {
		return out
	}
	if strings.TrimLeft(s, " \t\n") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\n") != s {
		out += " "
	}
	return out
}
