package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/zain0812/portfolio/internal/content"
)

// ProjectsSection renders the projects region with its heading and grid.
func ProjectsSection(entries []content.ProjectEntry) g.Node {
	return h.Section(h.ID(AnchorProjects), h.Class("mt-10"),
		h.H3(h.Class("text-xl font-semibold text-blue-400 mb-6"), g.Text("Main Projects")),
		ProjectList(entries),
	)
}

// ProjectList renders one card per entry, in order. An empty slice yields an
// empty grid.
func ProjectList(entries []content.ProjectEntry) g.Node {
	return h.Div(h.Class("grid gap-6 md:grid-cols-2"), g.Map(entries, ProjectCard))
}

// ProjectCard renders a single entry. Both outbound links point at Link until
// entries carry a separate live URL.
func ProjectCard(p content.ProjectEntry) g.Node {
	return h.Article(h.Class("rounded-xl p-6 bg-gray-800/90 backdrop-blur border border-gray-700 hover:border-cyan-400 transition"),
		h.H4(h.Class("text-lg font-semibold text-white"), g.Text(p.Title)),
		h.P(h.Class("text-sm text-gray-400 mt-1"), g.Text(p.Subtitle)),
		h.P(h.Class("mt-3 text-sm leading-relaxed text-gray-300"), g.Text(p.Description)),
		h.Div(h.Class("mt-3 flex flex-wrap gap-2"),
			g.Map(p.Tech, func(t string) g.Node {
				return h.Span(h.Class("text-xs px-2 py-1 rounded-full bg-cyan-900/40 text-cyan-300 border border-cyan-600"), g.Text(t))
			}),
		),
		h.Div(h.Class("mt-4 flex items-center justify-between text-sm"),
			externalLink(p.Link, "underline text-cyan-400", g.Text("View on GitHub")),
			externalLink(p.Link, "hover:text-blue-300", g.Text("Live / Repo")),
		),
	)
}
