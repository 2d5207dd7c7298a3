package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/zain0812/portfolio/internal/content"
)

// PlaceholderFormEndpoint is rendered when no form relay is configured. It
// accepts nothing; deployers must supply their own relay URL.
const PlaceholderFormEndpoint = "https://formspree.io/f/your-form-id"

// PlaceholderNote is shown under the form while the placeholder relay is in use.
const PlaceholderNote = "Note: replace the Formspree action URL with your own endpoint to receive messages."

// Form field names posted to the relay.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

const inputClass = "px-3 py-2 rounded bg-gray-900 border border-gray-700 text-gray-200 focus:border-cyan-400 focus:outline-none"

// ContactSection renders the contact region: static channels on one side and
// the relay form on the other.
func ContactSection(profile content.Profile, endpoint string) g.Node {
	return h.Section(h.ID(AnchorContact), h.Class("mt-10 "+panelClass),
		h.H3(h.Class("text-xl font-semibold text-blue-400"), g.Text("Contact")),
		h.P(h.Class("mt-3 text-gray-300 text-base leading-relaxed"), g.Text(collapse(profile.ContactBlurb))),
		h.Div(h.Class("mt-6 grid sm:grid-cols-2 gap-8"),
			h.Div(h.Class("space-y-3"),
				channel("Email", h.A(h.Class("text-sm underline text-gray-200"), h.Href("mailto:"+profile.Email), g.Text(profile.Email))),
				channel("Phone", h.A(h.Class("text-sm underline text-gray-200"), h.Href("tel:"+profile.Phone), g.Text(profile.PhoneDisplay))),
				channel("GitHub", externalLink(profile.GitHubURL, "text-sm underline text-gray-200", g.Text(profile.GitHubLabel))),
			),
			h.Div(
				h.P(h.Class("text-sm font-medium text-cyan-300"), g.Text("Message")),
				ContactForm(endpoint),
				g.If(endpoint == "" || endpoint == PlaceholderFormEndpoint,
					h.P(h.Class("mt-3 text-xs text-gray-400"), g.Text(PlaceholderNote)),
				),
			),
		),
	)
}

// ContactForm renders a plain POST form targeting endpoint. Submission is left
// entirely to the browser; nothing is validated or intercepted.
func ContactForm(endpoint string) g.Node {
	if endpoint == "" {
		endpoint = PlaceholderFormEndpoint
	}
	return h.Form(h.Action(endpoint), h.Method("POST"), h.Class("mt-3 flex flex-col gap-3"),
		h.Input(h.Name(FieldName), h.Placeholder("Your name"), h.Class(inputClass)),
		h.Input(h.Name(FieldEmail), h.Placeholder("Your email"), h.Class(inputClass)),
		h.Textarea(h.Name(FieldMessage), h.Placeholder("Message"), h.Rows("4"), h.Class(inputClass)),
		h.Button(h.Type("submit"), h.Class("mt-2 px-5 py-2 rounded bg-cyan-600 hover:bg-cyan-500 text-white font-medium transition"),
			g.Text("Send"),
		),
	)
}

func channel(label string, link g.Node) g.Node {
	return h.Div(
		h.P(h.Class("text-sm font-medium text-cyan-300"), g.Text(label)),
		link,
	)
}
