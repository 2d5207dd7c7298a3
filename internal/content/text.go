package content

// Span is a run of text inside a paragraph. A non-empty Href turns it into an
// outbound link; Strong emphasises it.
type Span struct {
	Text   string
	Strong bool
	Href   string
}

// Paragraph is an ordered run of spans.
type Paragraph []Span

// Profile holds the personal details rendered across the page.
type Profile struct {
	Name         string
	Role         string
	Greeting     string
	Tagline      string
	About        []Paragraph
	ContactBlurb string
	Email        string
	Phone        string
	PhoneDisplay string
	GitHubURL    string
	GitHubLabel  string
}

const githubURL = "https://github.com/zain0812"

var owner = Profile{
	Name:     "Muhammad Zain Ul Aabidin",
	Role:     "Data Scientist",
	Greeting: "Hi — I’m Muhammad Zain Ul Aabidin",
	Tagline: `Data Scientist focusing on turning ambiguity into clarity through reproducible,
	production-ready models and clear visual storytelling.`,
	About: []Paragraph{
		{
			{Text: "I’m "},
			{Text: "Muhammad Zain Ul Aabidin", Strong: true},
			{Text: `, a data scientist who loves turning ambiguity into clarity. By combining careful data
	engineering with statistically sound modeling, I build solutions that not only predict but also explain.`},
		},
		{
			{Text: `My projects emphasize reproducibility and production readiness — from automated pipelines
	and robust validation frameworks to clear visualizations that communicate model behavior to both
	technical and non-technical audiences.`},
		},
		{
			{Text: `I enjoy tackling challenges in forecasting, classification, and causal analysis, and I share
	open-source notebooks and tools on my `},
			{Text: "GitHub", Href: githubURL},
			{Text: " to help others reproduce and extend my work."},
		},
		{
			{Text: `If your team needs models that are both accurate and trustworthy, I build them end-to-end,
	bridging the gap between analysis and real-world impact.`},
		},
	},
	ContactBlurb: `Let’s connect and collaborate. I respond to inquiries about data science consulting,
	collaborations, and open-source contributions.`,
	Email:        "mzainaabidin931@gmail.com",
	Phone:        "+393508452198",
	PhoneDisplay: "+39 350 845 2198",
	GitHubURL:    githubURL,
	GitHubLabel:  "github.com/zain0812",
}

// Owner returns the site owner's profile. The About paragraphs are copied so
// callers cannot reach the package-level value.
func Owner() Profile {
	p := owner
	p.About = make([]Paragraph, len(owner.About))
	for i, para := range owner.About {
		p.About[i] = append(Paragraph(nil), para...)
	}
	return p
}
