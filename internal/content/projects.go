// Package content holds the static data the portfolio page is rendered from.
package content

import (
	"errors"
	"fmt"
)

// ErrDuplicateTitle is returned by Validate when two entries share a title.
var ErrDuplicateTitle = errors.New("duplicate project title")

// ProjectEntry describes one showcased project.
type ProjectEntry struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link"`
}

var projects = []ProjectEntry{
	{
		Title:    "Resume Project",
		Subtitle: "NLP resume analyzer",
		Description: "A machine learning–powered resume analyzer that extracts, parses, and evaluates candidate data " +
			"to predict role suitability. Automated text extraction, keyword matching, and skill-based scoring for candidate profiles.",
		Tech: []string{"Python", "NLP", "Scikit-learn", "Flask", "Pandas"},
		Link: githubURL,
	},
	{
		Title:    "Altcoins Analysis",
		Subtitle: "Crypto time-series & volatility",
		Description: "Explores cryptocurrency market dynamics and altcoin behavior using time-series analysis " +
			"and volatility modeling to detect trends and signals.",
		Tech: []string{"Python", "Pandas", "NumPy", "Matplotlib", "Seaborn"},
		Link: githubURL,
	},
	{
		Title:    "CAPTCHA Solver",
		Subtitle: "Computer vision + deep learning",
		Description: "An image-based CAPTCHA solver built with CNNs and OpenCV. Focused on preprocessing pipelines, " +
			"character segmentation, and model robustness evaluation.",
		Tech: []string{"TensorFlow", "OpenCV", "CNN"},
		Link: githubURL,
	},
	{
		Title:    "Other Projects",
		Subtitle: "Experiments & utilities",
		Description: "A collection of smaller experiments and utilities across ML, automation, and visualization — " +
			"documented with reproducible notebooks on GitHub.",
		Tech: []string{"Python", "Jupyter", "Streamlit"},
		Link: githubURL,
	},
}

// Projects returns a copy of the showcased projects in display order.
func Projects() []ProjectEntry {
	out := make([]ProjectEntry, len(projects))
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		out[i] = p
	}
	return out
}

// Validate reports the first title that appears more than once.
func Validate(entries []ProjectEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Title]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTitle, e.Title)
		}
		seen[e.Title] = struct{}{}
	}
	return nil
}
