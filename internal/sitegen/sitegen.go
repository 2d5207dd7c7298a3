// Package sitegen writes the portfolio as a static site.
package sitegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/zain0812/portfolio/internal/assets"
	"github.com/zain0812/portfolio/internal/content"
	"github.com/zain0812/portfolio/internal/views"
)

// IndexFile is the name of the generated page.
const IndexFile = "index.html"

// ErrBrokenAnchor is returned when an in-page link has no matching id.
var ErrBrokenAnchor = errors.New("broken in-page anchor")

// Generate renders the page into outputDir and copies the embedded assets
// next to it. props.AssetPrefix should be relative, e.g. "static".
func Generate(outputDir string, props views.PageProps) error {
	if err := content.Validate(props.Projects); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := views.Page(props).Render(&buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := CheckAnchors(bytes.NewReader(buf.Bytes())); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	outputPath := filepath.Join(outputDir, IndexFile)
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	log.Info().Str("path", outputPath).Int("projects", len(props.Projects)).Msg("generated page")

	staticDir := filepath.Join(outputDir, strings.TrimPrefix(assets.Prefix, "/"))
	if err := CopyAssets(assets.FS(), staticDir); err != nil {
		return err
	}
	return nil
}

// CopyAssets copies every file in src into dst, creating directories as needed.
func CopyAssets(src fs.FS, dst string) error {
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}

		in, err := src.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(destPath)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	})
	if err != nil {
		return fmt.Errorf("copy assets: %w", err)
	}
	log.Debug().Str("dir", dst).Msg("copied assets")
	return nil
}

// CheckAnchors parses an HTML document and verifies every href of the form
// "#id" names an element id present in the same document.
func CheckAnchors(r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	ids := map[string]bool{}
	var fragments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				switch {
				case a.Key == "id":
					ids[a.Val] = true
				case a.Key == "href" && n.Data == "a" && strings.HasPrefix(a.Val, "#") && len(a.Val) > 1:
					fragments = append(fragments, a.Val[1:])
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for _, f := range fragments {
		if !ids[f] {
			return fmt.Errorf("%w: #%s", ErrBrokenAnchor, f)
		}
	}
	return nil
}
