// Package assets embeds the stylesheet and other files served under /static.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var embedded embed.FS

// Prefix is the URL path the embedded files are served under.
const Prefix = "/static"

// FS returns the embedded files rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		// static is a compile-time embed, so Sub cannot fail.
		panic(err)
	}
	return sub
}

// FileSystem returns the embedded files for http.FileServer. Directories
// report fs.ErrNotExist so they are never listed.
func FileSystem() http.FileSystem {
	return filesOnly{http.FS(FS())}
}

type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
