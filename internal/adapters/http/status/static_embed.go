package status

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var statusStaticFS embed.FS

// indexFS exposes a sub-filesystem rooted at static/.
var indexFS fs.FS = func() fs.FS {
	sub, err := fs.Sub(statusStaticFS, "static")
	if err != nil {
		return statusStaticFS
	}
	return sub
}()
