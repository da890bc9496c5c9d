// Package assets copies deploy-time static files into a publish directory.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// StaticFiles are the optional root-level files carried into the publish
// output unmodified. Absent files are skipped with a log notice.
var StaticFiles = []string{
	"robots.txt",
	"sitemap.xml",
	"_redirects",
	"netlify.toml",
}

// CopyStatic copies each of StaticFiles from root into publishDir, creating
// the directory when needed. Only unexpected I/O failures return an error;
// missing sources never do.
func CopyStatic(root, publishDir string) error {
	if err := os.MkdirAll(publishDir, 0o755); err != nil {
		return fmt.Errorf("assets: create publish dir: %w", err)
	}
	for _, name := range StaticFiles {
		src := filepath.Join(root, name)
		dst := filepath.Join(publishDir, name)
		if err := copyFile(src, dst); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.WithField("file", name).Info("assets: optional file absent, skipping")
				continue
			}
			return fmt.Errorf("assets: copy %s: %w", name, err)
		}
		log.WithField("file", name).Debug("assets: copied")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
