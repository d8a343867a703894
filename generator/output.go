package generator

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/internal/logger"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// WriteFiles writes every file below dir, creating directories as needed.
// Files whose content is unchanged are left alone.
func WriteFiles(dir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(dir, f.Path)
		if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, []byte(f.Text)) {
			logger.Logger.Debugw("unchanged", "file", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", f.Path)
		}
		if err := os.WriteFile(path, []byte(f.Text), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", f.Path)
		}
		logger.Logger.Infow("wrote", "file", path, "type", f.Type)
	}
	return nil
}

// WriteDiff writes a unified diff from the files currently below dir to the
// generated ones into diffFile, replacing it. Missing files diff against
// empty text. Nothing below dir is changed.
func WriteDiff(dir, diffFile string, files []File) error {
	out, err := os.OpenFile(diffFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "creating diff file")
	}
	defer out.Close()

	changed := 0
	for _, f := range files {
		original, err := os.ReadFile(filepath.Join(dir, f.Path))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "reading %s", f.Path)
		}
		if string(original) == f.Text {
			continue
		}

		patch := godiffpatch.GeneratePatch(filepath.ToSlash(f.Path), string(original), f.Text)
		if _, err := out.WriteString(patch); err != nil {
			return errors.Wrap(err, "writing diff")
		}
		changed++
	}
	logger.Logger.Infow("changes written", "diff", diffFile, "files", changed)
	return out.Close()
}
