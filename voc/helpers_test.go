package voc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeRoot creates a VOC root with the given list files and an empty
// image and annotation for every non-blank name.
func writeRoot(t *testing.T, lists map[Split][]string) string {
	t.Helper()
	dir := t.TempDir()
	for _, sub := range []string{ListDir, ImageDir, AnnotationDir} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.FromSlash(sub)), 0o755))
	}
	for set, names := range lists {
		var content string
		if len(names) > 0 {
			content = strings.Join(names, "\n") + "\n"
		}
		require.NoError(t, os.WriteFile(ListFile(dir, set), []byte(content), 0o644))
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			require.NoError(t, os.WriteFile(ImageFile(dir, name), []byte("jpg"), 0o644))
			require.NoError(t, os.WriteFile(AnnotationFile(dir, name), []byte("png"), 0o644))
		}
	}
	return dir
}
