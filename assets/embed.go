package assets

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed words.txt
var assetsFS embed.FS

// WordsFile is the default word corpus.
const WordsFile = "words.txt"

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// Words returns the embedded word corpus.
func Words() ([]byte, error) {
	return LoadFile(WordsFile)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
