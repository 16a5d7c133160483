package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Origin says where a tuning file was read from.
type Origin int

const (
	OriginEmbedded Origin = iota
	OriginDisk
)

func (o Origin) String() string {
	if o == OriginDisk {
		return "disk"
	}
	return "embedded"
}

// Load reads a YAML tuning file. A copy under ./prefabs wins over the
// embedded one so edits apply without a rebuild.
func Load(name string) ([]byte, error) {
	data, _, err := LoadFrom(name)
	return data, err
}

// LoadFrom is Load that also reports where the data came from.
func LoadFrom(name string) ([]byte, Origin, error) {
	return readOverride(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a tengo script by name, with the same disk override
// under ./prefabs/scripts.
func LoadScript(name string) ([]byte, error) {
	data, _, err := readOverride(ScriptsFS, cleanScriptPath(name))
	return data, err
}

func readOverride(fsys embed.FS, clean string) ([]byte, Origin, error) {
	if clean == "" {
		return nil, OriginEmbedded, fmt.Errorf("prefabs: empty file name")
	}
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, OriginDisk, nil
	}
	data, err := fsys.ReadFile(clean)
	if err != nil {
		return nil, OriginEmbedded, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	return data, OriginEmbedded, nil
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s, _ := strings.CutPrefix(filepath.ToSlash(path), "prefabs/")
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		s, _ = strings.CutPrefix(s, prefix)
	}
	return "scripts/" + s
}
