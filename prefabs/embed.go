package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk directory checked before the embedded copies.
var Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// SceneNames lists the scene files available on disk and embedded, sorted and
// without duplicates.
func SceneNames() ([]string, error) {
	seen := make(map[string]struct{})
	embedded, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		return nil, err
	}
	for _, name := range embedded {
		seen[name] = struct{}{}
	}
	if onDisk, err := filepath.Glob(filepath.Join(Dir, "*.yaml")); err == nil {
		for _, path := range onDisk {
			seen[filepath.Base(path)] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
