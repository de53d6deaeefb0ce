package loader

import (
	"path/filepath"
	"strings"

	"github.com/dbsmedya/edgarviz/internal/config"
)

// IsRemote reports whether locator is an http(s) URL.
func IsRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// Resolve joins a base path, data directory and file name into a locator.
// URL bases and root-relative deployment bases are joined with forward
// slashes; anything else is treated as a filesystem path.
func Resolve(base, dataDir, file string) string {
	if IsRemote(base) {
		parts := []string{strings.TrimSuffix(base, "/")}
		if dataDir != "" {
			parts = append(parts, strings.Trim(dataDir, "/"))
		}
		parts = append(parts, strings.TrimPrefix(file, "/"))
		return strings.Join(parts, "/")
	}
	return filepath.Join(base, dataDir, file)
}

// FilingsLocator returns the filing-frequency CSV locator for cfg.
func FilingsLocator(cfg *config.DataConfig) string {
	return Resolve(cfg.BasePath(), cfg.DataDir, cfg.FilingsFile)
}

// FiletypesLocator returns the extension-breakdown CSV locator for cfg.
func FiletypesLocator(cfg *config.DataConfig) string {
	return Resolve(cfg.BasePath(), cfg.DataDir, cfg.FiletypesFile)
}
