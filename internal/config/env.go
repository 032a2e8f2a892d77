package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

var envFileNames = []string{".env", ".env.local"}

// envRef matches ${NAME}. Bare $name is left alone so document ids and
// labels containing '$' survive decoding.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// LookupFunc resolves a variable name.
type LookupFunc func(name string) (string, bool)

// readEnvFile reads the first .env/.env.local found next to the config file.
// The process environment is left untouched, so every load sees the current
// file contents.
func readEnvFile(dir string) (string, map[string]string, error) {
	for _, name := range envFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		vars, err := godotenv.Read(p)
		if err != nil {
			return p, nil, err
		}
		slog.Debug("Read environment file", logfields.Path(p), logfields.Count(len(vars)))
		return p, vars, nil
	}
	return "", nil, nil
}

// envLookup resolves from the process environment first, then from file.
func envLookup(file map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := file[name]
		return v, ok
	}
}

// expandEnv replaces ${NAME} references; unknown names expand to "".
func expandEnv(s string, lookup LookupFunc) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		v, _ := lookup(ref[2 : len(ref)-1])
		return v
	})
}
