package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"gopkg.in/yaml.v3"
)

// The YAML file for the current phase is read once per process. Nested keys
// are flattened to env-style names, so
//
//	indexer:
//	  db_dsn: postgres://...
//
// answers lookups of INDEXER_DB_DSN. Environment variables always win.
var (
	runtimeConfigOnce   sync.Once
	runtimeConfigErr    error
	runtimeConfigValues map[string]string
	runtimeConfigLoaded bool
	runtimeConfigPath   string
	runtimeConfigPhase  string
)

func ensureRuntimeConfigLoaded() error {
	runtimeConfigOnce.Do(func() {
		runtimeConfigValues, runtimeConfigPath, runtimeConfigPhase, runtimeConfigErr = loadConfigFile()
		runtimeConfigLoaded = runtimeConfigErr == nil && runtimeConfigPath != ""
	})
	return runtimeConfigErr
}

func loadConfigFile() (values map[string]string, path, phase string, err error) {
	phase = strings.TrimSpace(os.Getenv("CONFIG_PHASE"))
	if phase == "" {
		phase = "local"
	}

	path = strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	explicit := path != ""
	if !explicit {
		path = filepath.Join("config", "config-"+phase+".yaml")
	}

	body, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return map[string]string{}, "", phase, nil
		}
		return nil, "", phase, fmt.Errorf("read config file %q: %w", path, err)
	}

	values, err = parseConfigYAML(body)
	if err != nil {
		return nil, "", phase, fmt.Errorf("config file %q: %w", path, err)
	}
	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}
	return values, path, phase, nil
}

func parseConfigYAML(body []byte) (map[string]string, error) {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	out := make(map[string]string)
	for key, value := range raw {
		if err := flattenConfigValue(normalizeKeySegment(key), value, out); err != nil {
			return nil, fmt.Errorf("flatten: %w", err)
		}
	}
	return out, nil
}

func flattenConfigValue(prefix string, value any, out map[string]string) error {
	if prefix == "" {
		return nil
	}
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			if err := flattenChild(prefix, key, child, out); err != nil {
				return err
			}
		}
	case map[any]any:
		for keyAny, child := range typed {
			key, ok := keyAny.(string)
			if !ok {
				return fmt.Errorf("unsupported map key type %T under %q", keyAny, prefix)
			}
			if err := flattenChild(prefix, key, child, out); err != nil {
				return err
			}
		}
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			switch scalar := item.(type) {
			case string:
				if s := strings.TrimSpace(scalar); s != "" {
					parts = append(parts, s)
				}
			case bool, int, int64, uint64, float64:
				parts = append(parts, fmt.Sprint(scalar))
			default:
				return fmt.Errorf("unsupported list item type %T under %q", item, prefix)
			}
		}
		out[prefix] = strings.Join(parts, ",")
	case nil:
	default:
		out[prefix] = fmt.Sprint(typed)
	}
	return nil
}

func flattenChild(prefix, key string, child any, out map[string]string) error {
	segment := normalizeKeySegment(key)
	if segment == "" {
		return nil
	}
	return flattenConfigValue(prefix+"_"+segment, child, out)
}

// normalizeKeySegment upper-cases letters and digits and collapses every
// other run of characters into one underscore.
func normalizeKeySegment(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingUnderscore := false
	for _, r := range strings.TrimSpace(raw) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingUnderscore = b.Len() > 0
			continue
		}
		if pendingUnderscore {
			b.WriteByte('_')
			pendingUnderscore = false
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func valueForKey(key string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	if err := ensureRuntimeConfigLoaded(); err != nil {
		return ""
	}
	return strings.TrimSpace(runtimeConfigValues[key])
}
