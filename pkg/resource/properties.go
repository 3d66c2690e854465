package resource

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	raw        = viper.New()
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Load merges YAML properties from r over the ones already loaded and re-resolves
// every ${ENV:default} placeholder.
func Load(r io.Reader) error {
	mu.Lock()
	defer mu.Unlock()

	raw.SetConfigType("yml")
	if err := raw.MergeConfig(r); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	flat := make(map[string]any)
	parsePropertiesMap("", raw.AllSettings(), flat)

	resolved := viper.New()
	for key, value := range flat {
		resolved.Set(key, value)
	}
	properties = resolved
	return nil
}

// LoadFile merges the YAML file at filepath over the loaded properties.
func LoadFile(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("fail to open properties file %s: %w", filepath, err)
	}
	defer func() { _ = file.Close() }()
	return Load(file)
}

// Set overrides a single property, mostly useful in tests.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.Set(key, value)
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces each ${NAME:default} with the environment value or its default
func resolveEnvVariable(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is unset or blank.
func GetStringOrDefault(key, defaultValue string) string {
	if value := GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is unset or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return current().GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is unset.
func GetIntOrDefault(key string, defaultValue int) int {
	if !current().IsSet(key) || current().GetString(key) == "" {
		return defaultValue
	}
	return GetInt(key)
}
