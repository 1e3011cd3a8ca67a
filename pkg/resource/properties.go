package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Path returns the properties file location, honouring PROPERTIES_FILE_PATH.
func Path() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok && value != "" {
		return value
	}
	return defaultPropertiesPath
}

// Init loads application properties from a YAML file and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	loaded := viper.New()
	loaded.SetConfigFile(filepath)
	loaded.SetConfigType("yml")

	if err := loaded.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", loaded.AllSettings(), resolved)
	for key, value := range resolved {
		loaded.Set(key, value)
	}

	properties = loaded
	return nil
}

// parsePropertiesMap reads recursively the YAML tree into flat dotted keys
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

// resolveEnvVariable replaces every ${NAME:default} occurrence with the environment value or its default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func SetDefault(key string, value any) {
	properties.SetDefault(key, value)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
