package msg

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mu       sync.RWMutex
	messages = make(map[string]string)
)

// Load reads a YAML message catalogue from r and merges it over the loaded messages.
func Load(r io.Reader) error {
	catalogue := viper.New()
	catalogue.SetConfigType("yml")
	if err := catalogue.ReadConfig(r); err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	parseMessageMap("", catalogue.AllSettings(), messages)
	return nil
}

// parseMessageMap reads the yml tree recursively into dotted keys
func parseMessageMap(prefix string, data map[string]any, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args.
// Non primitive args are rendered as JSON.
func GetMessage(key string, args ...any) string {
	mu.RLock()
	message, exists := messages[strings.ToLower(key)]
	mu.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		message = strings.ReplaceAll(message, "{"+strconv.Itoa(i)+"}", argToString(arg))
	}
	return message
}

func argToString(arg any) string {
	if arg == nil {
		return ""
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}

	switch reflect.TypeOf(arg).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return fmt.Sprint(arg)
	}

	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}
