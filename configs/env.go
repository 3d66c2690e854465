package configs

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/spf13/viper"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

//go:embed application.yml
var applicationYml []byte

//go:embed messages.yml
var messagesYml []byte

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

// init loads the embedded defaults, then the files named by PROPERTIES_FILE_PATH
// and MESSAGES_FILE_PATH over them.
func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "todo-api"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", ""),
	}

	if err := resource.Load(bytes.NewReader(applicationYml)); err != nil {
		log.Fatal(err.Error())
	}
	if err := msg.Load(bytes.NewReader(messagesYml)); err != nil {
		log.Fatal(err.Error())
	}

	if path := viper.GetString("PROPERTIES_FILE_PATH"); path != "" {
		if err := resource.LoadFile(path); err != nil {
			log.Fatal(err.Error())
		}
	}
	if path := viper.GetString("MESSAGES_FILE_PATH"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer func() { _ = file.Close() }()
		if err := msg.Load(file); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
