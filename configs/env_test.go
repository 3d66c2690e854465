package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

func TestEmbeddedDefaultsAreLoaded(t *testing.T) {
	assert.Equal(t, 30*time.Minute, resource.GetDuration("app.security.access-token-expire"))
	assert.Equal(t, 100, resource.GetIntOrDefault("app.missing", 100))
	assert.NotEmpty(t, resource.GetString("app.db.url"))
	assert.Equal(t, "Task has been deleted successfuly", msg.GetMessage("todo.deleted"))
	assert.Equal(t, "Olá mundo!", msg.GetMessage("root.greeting"))
}
