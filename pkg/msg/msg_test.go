package msg

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogue = `
user:
  error:
    not-found: "User Not Found"
app:
  req-end: "{0} {1} finished with {2}"
  started: "started with {0}"
`

func TestGetMessage(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(catalogue)))

	assert.Equal(t, "User Not Found", GetMessage("user.error.not-found"))
	assert.Equal(t, "GET /users finished with 200", GetMessage("app.req-end", "GET", "/users", 200))
	assert.Equal(t, "Message not found: nope", GetMessage("nope"))
}

func TestGetMessage_RendersComplexArgs(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(catalogue)))

	assert.Equal(t, `started with {"a":1}`, GetMessage("app.started", map[string]int{"a": 1}))
	assert.Equal(t, "started with boom", GetMessage("app.started", errors.New("boom")))
	assert.Equal(t, "started with 1s", GetMessage("app.started", time.Second))
}

func TestLoad_MergesCatalogues(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(catalogue)))
	require.NoError(t, Load(strings.NewReader(`user: {error: {forbidden: "Not enough permissions"}}`)))

	assert.Equal(t, "User Not Found", GetMessage("user.error.not-found"))
	assert.Equal(t, "Not enough permissions", GetMessage("user.error.forbidden"))
}
