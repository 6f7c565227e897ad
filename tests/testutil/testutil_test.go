package testutil

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestUUID(t *testing.T) {
	a := NewTestUUID("alice")
	assert.Equal(t, a, NewTestUUID("alice"))
	assert.NotEqual(t, a, NewTestUUID("bob"))
	assert.Equal(t, uuid.Version(4), a.Version())
	assert.Equal(t, uuid.RFC4122, a.Variant())
}

func TestAPIClient(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "ERR_VALIDATION"}})
			return
		}
		body["user"] = c.GetHeader("X-User-ID")
		body["trace"] = c.GetHeader("X-Trace")
		c.JSON(http.StatusOK, gin.H{"success": true, "data": body})
	})

	alice := NewTestUUID("alice")
	client := NewAPIClient(t, engine, alice).WithHeader("X-Trace", "t1")

	got := Decode[map[string]string](t, client.Do(http.MethodPost, "/echo", map[string]string{"msg": "hi"}), http.StatusOK)
	assert.Equal(t, "hi", got["msg"])
	assert.Equal(t, alice.String(), got["user"])
	assert.Equal(t, "t1", got["trace"])

	bob := NewTestUUID("bob")
	got = Decode[map[string]string](t, client.As(bob).Do(http.MethodPost, "/echo", map[string]string{}), http.StatusOK)
	assert.Equal(t, bob.String(), got["user"])

	AssertError(t, client.Do(http.MethodPost, "/echo", nil), http.StatusBadRequest, "ERR_VALIDATION")
}

func TestEventRecorder(t *testing.T) {
	r := NewEventRecorder("a")
	assert.Equal(t, []string{"a"}, r.EventTypes())

	e := shared.NewBaseDomainEvent("a", "board", uuid.New(), uuid.New())
	require.NoError(t, r.Handle(context.Background(), &e))
	assert.Equal(t, []string{"a"}, r.Types())

	boom := errors.New("boom")
	r.SetError(boom)
	assert.ErrorIs(t, r.Handle(context.Background(), &e), boom)
	assert.Len(t, r.Handled(), 2)

	r.Reset()
	assert.Empty(t, r.Handled())
}
