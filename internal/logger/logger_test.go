package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("adds request id when present", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "req-123")
		log := WithContext(ctx)
		assert.Equal(t, "req-123", log.Data["request_id"])
	})

	t.Run("no request id", func(t *testing.T) {
		log := WithContext(context.Background())
		_, ok := log.Data["request_id"]
		assert.False(t, ok)
	})
}

func TestFromGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("request_id", "req-456")

	log := FromGinContext(c)

	assert.Equal(t, "req-456", log.Data["request_id"])
}

func TestWithFields(t *testing.T) {
	log := New().WithField("team_id", "t1").WithFields(map[string]interface{}{"user_id": "u1"})

	assert.Equal(t, "t1", log.Data["team_id"])
	assert.Equal(t, "u1", log.Data["user_id"])
}

func TestSetup(t *testing.T) {
	original := logrus.GetLevel()
	defer logrus.SetLevel(original)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
