package memberships

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Librity/gympoint-back-end/internal/infra/queue"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type failingQueueClient struct{}

func (failingQueueClient) LPush(ctx context.Context, key string, values ...interface{}) error {
	return errors.New("redis down")
}

func (failingQueueClient) BRPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	return nil, redis.Nil
}

func (failingQueueClient) Close() error { return nil }

func TestStoreSucceedsWhenQueueIsDown(t *testing.T) {
	db := setupTest(t)
	r := setupRouter()

	seedStudent(t, db, "Ada Lovelace", "ada@example.com")
	gold := seedPlan(t, db, "Gold", 3, 109.99)

	queue.Default = queue.New(failingQueueClient{})

	w := doJSON(t, r, "POST", "/students/1/memberships", gin.H{"plan_id": gold.ID})
	require.Equal(t, http.StatusOK, w.Code,
		"a dead queue must not fail the request: %s", w.Body.String())
}
