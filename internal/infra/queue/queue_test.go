package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu    sync.Mutex
	lists map[string][]string
}

func (f *fakeClient) LPush(ctx context.Context, key string, values ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lists == nil {
		f.lists = map[string][]string{}
	}
	for _, v := range values {
		switch s := v.(type) {
		case string:
			f.lists[key] = append([]string{s}, f.lists[key]...)
		case []byte:
			f.lists[key] = append([]string{string(s)}, f.lists[key]...)
		}
	}
	return nil
}

func (f *fakeClient) BRPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		if l := f.lists[k]; len(l) > 0 {
			v := l[len(l)-1]
			f.lists[k] = l[:len(l)-1]
			return []string{k, v}, nil
		}
	}
	return nil, redis.Nil
}

func (f *fakeClient) Close() error { return nil }

func TestEnqueueDequeue(t *testing.T) {
	q := New(&fakeClient{})
	ctx := context.Background()

	payload := map[string]string{"email": "aluno@gympoint.com"}
	require.NoError(t, q.Enqueue(ctx, MembershipCreationMail, payload))

	job, err := q.Dequeue(ctx, time.Second, Kinds()...)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, MembershipCreationMail, job.Kind)
	assert.Equal(t, 1, job.Attempts)
	assert.JSONEq(t, `{"email":"aluno@gympoint.com"}`, string(job.Payload))
}

func TestDequeueEmptyReturnsNil(t *testing.T) {
	q := New(&fakeClient{})

	job, err := q.Dequeue(context.Background(), time.Millisecond, Kinds()...)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestDequeueDrainsPerKind(t *testing.T) {
	q := New(&fakeClient{})
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, MembershipUpdateMail, 1))
	require.NoError(t, q.Enqueue(ctx, HelpOrderAnswerMail, 2))

	first, err := q.Dequeue(ctx, time.Second, Kinds()...)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := q.Dequeue(ctx, time.Second, Kinds()...)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.ElementsMatch(t,
		[]string{MembershipUpdateMail, HelpOrderAnswerMail},
		[]string{first.Kind, second.Kind})
}

func TestRequeueBumpsAttempts(t *testing.T) {
	q := New(&fakeClient{})
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, MembershipCancellationMail, "snapshot"))
	job, err := q.Dequeue(ctx, time.Second, MembershipCancellationMail)
	require.NoError(t, err)
	require.NotNil(t, job)

	require.NoError(t, q.Requeue(ctx, *job))

	again, err := q.Dequeue(ctx, time.Second, MembershipCancellationMail)
	require.NoError(t, err)
	require.NotNil(t, again)

	assert.Equal(t, job.ID, again.ID)
	assert.Equal(t, 2, again.Attempts)
}

func TestDispatchSurvivesNilDefault(t *testing.T) {
	Default = nil
	// must not panic
	Dispatch(MembershipCreationMail, map[string]string{"email": "x"})
}
