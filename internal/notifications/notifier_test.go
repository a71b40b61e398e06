package notifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_NilClientIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	assert.NoError(t, n.PublishSubmission(context.Background(), Submission{Kind: KindTool, ID: "1"}))
	assert.NoError(t, n.StartSubmissionSubscriber(context.Background(), func(Submission) {}))
}

func TestNotifier_PublishSubmission(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	sub := rdb.Subscribe(context.Background(), SubmissionsChannel)
	defer func() { _ = sub.Close() }()
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	n := NewNotifier(rdb)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, n.PublishSubmission(context.Background(), Submission{
		Kind:        KindTool,
		ID:          "abc",
		Title:       "Draftly",
		Category:    "Writing",
		SubmittedBy: "user-1",
		At:          at,
	}))

	select {
	case msg := <-sub.Channel():
		var got Submission
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "abc", got.ID)
		assert.Equal(t, KindTool, got.Kind)
		assert.Equal(t, "user-1", got.SubmittedBy)
		assert.True(t, at.Equal(got.At))
	case <-time.After(2 * time.Second):
		t.Fatal("submission was not published")
	}
}

func TestNotifier_StartSubmissionSubscriber(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Submission, 1)
	n := NewNotifier(rdb)
	require.NoError(t, n.StartSubmissionSubscriber(ctx, func(s Submission) {
		received <- s
	}))

	// Malformed payloads are skipped.
	require.NoError(t, rdb.Publish(ctx, SubmissionsChannel, "not-json").Err())
	require.NoError(t, n.PublishSubmission(ctx, Submission{Kind: KindBlogPost, ID: "p1"}))

	select {
	case s := <-received:
		assert.Equal(t, KindBlogPost, s.Kind)
		assert.Equal(t, "p1", s.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not receive submission")
	}
}
