package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepset/prepset-cli/internal/core/domain"
	"github.com/prepset/prepset-cli/internal/core/ports/driven"
)

// newTestStore opens a store in a temp dir and closes it with the test.
func newTestStore(t *testing.T) driven.RunStore {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store.RunStore()
}

func testRun(id string, startedAt time.Time) *domain.Run {
	return &domain.Run{
		ID:         id,
		Strategy:   "chat",
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Second),
		Status:     domain.RunSucceeded,
		Splits: []domain.RunSplit{
			{
				Split:      domain.SplitTrain,
				InputPath:  "train.jsonl",
				OutputPath: "train.valid.jsonl",
				Accepted:   10,
				Rejected:   2,
			},
			{
				Split:      domain.SplitEval,
				InputPath:  "eval.jsonl",
				OutputPath: "eval.valid.jsonl",
				Accepted:   5,
			},
		},
	}
}

func TestSaveRun_GetRun(t *testing.T) {
	store := newTestStore(t)
	run := testRun("run-1", time.Now())

	require.NoError(t, store.SaveRun(context.Background(), run))

	got, err := store.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "chat", got.Strategy)
	assert.Equal(t, domain.RunSucceeded, got.Status)
	assert.Empty(t, got.Error)

	require.Len(t, got.Splits, 2)
	// Train sorts before eval.
	assert.Equal(t, domain.SplitTrain, got.Splits[0].Split)
	assert.Equal(t, 10, got.Splits[0].Accepted)
	assert.Equal(t, 2, got.Splits[0].Rejected)
	assert.Equal(t, domain.SplitEval, got.Splits[1].Split)
}

func TestSaveRun_UpsertReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	run := testRun("run-1", time.Now())
	require.NoError(t, store.SaveRun(context.Background(), run))

	run.Status = domain.RunFailed
	run.Error = "train split: boom"
	run.Splits[0].Accepted = 0
	require.NoError(t, store.SaveRun(context.Background(), run))

	got, err := store.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RunFailed, got.Status)
	assert.Equal(t, "train split: boom", got.Error)
	assert.Zero(t, got.Splits[0].Accepted)
}

func TestSaveRun_Nil(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorIs(t, store.SaveRun(context.Background(), nil), domain.ErrInvalidInput)
}

func TestGetRun_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRun(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListRuns_NewestFirstWithLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		run := testRun(id, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.SaveRun(context.Background(), run))
	}

	runs, err := store.ListRuns(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
	require.Len(t, runs[0].Splits, 2)
}

func TestSaveRejections_ListRejections(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveRun(context.Background(), testRun("run-1", time.Now())))

	rejections := []domain.RunRejection{
		{Split: domain.SplitTrain, Line: 3, Reason: `missing required field "messages"`},
		{Split: domain.SplitTrain, Line: 7, Reason: `field "messages" is not a list`},
		{Split: domain.SplitEval, Line: 1, Reason: "record is not a JSON object"},
	}
	require.NoError(t, store.SaveRejections(context.Background(), "run-1", rejections))

	got, err := store.ListRejections(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Line)
	assert.Equal(t, 7, got[1].Line)
	assert.Equal(t, domain.SplitEval, got[2].Split)
}

func TestSaveRejections_EmptyIsNoop(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRejections(context.Background(), "run-1", nil))

	got, err := store.ListRejections(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_TimestampsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	started := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	run := testRun("run-1", started)
	require.NoError(t, store.SaveRun(context.Background(), run))

	got, err := store.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.True(t, got.StartedAt.Equal(started))
	assert.True(t, got.FinishedAt.Equal(started.Add(time.Second)))
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.RunStore().SaveRun(context.Background(), testRun("run-1", time.Now())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.RunStore().GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
}
