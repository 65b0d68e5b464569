package history_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/hevy"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/history"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testNow
}

// daysAgo builds a workout that started the given number of days (and hours)
// before testNow.
func daysAgo(id string, days float64) workouts.Workout {
	start := testNow.Add(-time.Duration(days * float64(24*time.Hour)))
	return workouts.Workout{ID: id, Title: "Workout " + id, StartTime: start, EndTime: start.Add(time.Hour)}
}

func page(n, count int, ws ...workouts.Workout) *hevy.WorkoutsPage {
	return &hevy.WorkoutsPage{Page: n, PageCount: count, Workouts: ws}
}

func ids(ws []workouts.Workout) []string {
	var out []string
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func TestFetcher_FetchWindow_CutoffInPage2(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockworkoutsClient(ctrl)
	fetcher := history.NewFetcher(client, fixedNow)

	gomock.InOrder(
		client.EXPECT().GetWorkouts(gomock.Any(), 1, 10).Return(page(1, 3,
			daysAgo("a", 1), daysAgo("b", 3), daysAgo("c", 8),
		), nil),
		client.EXPECT().GetWorkouts(gomock.Any(), 2, 10).Return(page(2, 3,
			daysAgo("d", 12), daysAgo("e", 29.9), daysAgo("f", 30.1), daysAgo("g", 31),
		), nil),
	)
	// page 3 is never requested: the mock controller fails on unexpected calls
	client.EXPECT().GetWorkouts(gomock.Any(), 3, gomock.Any()).Times(0)

	window, err := fetcher.FetchWindow(context.Background(), 10, 10, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(window))
}

func TestFetcher_FetchWindow_StopsAtPageCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockworkoutsClient(ctrl)
	fetcher := history.NewFetcher(client, fixedNow)

	gomock.InOrder(
		client.EXPECT().GetWorkouts(gomock.Any(), 1, 5).Return(page(1, 2, daysAgo("a", 1)), nil),
		client.EXPECT().GetWorkouts(gomock.Any(), 2, 5).Return(page(2, 2, daysAgo("b", 2)), nil),
	)

	window, err := fetcher.FetchWindow(context.Background(), 10, 5, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(window))
}

func TestFetcher_FetchWindow_StopsOnEmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockworkoutsClient(ctrl)
	fetcher := history.NewFetcher(client, fixedNow)

	gomock.InOrder(
		client.EXPECT().GetWorkouts(gomock.Any(), 1, 10).Return(page(1, 50, daysAgo("a", 1)), nil),
		client.EXPECT().GetWorkouts(gomock.Any(), 2, 10).Return(page(2, 50), nil),
	)

	window, err := fetcher.FetchWindow(context.Background(), 10, 10, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(window))
}

func TestFetcher_FetchWindow_MaxPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockworkoutsClient(ctrl)
	fetcher := history.NewFetcher(client, fixedNow)

	for i := 1; i <= 3; i++ {
		client.EXPECT().
			GetWorkouts(gomock.Any(), i, 10).
			Return(page(i, 100, daysAgo(fmt.Sprintf("w%d", i), float64(i)/10)), nil)
	}

	window, err := fetcher.FetchWindow(context.Background(), 3, 10, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"w1", "w2", "w3"}, ids(window))
}

func TestFetcher_FetchWindow_KeepsUndatedWorkouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockworkoutsClient(ctrl)
	fetcher := history.NewFetcher(client, fixedNow)

	client.EXPECT().GetWorkouts(gomock.Any(), 1, 10).Return(page(1, 1,
		daysAgo("a", 1), workouts.Workout{ID: "undated"}, daysAgo("old", 40), daysAgo("after-old", 2),
	), nil)

	window, err := fetcher.FetchWindow(context.Background(), 10, 10, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "undated"}, ids(window))
}

func TestFetcher_FetchWindow_ClampsPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockworkoutsClient(ctrl)
	fetcher := history.NewFetcher(client, fixedNow)

	client.EXPECT().GetWorkouts(gomock.Any(), 1, hevy.MaxWorkoutsPageSize).Return(page(1, 1), nil)

	window, err := fetcher.FetchWindow(context.Background(), 0, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, window)
}

func TestFetcher_FetchWindow_ErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockworkoutsClient(ctrl)
	fetcher := history.NewFetcher(client, fixedNow)

	gomock.InOrder(
		client.EXPECT().GetWorkouts(gomock.Any(), 1, 10).Return(page(1, 3, daysAgo("a", 1)), nil),
		client.EXPECT().GetWorkouts(gomock.Any(), 2, 10).Return(nil, &hevy.AuthError{StatusCode: 401, Message: "invalid api key"}),
	)

	window, err := fetcher.FetchWindow(context.Background(), 10, 10, 30)
	require.Error(t, err)
	assert.Nil(t, window)
	assert.ErrorIs(t, err, hevy.ErrAuth)
}
