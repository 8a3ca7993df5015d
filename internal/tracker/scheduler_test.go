package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/donaldgifford/target-inventory/internal/notify/mocks"
	"github.com/donaldgifford/target-inventory/internal/tracker"
	"github.com/donaldgifford/target-inventory/internal/tracker/mocks"
	"github.com/donaldgifford/target-inventory/pkg/logger"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, mocks.NewMockChecker(t), notifyMocks.NewMockNotifier(t), falcon)

	sched, err := tracker.NewScheduler(tr, 15*time.Minute, logger.Discard())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
	assert.True(t, sched.NextRun().IsZero())
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, mocks.NewMockChecker(t), notifyMocks.NewMockNotifier(t), falcon)

	sched, err := tracker.NewScheduler(tr, time.Hour, logger.Discard())
	require.NoError(t, err)

	sched.Start()
	assert.WithinDuration(t, time.Now().Add(time.Hour), sched.NextRun(), time.Minute)

	ctx := sched.Stop()
	<-ctx.Done()
}
