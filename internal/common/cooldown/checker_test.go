package cooldown_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-message-sender/internal/common/cooldown"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewChecker_RequiresExactlyOneSource(t *testing.T) {
	lastAction := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := cooldown.NewChecker(lastAction)
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidCooldownConfiguration{})

	_, err = cooldown.NewChecker(lastAction,
		cooldown.WithDuration(30*time.Second),
		cooldown.WithPassTime(lastAction.Add(time.Minute)),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidCooldownConfiguration{})

	_, err = cooldown.NewChecker(lastAction, cooldown.WithDuration(30*time.Second))
	assert.NoError(t, err)

	_, err = cooldown.NewChecker(lastAction, cooldown.WithPassTime(lastAction.Add(time.Minute)))
	assert.NoError(t, err)
}

func TestChecker_IsPassed_AroundBoundary(t *testing.T) {
	lastAction := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	duration := 30 * time.Second

	before, err := cooldown.NewChecker(lastAction,
		cooldown.WithDuration(duration),
		cooldown.WithNow(fixedNow(lastAction.Add(duration-time.Nanosecond))),
	)
	require.NoError(t, err)
	assert.False(t, before.IsPassed())

	exact, err := cooldown.NewChecker(lastAction,
		cooldown.WithDuration(duration),
		cooldown.WithNow(fixedNow(lastAction.Add(duration))),
	)
	require.NoError(t, err)
	assert.True(t, exact.IsPassed())

	after, err := cooldown.NewChecker(lastAction,
		cooldown.WithDuration(duration),
		cooldown.WithNow(fixedNow(lastAction.Add(duration+time.Nanosecond))),
	)
	require.NoError(t, err)
	assert.True(t, after.IsPassed())
}

func TestChecker_WithPassTime(t *testing.T) {
	lastAction := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	passTime := lastAction.Add(time.Minute)

	checker, err := cooldown.NewChecker(lastAction,
		cooldown.WithPassTime(passTime),
		cooldown.WithNow(fixedNow(passTime.Add(-time.Second))),
	)
	require.NoError(t, err)
	assert.False(t, checker.IsPassed())

	checker, err = cooldown.NewChecker(lastAction,
		cooldown.WithPassTime(passTime),
		cooldown.WithNow(fixedNow(passTime)),
	)
	require.NoError(t, err)
	assert.True(t, checker.IsPassed())
}

func TestChecker_Remaining(t *testing.T) {
	lastAction := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	duration := 30 * time.Second

	checker, err := cooldown.NewChecker(lastAction,
		cooldown.WithDuration(duration),
		cooldown.WithNow(fixedNow(lastAction.Add(10*time.Second))),
	)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, checker.Remaining())

	passed, err := cooldown.NewChecker(lastAction,
		cooldown.WithDuration(duration),
		cooldown.WithNow(fixedNow(lastAction.Add(time.Minute))),
	)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), passed.Remaining())
}
