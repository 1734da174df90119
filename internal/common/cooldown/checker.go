package cooldown

import (
	"time"

	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
)

// Checker — чистый предикат временного окна: прошёл ли кулдаун после
// последнего действия. Источник текущего времени подменяется, поэтому
// проверка детерминированно тестируется.
type Checker struct {
	passTime time.Time
	now      func() time.Time
}

type Option func(*options)

type options struct {
	duration *time.Duration
	passTime *time.Time
	now      func() time.Time
}

// WithDuration задаёт кулдаун как длительность после последнего действия.
func WithDuration(d time.Duration) Option {
	return func(o *options) {
		o.duration = &d
	}
}

// WithPassTime задаёт абсолютный момент, после которого кулдаун пройден.
func WithPassTime(t time.Time) Option {
	return func(o *options) {
		o.passTime = &t
	}
}

// WithNow подменяет источник текущего времени.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewChecker требует ровно один из WithDuration и WithPassTime: оба или
// ни одного — ошибка конфигурации.
func NewChecker(lastAction time.Time, opts ...Option) (*Checker, error) {
	o := &options{now: time.Now}

	for _, opt := range opts {
		opt(o)
	}

	if (o.duration == nil) == (o.passTime == nil) {
		return nil, &domainerrors.ErrInvalidCooldownConfiguration{}
	}

	passTime := lastAction

	if o.duration != nil {
		passTime = lastAction.Add(*o.duration)
	} else {
		passTime = *o.passTime
	}

	return &Checker{
		passTime: passTime,
		now:      o.now,
	}, nil
}

// IsPassed возвращает true, если текущее время не раньше момента
// окончания кулдауна.
func (c *Checker) IsPassed() bool {
	return !c.now().Before(c.passTime)
}

// Remaining возвращает оставшееся время кулдауна; ноль, если он прошёл.
func (c *Checker) Remaining() time.Duration {
	remaining := c.passTime.Sub(c.now())
	if remaining < 0 {
		return 0
	}

	return remaining
}
