// Package alloc holds the slab growth rule shared by the text buffer and the array.
package alloc

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger used for allocation events.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the logger used for allocation events.
// Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// RoundUp returns the next multiple of g strictly above n - n%g.
// The result is always at least n+1, so a slab sized with it has room for a trailer.
func RoundUp(n, g int) int {
	if g <= 0 {
		panic("alloc.RoundUp: granularity must be positive")
	}
	return n - n%g + g
}

// Realloc returns a new slab of the given size holding old[:used].
// move copies the live elements forward; it decides whether that is a bulk
// copy or an element-wise duplication.
// old is left untouched: a caller may still be reading from a view of it.
func Realloc[T any](kind string, old []T, used, size int, move func(dst, src []T)) []T {
	slab := make([]T, size)
	if old == nil {
		Logger().Debug("alloc", zap.String("kind", kind), zap.Int("to", size))
		return slab
	}
	Logger().Debug("realloc",
		zap.String("kind", kind),
		zap.Int("from", len(old)),
		zap.Int("to", size),
		zap.Int("used", used))
	move(slab[:used], old[:used])
	return slab
}
