package storage

import "go.uber.org/zap"

// CommitThrottle wraps an Adapter that also implements Flusher and
// rate-limits Commit so that deferred-write media (flash-emulated
// EEPROM) aren't flushed more often than commitPeriodMs allows. A
// period of 0 disables periodic flushing entirely; the caller is then
// responsible for flushing the wrapped adapter externally.
type CommitThrottle struct {
	Adapter
	flusher        Flusher
	commitPeriodMs int64
	nextCommitMs   int64
	log            *zap.Logger
}

// NewCommitThrottle builds a throttle around adapter, which must also
// implement Flusher (e.g. *FileBackedAdapter). log may be nil, in
// which case a no-op logger is used.
func NewCommitThrottle(adapter interface {
	Adapter
	Flusher
}, commitPeriodMs int64, log *zap.Logger) *CommitThrottle {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommitThrottle{
		Adapter:        adapter,
		flusher:        adapter,
		commitPeriodMs: commitPeriodMs,
		log:            log,
	}
}

// Commit flushes the wrapped adapter if nowMs has reached the next
// scheduled commit time, then reschedules. When the period is 0,
// Commit never flushes.
func (c *CommitThrottle) Commit(nowMs int64) {
	if c.commitPeriodMs == 0 {
		return
	}
	if nowMs < c.nextCommitMs {
		c.log.Debug("commit skipped, rate limited",
			zap.Int64("now_ms", nowMs),
			zap.Int64("next_commit_ms", c.nextCommitMs))
		return
	}
	c.flusher.Flush()
	c.nextCommitMs = nowMs + c.commitPeriodMs
	c.log.Info("commit flushed",
		zap.Int64("now_ms", nowMs),
		zap.Int64("next_commit_ms", c.nextCommitMs))
}
