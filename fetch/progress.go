package fetch

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/time/rate"
)

// meteredReader counts bytes, logs progress and applies an optional rate limit.
type meteredReader struct {
	ctx      context.Context
	r        io.Reader
	remote   string
	logger   *slog.Logger
	limiter  *rate.Limiter
	interval int64

	total        int64
	lastReported int64
}

func (m *meteredReader) Read(p []byte) (int, error) {
	if m.limiter != nil && len(p) > m.limiter.Burst() {
		p = p[:m.limiter.Burst()]
	}

	n, err := m.r.Read(p)
	if n > 0 {
		m.total += int64(n)
		if m.total-m.lastReported > m.interval {
			m.logger.InfoContext(m.ctx, "bytes downloaded", "remote", m.remote, "bytes", m.total)
			m.lastReported = m.total
		}
		if m.limiter != nil {
			if werr := m.limiter.WaitN(m.ctx, n); werr != nil {
				return n, werr
			}
		}
	}

	return n, err
}
