// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package poollog adapts github.com/rs/zerolog to pool.Logger. It lives in
// its own package so the core pool package stays free of the zerolog
// dependency for callers who bring their own logging.
package poollog

import (
	"github.com/rs/zerolog"

	"code.hybscloud.com/pool"
)

// Zerolog wraps a zerolog.Logger to satisfy pool.Logger.
type Zerolog struct {
	Logger zerolog.Logger
}

// Log implements pool.Logger.
func (z Zerolog) Log(level pool.Level, errno error, format string, args ...any) {
	var ev *zerolog.Event
	switch level {
	case pool.LevelCritical:
		ev = z.Logger.Error()
	case pool.LevelAlert:
		ev = z.Logger.Warn()
	default:
		ev = z.Logger.Debug()
	}
	if errno != nil {
		ev = ev.Err(errno)
	}
	ev.Msgf(format, args...)
}
