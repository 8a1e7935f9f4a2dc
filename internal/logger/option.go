package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelCore overrides the minimum level of the core it wraps, so a derived
// logger can be quieter or louder than its parent.
type levelCore struct {
	zapcore.Core

	// min is the lowest level written.
	min zapcore.LevelEnabler
}

func (c *levelCore) Enabled(l zapcore.Level) bool {
	return c.min.Enabled(l)
}

//nolint:gocritic // zapcore.Core fixes the signature.
func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

//nolint:ireturn,nolintlint // zapcore.Core fixes the signature.
func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{
		Core: c.Core.With(fields),
		min:  c.min,
	}
}

// WithLevel replaces the level of a derived logger. Used for third-party
// diagnostics that have their own threshold in the settings.
//
//nolint:ireturn,nolintlint // zap.Option is an interface.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelCore{
			Core: core,
			min:  lvl,
		}
	})
}
