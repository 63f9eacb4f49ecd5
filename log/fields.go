package log

import "go.uber.org/zap"

var (
	String     = zap.String
	Strings    = zap.Strings
	Int        = zap.Int
	Int64      = zap.Int64
	Uint8      = zap.Uint8
	Uint16     = zap.Uint16
	Uint32     = zap.Uint32
	Uint64     = zap.Uint64
	Float64    = zap.Float64
	Bool       = zap.Bool
	Duration   = zap.Duration
	Time       = zap.Time
	Binary     = zap.Binary
	Any        = zap.Any
	ErrorField = zap.Error
)
