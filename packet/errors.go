package packet

import (
	"errors"
	"fmt"
)

var (
	ErrTooShort          = errors.New("packet: buffer shorter than header")
	ErrUnsupportedPacket = errors.New("packet: unsupported packet")
	ErrSizeMismatch      = errors.New("packet: size mismatch")
	ErrUnknownEventCode  = errors.New("packet: unknown event code")
	ErrInvalidText       = errors.New("packet: invalid utf-8 text")
	ErrNotEvent          = errors.New("packet: not an event packet")
	ErrWrongPacket       = errors.New("packet: wrong packet kind")
	ErrNoPlayerCar       = errors.New("packet: no player car")
)

// UnsupportedPacketError reports a dispatch key with no registered layout.
type UnsupportedPacketError struct {
	Format  int16
	Version uint8
	ID      uint8
}

func (e *UnsupportedPacketError) Error() string {
	return fmt.Sprintf("packet: unsupported packet format=%d version=%d id=%d", e.Format, e.Version, e.ID)
}

func (e *UnsupportedPacketError) Is(target error) bool { return target == ErrUnsupportedPacket }

// SizeMismatchError reports a buffer whose length is not the layout size.
type SizeMismatchError struct {
	Layout   string
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("packet: %s expects %d bytes, got %d", e.Layout, e.Expected, e.Actual)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }

// UnknownEventCodeError reports an event discriminant outside the known set.
type UnknownEventCodeError struct {
	Code string
}

func (e *UnknownEventCodeError) Error() string {
	return fmt.Sprintf("packet: unknown event code %q", e.Code)
}

func (e *UnknownEventCodeError) Is(target error) bool { return target == ErrUnknownEventCode }

// InvalidTextError reports a text field that is not valid UTF-8.
type InvalidTextError struct {
	Field string
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("packet: field %s is not valid utf-8", e.Field)
}

func (e *InvalidTextError) Is(target error) bool { return target == ErrInvalidText }

// Reason maps a decode error to a short, stable label for metrics and logs.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTooShort):
		return "too_short"
	case errors.Is(err, ErrUnsupportedPacket):
		return "unsupported"
	case errors.Is(err, ErrSizeMismatch):
		return "size_mismatch"
	case errors.Is(err, ErrUnknownEventCode):
		return "unknown_event"
	case errors.Is(err, ErrInvalidText):
		return "invalid_text"
	default:
		return "other"
	}
}
