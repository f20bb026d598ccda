package serde

import (
	"context"
	"errors"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serde events.
var (
	SignalEncodeStart    = capitan.NewSignal("serde.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("serde.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("serde.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("serde.decode.complete", "Decode operation finished")
	SignalResolveFailed  = capitan.NewSignal("serde.resolve.failed", "Format identifier did not resolve")
)

// Keys for typed event data.
var (
	KeyFormat      = capitan.NewStringKey("format")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyInput       = capitan.NewStringKey("input")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitResolveFailed emits an event when a format identifier does not resolve.
func emitResolveFailed(ctx context.Context, err error) {
	fields := []capitan.Field{KeyError.Field(err)}
	var e *Error
	if errors.As(err, &e) {
		fields = append(fields, KeyInput.Field(e.Input))
	}
	capitan.Error(ctx, SignalResolveFailed, fields...)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, format Format, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyFormat.Field(format.String()),
		KeyContentType.Field(format.ContentType()),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, format Format, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format.String()),
		KeyContentType.Field(format.ContentType()),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, format Format, typeName string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyFormat.Field(format.String()),
		KeyContentType.Field(format.ContentType()),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, format Format, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format.String()),
		KeyContentType.Field(format.ContentType()),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
