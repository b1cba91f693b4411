package owning

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for owning events.
var (
	SignalStrategyResolved = capitan.NewSignal("owning.strategy.resolved", "Clone strategy resolved for an element type")
	SignalCloneFailed      = capitan.NewSignal("owning.clone.failed", "Deep copy of an owned value failed")
	SignalConstructFailed  = capitan.NewSignal("owning.construct.failed", "Make initializer failed")
	SignalNullDereference  = capitan.NewSignal("owning.deref.nil", "Empty Ptr dereferenced")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyStrategy = capitan.NewStringKey("strategy")
	KeyError    = capitan.NewErrorKey("error")
)

// emitStrategyResolved emits an event the first time a type's strategy is resolved.
func emitStrategyResolved(typeName string, s Strategy) {
	capitan.Emit(context.Background(), SignalStrategyResolved,
		KeyTypeName.Field(typeName),
		KeyStrategy.Field(s.String()),
	)
}

// emitCloneFailed emits an error event when a clone fails.
func emitCloneFailed(typeName string, s Strategy, err error) {
	capitan.Error(context.Background(), SignalCloneFailed,
		KeyTypeName.Field(typeName),
		KeyStrategy.Field(s.String()),
		KeyError.Field(err),
	)
}

// emitConstructFailed emits an error event when Make's initializer fails.
func emitConstructFailed(typeName string, err error) {
	capitan.Error(context.Background(), SignalConstructFailed,
		KeyTypeName.Field(typeName),
		KeyError.Field(err),
	)
}

// emitNullDereference emits an error event when an empty Ptr is dereferenced.
func emitNullDereference(typeName string) {
	capitan.Error(context.Background(), SignalNullDereference,
		KeyTypeName.Field(typeName),
	)
}
