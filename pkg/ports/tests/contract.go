package tests

import (
	"context"
	"testing"

	"github.com/drossy/stars/pkg/ports"
)

type stubState string

func (s stubState) Name() string                   { return string(s) }
func (s stubState) Load(ctx context.Context) error   { return nil }
func (s stubState) Unload(ctx context.Context) error { return nil }

// StateAttacherContractTest is a reusable test suite that verifies if an adapter complies with ports.StateAttacher.
func StateAttacherContractTest(t *testing.T, attacher ports.StateAttacher) {
	t.Helper()

	menu := stubState("mainMenu")

	t.Run("Attach", func(t *testing.T) {
		if !attacher.Attach(menu) {
			t.Fatal("first attach should report a change")
		}
		if !attacher.IsAttached(menu) {
			t.Error("state should be attached after Attach")
		}
	})

	t.Run("Attach_Twice", func(t *testing.T) {
		if attacher.Attach(menu) {
			t.Error("second attach of the same state should report no change")
		}
	})

	t.Run("Detach", func(t *testing.T) {
		if !attacher.Detach(menu) {
			t.Fatal("detach of an attached state should report a change")
		}
		if attacher.IsAttached(menu) {
			t.Error("state should not be attached after Detach")
		}
	})

	t.Run("Detach_Unknown", func(t *testing.T) {
		if attacher.Detach(stubState("ghost")) {
			t.Error("detaching an unknown state should report no change")
		}
	})
}
