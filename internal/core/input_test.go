package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionHardDrop) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionHardDrop)
	f.Set(ActionMoveLeft)
	if !f.Has(ActionHardDrop) || !f.Has(ActionMoveLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionHardDrop) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionHardDrop) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameFirst(t *testing.T) {
	order := []Action{ActionMoveLeft, ActionMoveRight, ActionRotateCW, ActionHardDrop}

	tests := []struct {
		name     string
		set      []Action
		expected Action
	}{
		{"empty", nil, ActionNone},
		{"single", []Action{ActionHardDrop}, ActionHardDrop},
		{"priority", []Action{ActionHardDrop, ActionMoveRight}, ActionMoveRight},
		{"not a candidate", []Action{ActionPause}, ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.set {
				f.Set(a)
			}
			if got := f.First(order...); got != tc.expected {
				t.Errorf("First() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCCW.String() != "RotateCCW" {
		t.Errorf("String() = %q, expected RotateCCW", ActionRotateCCW.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(999).String())
	}
}

func TestActionNamesComplete(t *testing.T) {
	seen := make(map[string]Action)
	for a := ActionNone; a < actionCount; a++ {
		name := a.String()
		if name == "" || name == "Unknown" {
			t.Errorf("action %d has no name", int(a))
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("actions %d and %d share name %q", int(prev), int(a), name)
		}
		seen[name] = a
	}
	if Action(-1).String() != "Unknown" {
		t.Error("negative action should be Unknown")
	}
}
