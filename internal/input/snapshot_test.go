package input

import "testing"

func TestSnapshotHeldAndPressed(t *testing.T) {
	var s Snapshot
	for a := Action(0); a < actionCount; a++ {
		if s.Held(a) || s.Pressed(a) {
			t.Fatalf("zero snapshot reports %s", a)
		}
	}

	s = s.WithHeld(StepForward, Run).WithPressed(StepUp)
	cases := []struct {
		action  Action
		held    bool
		pressed bool
	}{
		{StepForward, true, false},
		{Run, true, false},
		{StepUp, true, true},
		{StepDown, false, false},
	}
	for _, c := range cases {
		t.Run(c.action.String(), func(t *testing.T) {
			if s.Held(c.action) != c.held || s.Pressed(c.action) != c.pressed {
				t.Fatalf("held=%v pressed=%v, want %v/%v", s.Held(c.action), s.Pressed(c.action), c.held, c.pressed)
			}
		})
	}
}

func TestSnapshotIsValue(t *testing.T) {
	base := Snapshot{}.WithHeld(LookLeft)
	_ = base.WithHeld(LookRight)
	if base.Held(LookRight) {
		t.Fatal("WithHeld must not mutate the receiver")
	}
}

func TestActionString(t *testing.T) {
	if StepUp.String() != "step-up" || Action(200).String() != "unknown" {
		t.Fatal("unexpected action names")
	}
}
