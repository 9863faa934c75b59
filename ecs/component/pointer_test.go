package component

import "testing"

func TestPointerSessionsFirstClaimWins(t *testing.T) {
	var s PointerSessions
	const knob = uint64(7)

	if !s.Claim(1, knob) {
		t.Fatalf("first claim on the knob should succeed")
	}
	if s.Claim(2, knob) {
		t.Fatalf("second pointer must not steal the knob")
	}
	if s.Claim(1, 9) {
		t.Fatalf("a pointer holds at most one target")
	}
	if id, ok := s.Holder(knob); !ok || id != 1 {
		t.Fatalf("expected pointer 1 to hold the knob, got %d ok=%v", id, ok)
	}

	if _, ok := s.Release(2); ok {
		t.Fatalf("releasing a pointer without a session should report false")
	}
	if target, ok := s.Release(1); !ok || target != knob {
		t.Fatalf("expected release of knob, got %d ok=%v", target, ok)
	}
	if !s.Claim(2, knob) {
		t.Fatalf("knob should be claimable after release")
	}
	if held, ok := s.Holding(2); !ok || held != knob {
		t.Fatalf("expected pointer 2 holding knob, got %d ok=%v", held, ok)
	}
}

func TestPointerPhaseString(t *testing.T) {
	tests := map[PointerPhase]string{
		PointerDown:     "down",
		PointerMove:     "move",
		PointerUp:       "up",
		PointerPhase(9): "unknown",
	}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(phase), got, want)
		}
	}
}

func TestBoundsBBIgnoresScale(t *testing.T) {
	b := Bounds{Width: 10, Height: 4}
	tests := []struct {
		name string
		t    Transform
	}{
		{"unscaled", Transform{X: 100, Y: 50, ScaleX: 1, ScaleY: 1}},
		{"stretched", Transform{X: 100, Y: 50, ScaleX: 1.5, ScaleY: 1.5}},
		{"zero_scale", Transform{X: 100, Y: 50}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bb := b.BB(tc.t)
			if bb.L != 95 || bb.R != 105 || bb.B != 48 || bb.T != 52 {
				t.Fatalf("unexpected box %+v", bb)
			}
		})
	}
}
