package main

import (
	"math"
	"testing"

	"github.com/milk9111/scrollcore/ecs/component"
)

func TestParseScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no_ticks", "level: demo\n"},
		{"event_out_of_range", "ticks: 10\nevents:\n  - {tick: 10, key: 65, pressed: true}\n"},
		{"event_without_key", "ticks: 10\nevents:\n  - {tick: 1, pressed: true}\n"},
		{"malformed", "ticks: ["},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(c.data)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestParseScriptDefaultsAndOrder(t *testing.T) {
	s, err := ParseScript([]byte("ticks: 5\nevents:\n  - {tick: 3, key: 65, pressed: false}\n  - {tick: 1, key: 65, pressed: true}\n"))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Level != "demo" || s.Target != "player" {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.Events[0].Tick != 1 || s.Events[1].Tick != 3 {
		t.Fatalf("events should be sorted by tick, got %+v", s.Events)
	}
}

func TestRunWalkRight(t *testing.T) {
	s, err := LoadScript("testdata/walk_right.yaml")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	frames, err := Run(s, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(frames) != 180 {
		t.Fatalf("got %d frames, want 180", len(frames))
	}

	landed := frames[89]
	if landed.Secondary != component.SecondaryIdle || landed.Primary != component.PrimaryIdle {
		t.Fatalf("player should be standing before input, got %s/%s", landed.Primary, landed.Secondary)
	}
	if f := frames[119]; f.Primary != component.PrimaryWalkingRight || math.Abs(f.X-landed.X-10) > 0.5 {
		t.Fatalf("expected about 10 units walked right, got %s dx=%v", f.Primary, f.X-landed.X)
	}
	// left pressed while walking right does not turn until right is released
	if f := frames[140]; f.Primary != component.PrimaryWalkingRight {
		t.Fatalf("primary = %s, want walking_right", f.Primary)
	}
	if f := frames[155]; f.Primary != component.PrimaryWalkingLeft {
		t.Fatalf("primary = %s, want walking_left after right release", f.Primary)
	}
	if f := frames[179]; f.Primary != component.PrimaryIdle || f.Contacts == 0 {
		t.Fatalf("expected idle on the floor at the end, got %s contacts=%d", f.Primary, f.Contacts)
	}
}

func TestRunUnknownTarget(t *testing.T) {
	if _, err := Run(&Script{Level: "demo", Target: "ghost", Ticks: 1}, false); err == nil {
		t.Fatalf("expected an error for a missing target")
	}
}
