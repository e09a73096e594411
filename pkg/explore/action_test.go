package explore

import (
	"testing"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected Action
	}{
		{"e", ActLeft},
		{"E", ActLeft},
		{"esquerda", ActLeft},
		{"d\n", ActRight},
		{"  D  ", ActRight},
		{"s", ActStop},
		{"STOP", ActStop},
		{"x", ActNone},
		{"left", ActNone},
		{"", ActNone},
		{"\n", ActNone},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.input); got != tt.expected {
			t.Errorf("ParseAction(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestAction_Direction(t *testing.T) {
	if d, ok := ActLeft.Direction(); !ok || d != mansion.Left {
		t.Error("ActLeft should map to mansion.Left")
	}
	if d, ok := ActRight.Direction(); !ok || d != mansion.Right {
		t.Error("ActRight should map to mansion.Right")
	}
	if _, ok := ActStop.Direction(); ok {
		t.Error("ActStop has no direction")
	}
	if _, ok := ActNone.Direction(); ok {
		t.Error("ActNone has no direction")
	}
}
