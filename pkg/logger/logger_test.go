package logger

import (
	"errors"
	"testing"
)

func TestPairs(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{name: "empty", in: nil, want: nil},
		{name: "key value", in: []any{"user_id", 7}, want: []any{"user_id", 7}},
		{name: "bare error", in: []any{errBoom}, want: []any{"error", errBoom}},
		{name: "trailing string", in: []any{"user_id", 7, "dangling"}, want: []any{"user_id", 7, "arg", "dangling"}},
		{name: "bare int", in: []any{42}, want: []any{"arg", 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pairs(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len: want=%d got=%d (%v)", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("pos %d: want=%v got=%v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestInitTestModeIsSilent(t *testing.T) {
	Init("test")
	Info("hello", "k", "v")
	Error("failed", errors.New("x"))
}
