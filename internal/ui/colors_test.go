package ui

import "testing"

func TestHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"heading", Heading("Usage"), "\x1b[1;37mUsage\x1b[m"},
		{"title", Title("RENDER"), "\x1b[1;36mRENDER\x1b[m"},
		{"command", Command("list"), "\x1b[;36mlist\x1b[m"},
		{"flag", Flag("--rgb"), "\x1b[;32m--rgb\x1b[m"},
		{"placeholder", Placeholder("<command>"), "\x1b[;33m<command>\x1b[m"},
		{"muted", Muted("desc"), "\x1b[3;0mdesc\x1b[m"},
		{"success", Success("ok"), "\x1b[;32mok\x1b[m"},
		{"error", Error("boom"), "\x1b[1;31mboom\x1b[m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
