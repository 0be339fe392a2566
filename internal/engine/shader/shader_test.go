package shader

import "testing"

func TestTerminate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"uProjection", "uProjection\x00"},
		{"uProjection\x00", "uProjection\x00"},
		{"", "\x00"},
	}
	for _, tt := range tests {
		if got := terminate(tt.in); got != tt.want {
			t.Errorf("terminate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimLog(t *testing.T) {
	got := trimLog([]byte("0:3(1): error: syntax error\n\x00\x00"))
	if want := "0:3(1): error: syntax error"; got != want {
		t.Errorf("trimLog() = %q, want %q", got, want)
	}
}
