package logging

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"production_json", Config{Level: "info", Format: "json"}, false},
		{"development_console", Config{Level: "debug", Format: "console", Development: true}, false},
		{"bad_level_falls_back", Config{Level: "loud"}, false},
		{"bad_format", Config{Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %+v", tc.cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l == nil {
				t.Fatalf("expected logger")
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected nop logger for nil")
	}
}
