package gui

import "testing"

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		label  string
		clean  string
		hotkey rune
	}{
		{"~R~esume", "Resume", 'r'},
		{"~L~oad", "Load", 'l'},
		{"Return to ~L~auncher", "Return to Launcher", 'l'},
		{"Über~s~icht", "Übersicht", 's'},
		{"~Ö~ffnen", "Öffnen", 'ö'},
		{"Plain", "Plain", 0},
		{"Unclosed ~R", "Unclosed ~R", 0},
		{"", "", 0},
		{"~~", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			clean, hotkey := ParseHotkey(tt.label)
			if clean != tt.clean {
				t.Errorf("clean = %q, want %q", clean, tt.clean)
			}
			if hotkey != tt.hotkey {
				t.Errorf("hotkey = %q, want %q", hotkey, tt.hotkey)
			}
			if got := CleanupHotkey(tt.label); got != tt.clean {
				t.Errorf("CleanupHotkey = %q, want %q", got, tt.clean)
			}
		})
	}
}
