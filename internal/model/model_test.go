package model

import (
	"testing"
	"time"
)

func TestIsChannelID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"canonical", "UCabcdefghijklmnopqrstuv", true},
		{"with underscore and dash", "UC_abc-defghijklmnopqrst", true},
		{"wrong prefix", "UDabcdefghijklmnopqrstuv", false},
		{"too short", "UCabc", false},
		{"too long", "UCabcdefghijklmnopqrstuvw", false},
		{"invalid character", "UCabcdefghijklmnopqrst!v", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChannelID(tt.id); got != tt.want {
				t.Errorf("IsChannelID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIsVideoID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"canonical", "dQw4w9WgXcQ", true},
		{"with underscore and dash", "a_b-c_d-e_f", true},
		{"too short", "abc", false},
		{"too long", "dQw4w9WgXcQQ", false},
		{"invalid character", "dQw4w9WgXc!", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVideoID(tt.id); got != tt.want {
				t.Errorf("IsVideoID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestNewVideoRecord_ClampsNegativeCounts(t *testing.T) {
	rec := NewVideoRecord("dQw4w9WgXcQ", "Title", "", time.Now(), "", -1, -5, -10, "PT1M", nil)

	if rec.ViewCount != 0 || rec.LikeCount != 0 || rec.CommentCount != 0 {
		t.Errorf("counts = %d/%d/%d, want all clamped to 0",
			rec.ViewCount, rec.LikeCount, rec.CommentCount)
	}
}
