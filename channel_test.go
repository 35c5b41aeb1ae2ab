package rgbacanvas

import (
	"errors"
	"testing"
)

func TestChannelString(t *testing.T) {
	tests := []struct {
		ch   Channel
		want string
	}{
		{ChannelR, "R"},
		{ChannelG, "G"},
		{ChannelB, "B"},
		{ChannelA, "A"},
		{Channel(7), "Channel(7)"},
	}
	for _, tt := range tests {
		if got := tt.ch.String(); got != tt.want {
			t.Errorf("Channel(%d).String() = %q, want %q", uint8(tt.ch), got, tt.want)
		}
	}
}

func TestChannelSet(t *testing.T) {
	s := Channels(ChannelR, ChannelB)
	if !s.Has(ChannelR) || !s.Has(ChannelB) {
		t.Errorf("set %s should contain R and B", s)
	}
	if s.Has(ChannelG) || s.Has(ChannelA) {
		t.Errorf("set %s should not contain G or A", s)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.With(ChannelA).String(); got != "RBA" {
		t.Errorf("With(A).String() = %q, want %q", got, "RBA")
	}
	if got := s.Without(ChannelR).String(); got != "B" {
		t.Errorf("Without(R).String() = %q, want %q", got, "B")
	}
	if got := s.With(Channel(9)); got != s {
		t.Errorf("With(invalid) = %v, want unchanged %v", got, s)
	}
	if got := ChannelSet(0).String(); got != "none" {
		t.Errorf("empty set String() = %q, want %q", got, "none")
	}
	if AllChannels.Len() != 4 {
		t.Errorf("AllChannels.Len() = %d, want 4", AllChannels.Len())
	}
}

func TestChannelSetSlice(t *testing.T) {
	got := Channels(ChannelA, ChannelG).Slice()
	if len(got) != 2 || got[0] != ChannelG || got[1] != ChannelA {
		t.Errorf("Slice() = %v, want [G A]", got)
	}
}

func TestParseChannels(t *testing.T) {
	tests := []struct {
		in      string
		want    ChannelSet
		wantErr bool
	}{
		{"", 0, false},
		{"none", 0, false},
		{"r", Channels(ChannelR), false},
		{"RGB", Channels(ChannelR, ChannelG, ChannelB), false},
		{"r, a", Channels(ChannelR, ChannelA), false},
		{"rgba", AllChannels, false},
		{"rrg", Channels(ChannelR, ChannelG), false},
		{"rx", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChannels(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownChannel) {
					t.Fatalf("ParseChannels(%q) error = %v, want ErrUnknownChannel", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChannels(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseChannels(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
