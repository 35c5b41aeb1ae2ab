package rgbacanvas

import (
	"fmt"
	"strings"
)

// Channel identifies one of the four sample planes of a Canvas.
type Channel uint8

// Channels in storage and compositing order.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA

	numChannels = 4
)

// String returns the single-letter channel name.
func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	case ChannelA:
		return "A"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// IsValid reports whether c names one of the four channels.
func (c Channel) IsValid() bool {
	return c < numChannels
}

// ChannelSet is a set of channels stored as a bit mask.
// The zero value is the empty set.
type ChannelSet uint8

// AllChannels contains R, G, B and A.
const AllChannels ChannelSet = 1<<numChannels - 1

// Channels builds a set from the given channels. Invalid channels are ignored.
func Channels(chs ...Channel) ChannelSet {
	var s ChannelSet
	for _, c := range chs {
		s = s.With(c)
	}
	return s
}

// ParseChannels parses a channel list such as "rgb", "R,A" or "none".
// Letters are case-insensitive; commas and whitespace are ignored.
func ParseChannels(s string) (ChannelSet, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return 0, nil
	}
	var set ChannelSet
	for _, r := range s {
		switch r {
		case 'r', 'R':
			set = set.With(ChannelR)
		case 'g', 'G':
			set = set.With(ChannelG)
		case 'b', 'B':
			set = set.With(ChannelB)
		case 'a', 'A':
			set = set.With(ChannelA)
		case ',', ' ', '\t':
		default:
			return 0, fmt.Errorf("%w: %q in %q", ErrUnknownChannel, r, s)
		}
	}
	return set, nil
}

// Has reports whether c is in the set.
func (s ChannelSet) Has(c Channel) bool {
	return c.IsValid() && s&(1<<c) != 0
}

// With returns the set with c added.
func (s ChannelSet) With(c Channel) ChannelSet {
	if !c.IsValid() {
		return s
	}
	return s | 1<<c
}

// Without returns the set with c removed.
func (s ChannelSet) Without(c Channel) ChannelSet {
	if !c.IsValid() {
		return s
	}
	return s &^ (1 << c)
}

// Len returns the number of channels in the set.
func (s ChannelSet) Len() int {
	n := 0
	for c := Channel(0); c < numChannels; c++ {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Slice returns the members in R, G, B, A order.
func (s ChannelSet) Slice() []Channel {
	out := make([]Channel, 0, numChannels)
	for c := Channel(0); c < numChannels; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String returns the member letters in order, e.g. "RGB", or "none".
func (s ChannelSet) String() string {
	if s&AllChannels == 0 {
		return "none"
	}
	var b strings.Builder
	for _, c := range s.Slice() {
		b.WriteString(c.String())
	}
	return b.String()
}
