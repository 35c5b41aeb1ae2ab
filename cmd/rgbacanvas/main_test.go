package main

import (
	"image"
	"testing"

	"github.com/gogpu/rgbacanvas"
)

func TestParseStrokes(t *testing.T) {
	got, err := parseStrokes("2,2 60,40; 10,50 50,50 ;; 7,-1")
	if err != nil {
		t.Fatalf("parseStrokes() error: %v", err)
	}
	want := [][]image.Point{
		{image.Pt(2, 2), image.Pt(60, 40)},
		{image.Pt(10, 50), image.Pt(50, 50)},
		{image.Pt(7, -1)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d strokes, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("stroke %d = %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("stroke %d point %d = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}

	if got, err := parseStrokes(""); err != nil || len(got) != 0 {
		t.Errorf("parseStrokes(\"\") = %v, %v", got, err)
	}
}

func TestParsePointErrors(t *testing.T) {
	for _, s := range []string{"12", "a,1", "1,b", ",", "1;2"} {
		if _, err := parsePoint(s); err == nil {
			t.Errorf("parsePoint(%q) returned nil error", s)
		}
	}
}

func TestDrawStrokeAndRepeat(t *testing.T) {
	c := rgbacanvas.MustNew(rgbacanvas.WithSize(8, 8))
	drawStroke(c, []image.Point{image.Pt(0, 0), image.Pt(3, 0), image.Pt(3, 3)})
	drawStroke(c, nil)
	if c.UndoLen() != 1 {
		t.Fatalf("UndoLen() = %d, want 1", c.UndoLen())
	}
	if c.At(3, 2).R != rgbacanvas.Ink {
		t.Error("second segment not drawn")
	}

	calls := 0
	repeat(5, func() bool {
		calls++
		return c.Undo()
	})
	if calls != 2 {
		t.Errorf("repeat called fn %d times, want 2 (stop at first false)", calls)
	}
}

func TestApplyChannels(t *testing.T) {
	c := rgbacanvas.MustNew(rgbacanvas.WithSize(2, 2))
	if err := applyChannels(c, "gb", "rgba"); err != nil {
		t.Fatalf("applyChannels() error: %v", err)
	}
	if c.ActiveChannels() != rgbacanvas.Channels(rgbacanvas.ChannelG, rgbacanvas.ChannelB) {
		t.Errorf("ActiveChannels() = %s", c.ActiveChannels())
	}
	if c.VisibleChannels() != rgbacanvas.AllChannels {
		t.Errorf("VisibleChannels() = %s", c.VisibleChannels())
	}
	if err := applyChannels(c, "q", "r"); err == nil {
		t.Error("applyChannels with unknown letter returned nil error")
	}
}
