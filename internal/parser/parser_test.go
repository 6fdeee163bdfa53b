package parser

import (
	"testing"
)

func TestOutline_Empty(t *testing.T) {
	s := Outline("")
	if len(s.Headings) != 0 || s.Tables != 0 || s.Lists != 0 {
		t.Errorf("Outline(\"\") = %+v, want zero structure", s)
	}
}

func TestOutline_Headings(t *testing.T) {
	s := Outline("# Eins\n\n## Zwei *kursiv*\n\n### Drei `code`")
	want := []struct {
		level int
		text  string
	}{
		{1, "Eins"},
		{2, "Zwei kursiv"},
		{3, "Drei code"},
	}
	if len(s.Headings) != len(want) {
		t.Fatalf("Outline() headings = %d, want %d", len(s.Headings), len(want))
	}
	for i, w := range want {
		if s.Headings[i].Level != w.level || s.Headings[i].Text != w.text {
			t.Errorf("Headings[%d] = %+v, want level %d %q", i, s.Headings[i], w.level, w.text)
		}
	}
}

func TestOutline_Blocks(t *testing.T) {
	markdown := "A | B\n--|--\n1 | 2\n\n- a\n- b\n\n1. x\n\n> q\n\n---\n\n`c` und `d`"
	s := Outline(markdown)

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"tables", s.Tables, 1},
		{"lists", s.Lists, 2},
		{"list items", s.ListItems, 3},
		{"blockquotes", s.Blockquotes, 1},
		{"rules", s.Rules, 1},
		{"code spans", s.CodeSpans, 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("Outline() %s = %d, want %d", c.name, c.got, c.want)
		}
	}
}
