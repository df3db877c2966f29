package admonition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Match
	}{
		{
			name: "standard with title",
			text: "!!! warning \"Be careful\"\n    Do not push.\n\n",
			want: []Match{{
				Start:    0,
				End:      43,
				Source:   "!!! warning \"Be careful\"\n    Do not push.\n\n",
				Marker:   "!!!",
				Type:     "warning",
				Title:    "Be careful",
				HasTitle: true,
				Content:  "    Do not push.\n\n",
			}},
		},
		{
			name: "collapsible without title",
			text: "??? tip\n\tUse tabs.\n",
			want: []Match{{
				Start:   0,
				End:     19,
				Source:  "??? tip\n\tUse tabs.\n",
				Marker:  "???",
				Type:    "tip",
				Content: "\tUse tabs.\n",
			}},
		},
		{
			name: "plus marker wins over its prefix",
			text: "???+ note\n    Open.\n",
			want: []Match{{
				Start:   0,
				End:     20,
				Source:  "???+ note\n    Open.\n",
				Marker:  "???+",
				Type:    "note",
				Content: "    Open.\n",
			}},
		},
		{
			name: "type case is kept as written",
			text: "!!! WARNING\n    Loud.\n",
			want: []Match{{
				Start:   0,
				End:     22,
				Source:  "!!! WARNING\n    Loud.\n",
				Marker:  "!!!",
				Type:    "WARNING",
				Content: "    Loud.\n",
			}},
		},
		{
			name: "empty quoted title is present",
			text: "!!! note \"\"\n    Body.\n",
			want: []Match{{
				Start:    0,
				End:      22,
				Source:   "!!! note \"\"\n    Body.\n",
				Marker:   "!!!",
				Type:     "note",
				HasTitle: true,
				Content:  "    Body.\n",
			}},
		},
		{
			name: "cyrillic type",
			text: "!!! заметка\n    Текст.\n",
			want: []Match{{
				Start:   0,
				End:     len("!!! заметка\n    Текст.\n"),
				Source:  "!!! заметка\n    Текст.\n",
				Marker:  "!!!",
				Type:    "заметка",
				Content: "    Текст.\n",
			}},
		},
		{
			name: "type with diacritics",
			text: "??? café \"Menu\"\n    x\n",
			want: []Match{{
				Start:    0,
				End:      len("??? café \"Menu\"\n    x\n"),
				Source:   "??? café \"Menu\"\n    x\n",
				Marker:   "???",
				Type:     "café",
				Title:    "Menu",
				HasTitle: true,
				Content:  "    x\n",
			}},
		},
		{
			name: "body stops at first unindented line",
			text: "!!! note\n    a\n\n    b\nafter\n",
			want: []Match{{
				Start:   0,
				End:     22,
				Source:  "!!! note\n    a\n\n    b\n",
				Marker:  "!!!",
				Type:    "note",
				Content: "    a\n\n    b\n",
			}},
		},
		{
			name: "marker without body",
			text: "!!! note\nplain text\n",
			want: nil,
		},
		{
			name: "marker without type",
			text: "!!!\n    body\n",
			want: nil,
		},
		{
			name: "two space indent is not a body",
			text: "!!! note\n  body\n",
			want: nil,
		},
		{
			name: "no admonitions",
			text: "# Heading\n\nJust prose.\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Matches() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScan_DocumentOrder(t *testing.T) {
	text := "Intro.\n\n" +
		"!!! note\n    First.\n\n" +
		"Middle.\n\n" +
		"??? danger \"Hot\"\n    Second.\n\n" +
		"???+ info\n    Third.\n"

	got := Matches(text)
	if len(got) != 3 {
		t.Fatalf("Matches() returned %d spans, want 3", len(got))
	}

	wantTypes := []string{"note", "danger", "info"}
	for i, m := range got {
		if m.Type != wantTypes[i] {
			t.Errorf("span %d type = %q, want %q", i, m.Type, wantTypes[i])
		}
		if text[m.Start:m.End] != m.Source {
			t.Errorf("span %d offsets do not cover its source", i)
		}
		if i > 0 && m.Start < got[i-1].End {
			t.Errorf("span %d overlaps span %d", i, i-1)
		}
	}
}

func TestScan_Restartable(t *testing.T) {
	text := "!!! note\n    a\n\n!!! tip\n    b\n"
	seq := Scan(text)

	var first, second []Match
	for m := range seq {
		first = append(first, m)
	}
	for m := range seq {
		second = append(second, m)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestScan_StopsEarly(t *testing.T) {
	text := "!!! note\n    a\n\n!!! tip\n    b\n"

	count := 0
	for range Scan(text) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("loop ran %d times, want 1", count)
	}
}
