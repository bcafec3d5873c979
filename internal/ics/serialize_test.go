package ics

import (
	"bytes"
	"strings"
	"testing"

	"packlunch/internal/model"
)

func document(t *testing.T, month, year int, days ...int) model.CalendarDocument {
	t.Helper()
	req := request(month, year, days...)
	res, err := Build(req, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return NewDocument(req, res.Events, nil)
}

// unfold reverses RFC 5545 line folding and splits into logical lines.
func unfold(s string) []string {
	s = strings.ReplaceAll(s, "\r\n ", "")
	s = strings.TrimSuffix(s, "\r\n")
	return strings.Split(s, "\r\n")
}

func name(line string) string {
	if i := strings.IndexAny(line, ";:"); i >= 0 {
		return line[:i]
	}
	return line
}

func TestSerializeHeaderAndFooter(t *testing.T) {
	out := Serialize(document(t, 7, 2025, 3))
	lines := unfold(out)

	want := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//School Lunch Tracker//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Pack Child's Lunch",
		"X-WR-TIMEZONE:America/New_York",
		"BEGIN:VEVENT",
	}
	if len(lines) < len(want) {
		t.Fatalf("too few lines: %q", lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if last := lines[len(lines)-1]; last != "END:VCALENDAR" {
		t.Errorf("last line = %q, want END:VCALENDAR", last)
	}
}

func TestSerializeEventFields(t *testing.T) {
	out := Serialize(document(t, 7, 2025, 3, 9))
	lines := unfold(out)

	var blocks [][]string
	var cur []string
	in := false
	for _, l := range lines {
		switch {
		case l == "BEGIN:VEVENT":
			in, cur = true, nil
		case l == "END:VEVENT":
			in = false
			blocks = append(blocks, cur)
		case in:
			cur = append(cur, l)
		}
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d VEVENT blocks, want 2", len(blocks))
	}

	wantOrder := []string{"UID", "DTSTART", "DTEND", "SUMMARY", "DESCRIPTION", "TRANSP", "STATUS", "SEQUENCE"}
	for i, b := range blocks {
		if len(b) != len(wantOrder) {
			t.Fatalf("block %d = %q, want %d properties", i, b, len(wantOrder))
		}
		for j, w := range wantOrder {
			if got := name(b[j]); got != w {
				t.Errorf("block %d property %d = %q, want %q", i, j, got, w)
			}
		}
	}

	first := blocks[0]
	wantFirst := []string{
		"UID:pack-lunch-20250703@school-lunch",
		"DTSTART;VALUE=DATE:20250703",
		"DTEND;VALUE=DATE:20250703",
		"SUMMARY:Pack Child's Lunch",
		"DESCRIPTION:No lunch ordered today. Pack lunch for Child at School/Preschool.",
		"TRANSP:TRANSPARENT",
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
	}
	for i, w := range wantFirst {
		if first[i] != w {
			t.Errorf("first block line %d = %q, want %q", i, first[i], w)
		}
	}
	if blocks[1][0] != "UID:pack-lunch-20250709@school-lunch" {
		t.Errorf("second block UID = %q", blocks[1][0])
	}
}

func TestSerializeLineEndings(t *testing.T) {
	out := Serialize(document(t, 7, 2025, 3, 9, 16))
	for i := 0; i < len(out); i++ {
		if out[i] == '\n' && (i == 0 || out[i-1] != '\r') {
			t.Fatalf("bare LF at offset %d", i)
		}
	}
	if strings.Contains(out, "DTSTAMP") {
		t.Error("output contains DTSTAMP, want no time-dependent fields")
	}
}

func TestSerializeCRLFTerminators(t *testing.T) {
	doc := document(t, 7, 2025, 3)

	var buf bytes.Buffer
	if err := SerializeTo(&buf, doc); err != nil {
		t.Fatalf("SerializeTo() error = %v", err)
	}
	for name, out := range map[string]string{"Serialize": Serialize(doc), "SerializeTo": buf.String()} {
		lf := strings.Count(out, "\n")
		crlf := strings.Count(out, "\r\n")
		if lf == 0 || lf != crlf {
			t.Errorf("%s: LF = %d, CRLF = %d, want every line terminated by CRLF", name, lf, crlf)
		}
		if !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
			t.Errorf("%s: output does not end with a CRLF-terminated footer", name)
		}
	}
}

func TestSerializeDeterministic(t *testing.T) {
	a := Serialize(document(t, 7, 2025, 31, 3, 16))
	b := Serialize(document(t, 7, 2025, 3, 16, 31, 3))
	if a != b {
		t.Errorf("serialization not deterministic:\n%s\n---\n%s", a, b)
	}

	var buf bytes.Buffer
	if err := SerializeTo(&buf, document(t, 7, 2025, 3, 16, 31)); err != nil {
		t.Fatalf("SerializeTo() error = %v", err)
	}
	if buf.String() != a {
		t.Error("SerializeTo output differs from Serialize")
	}
}

func TestSerializeEmpty(t *testing.T) {
	doc := NewDocument(request(4, 2025, 31), nil, nil)
	out := Serialize(doc)
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("empty document contains an event")
	}
	if !strings.Contains(out, "END:VCALENDAR") {
		t.Error("empty document missing footer")
	}
}

func TestSerializeKeepsInputOrder(t *testing.T) {
	doc := document(t, 7, 2025, 3, 9)
	doc.Events[0], doc.Events[1] = doc.Events[1], doc.Events[0]
	out := Serialize(doc)
	if strings.Index(out, "20250709") > strings.Index(out, "20250703") {
		t.Error("serializer re-sorted events")
	}
}
