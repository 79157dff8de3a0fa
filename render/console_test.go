package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleRendererRender(t *testing.T) {
	var buf bytes.Buffer
	r := &ConsoleRenderer{Out: &buf}

	sections := []TableSection{{
		Title:   "المواعيد الثابتة (الأسبوعية)",
		Headers: []string{"الغرفة", "الوقت"},
		Rows:    [][]string{{"A", "10:00 ص إلى 11:00 ص"}},
	}}

	if err := r.Render("تنظيم الخدمه بمبني الخدمات", sections); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if out == "" {
		t.Fatal("Render() produced no output")
	}
	// Numerals must arrive in the Eastern Arabic script.
	if !strings.Contains(out, "١٠") {
		t.Errorf("output does not contain converted numerals:\n%s", out)
	}
	if !strings.Contains(out, "A") {
		t.Errorf("output does not contain the room name:\n%s", out)
	}
}

func TestConsoleRendererEmptySections(t *testing.T) {
	var buf bytes.Buffer
	r := &ConsoleRenderer{Out: &buf}
	if err := r.Render("عنوان", nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("title should still be rendered")
	}
}
