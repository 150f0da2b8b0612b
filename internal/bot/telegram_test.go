package bot

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitMessage(t *testing.T) {
	short := "hello\nworld"
	if got := splitMessage(short, 100); len(got) != 1 || got[0] != short {
		t.Errorf("splitMessage(short) = %q", got)
	}

	text := strings.Repeat("0123456789\n", 10)
	chunks := splitMessage(text, 25)
	if strings.Join(chunks, "") != text {
		t.Error("chunks do not reassemble the input")
	}
	for _, c := range chunks {
		if len(c) > 25 {
			t.Errorf("chunk of %d bytes exceeds limit", len(c))
		}
		if !strings.HasSuffix(c, "\n") {
			t.Errorf("chunk %q split mid-line", c)
		}
	}

	long := strings.Repeat("x", 60)
	chunks = splitMessage(long, 25)
	if len(chunks) != 3 || strings.Join(chunks, "") != long {
		t.Errorf("splitMessage(long) = %q", chunks)
	}
}

func TestSplitMessage_KeepsRunesWhole(t *testing.T) {
	text := "Owner: " + strings.Repeat("🍩", 20) + "\n" + strings.Repeat("é", 30)
	chunks := splitMessage(text, 10)
	if strings.Join(chunks, "") != text {
		t.Error("chunks do not reassemble the input")
	}
	for _, c := range chunks {
		if len(c) > 10 {
			t.Errorf("chunk of %d bytes exceeds limit", len(c))
		}
		if !utf8.ValidString(c) {
			t.Errorf("chunk %q is not valid UTF-8", c)
		}
	}
}
