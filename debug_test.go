package puzzlebox

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"
)

func TestMisuseLogsWhenNotDebug(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScene()
	s.SetLogger(log.New(&buf, "", 0))

	_, err := s.Lookup("bunker_hatch")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(buf.String(), "warning:") || !strings.Contains(buf.String(), "bunker_hatch") {
		t.Errorf("log = %q, want a warning naming the id", buf.String())
	}
}

func TestDebugModeLookupPanics(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on unknown lookup in debug mode")
		}
		if msg := fmt.Sprint(r); !strings.HasPrefix(msg, "puzzlebox debug:") {
			t.Errorf("panic message = %q", msg)
		}
	}()
	s.Lookup("bunker_hatch")
}

func TestDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScene()
	s.SetLogger(log.New(&buf, "", 0))

	spawnBox(t, s, "rock", 0, 0, 1, 1)
	if buf.Len() != 0 {
		t.Fatalf("trace written without debug mode: %q", buf.String())
	}

	s.SetDebugMode(true)
	spawnBox(t, s, "paper", 0, 0, 1, 1)
	if !strings.Contains(buf.String(), `debug: spawn "paper"`) {
		t.Errorf("log = %q, want a spawn trace", buf.String())
	}
}
