package logger

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"logge/facade"
	"logge/internal/testsupport"
)

// Registration with the facade is permanent for the test binary, so this is
// the only test that activates.
func TestActivateIsProcessWideAndSingular(t *testing.T) {
	withMaxLevel(t, facade.FilterTrace)

	buf := &testsupport.SyncBuffer{}
	DefaultOptions().
		SetWriter(buf).
		SetColor(ColorNever).
		SetEnabled(func(md facade.Metadata) bool { return strings.HasPrefix(md.Target, "app") }).
		Activate()

	if facade.Logger() != facade.Log(Global()) {
		t.Fatalf("facade logger = %T, want the global sink", facade.Logger())
	}

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			facade.For("app::worker").Infof("job %d done", i)
		}()
	}
	wg.Wait()
	facade.Infof("other", "filtered out")
	facade.Flush()

	lines := buf.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", lines)
	}
	for _, line := range lines {
		if !linePattern.MatchString(line) || !strings.Contains(line, "[app::worker] - job ") {
			t.Fatalf("unexpected line %q", line)
		}
	}

	second := &testsupport.SyncBuffer{}
	err := DefaultOptions().SetWriter(second).SetColor(ColorNever).TryActivate()
	if !errors.Is(err, facade.ErrAlreadySet) {
		t.Fatalf("second activation error = %v, want ErrAlreadySet", err)
	}

	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected Activate to panic on second call")
			}
			if err, ok := r.(error); !ok || !errors.Is(err, facade.ErrAlreadySet) {
				t.Fatalf("panic value = %v, want ErrAlreadySet", r)
			}
		}()
		DefaultOptions().SetWriter(second).SetColor(ColorNever).Activate()
	}()

	// The options still reach the global sink before registration fails.
	facade.Errorf("late", "after failed activation")
	if !strings.Contains(second.String(), "[late] - after failed activation") {
		t.Fatalf("second writer got %q", second.String())
	}
	if strings.Contains(buf.String(), "late") {
		t.Fatal("first writer should no longer receive events")
	}
}
