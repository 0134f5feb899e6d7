package progressbar_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samuelfneumann/gopomdp/utils/progressbar"
)

func TestManualProgressBar(t *testing.T) {
	var out bytes.Buffer
	p := progressbar.NewManualProgressBar(&out, 10, 4)

	p.Increment()
	p.Increment()
	if got := p.Progress(); got != 0.5 {
		t.Errorf("progress: want 0.5, got %v", got)
	}
	if n := strings.Count(p.String(), "█"); n != 5 {
		t.Errorf("string: want 5 filled characters, got %v", n)
	}

	p.Display("episode 2")
	if !strings.Contains(out.String(), "50.00%") ||
		!strings.Contains(out.String(), "episode 2") {
		t.Errorf("display: unexpected output %q", out.String())
	}

	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if got := p.Progress(); got != 1.0 {
		t.Errorf("progress: want 1.0 after overshooting, got %v", got)
	}

	p.Close()
	written := out.Len()
	p.Display("after close")
	if out.Len() != written {
		t.Error("display: closed progress bar still displays")
	}
}
