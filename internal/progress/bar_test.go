package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestBarRenderZeroProgress(t *testing.T) {
	var buf bytes.Buffer
	NewBar("Uploading", &buf).Render(0, 100)

	out := buf.String()
	want := "Uploading [" + strings.Repeat(".", 40) + "] 0/100\r\r"
	if out != want {
		t.Errorf("Render(0, 100) = %q, want %q", out, want)
	}
	if strings.Contains(out, "#") {
		t.Error("zero-progress bar contains fill characters")
	}
	if strings.Contains(out, "\n") {
		t.Error("incomplete bar emitted a line break")
	}
}

func TestBarRenderPartial(t *testing.T) {
	var buf bytes.Buffer
	NewBar("Uploading", &buf).Render(50, 100)

	out := buf.String()
	want := "Uploading [" + strings.Repeat("#", 20) + strings.Repeat(".", 20) + "] 50/100\r\r"
	if out != want {
		t.Errorf("Render(50, 100) = %q, want %q", out, want)
	}
}

func TestBarRenderComplete(t *testing.T) {
	var buf bytes.Buffer
	NewBar("Downloading", &buf).Render(100, 100)

	out := buf.String()
	want := "Downloading [" + strings.Repeat("#", 40) + "] 100/100\r\r\n"
	if out != want {
		t.Errorf("Render(100, 100) = %q, want %q", out, want)
	}
}

// Zero totals must render an empty bar rather than divide.
func TestBarRenderZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	NewBar("Uploading", &buf).Render(0, 0)

	out := buf.String()
	if !strings.Contains(out, "0/0") {
		t.Errorf("Render(0, 0) = %q, want a 0/0 bar", out)
	}
	if strings.Contains(out, "#") {
		t.Error("zero-total bar contains fill characters")
	}
}

func TestBarReporterSuppressesZeroCallback(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter("Uploading", NewBar("Uploading", &buf))

	r.Progress(0, 100)
	if buf.Len() != 0 {
		t.Errorf("zero-progress callback produced output: %q", buf.String())
	}

	r.Progress(25, 100)
	if buf.Len() == 0 {
		t.Error("nonzero-progress callback produced no output")
	}
}

func TestBarReporterDrivesBarToCompletion(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter("Uploading", NewBar("Uploading", &buf))

	r.Progress(0, 100)
	r.Progress(50, 100)
	r.Progress(100, 100)
	r.Finish()

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("completed bar output %q does not end in a line break", out)
	}
}
