package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

func TestWriterMessages(t *testing.T) {
	var out, errBuf bytes.Buffer
	w := &Writer{Out: &out, Err: &errBuf}

	w.Success("added %d items", 3)
	w.Info("scanning %s", "/tmp")
	w.Warning("skipped")
	w.Println("plain %s", "line")
	w.Error("boom: %v", "bad file")

	stdout := out.String()
	for _, want := range []string{"✓ added 3 items\n", "• scanning /tmp\n", "⚠ skipped\n", "plain line\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q, got:\n%s", want, stdout)
		}
	}
	if got := errBuf.String(); got != "✗ boom: bad file\n" {
		t.Errorf("stderr = %q, want error line", got)
	}
}

func TestJSONWriterSuccess(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{Out: &buf}

	if err := w.WriteSuccess(map[string]string{"name": "review"}); err != nil {
		t.Fatalf("WriteSuccess: %v", err)
	}

	var got CLIOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !got.Success {
		t.Error("success = false, want true")
	}
	if got.Error != "" {
		t.Errorf("error = %q, want empty", got.Error)
	}
}

func TestJSONWriterError(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{Out: &buf}

	if err := w.WriteError(errTest("no such type")); err != nil {
		t.Fatalf("WriteError: %v", err)
	}

	var got CLIOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Success {
		t.Error("success = true, want false")
	}
	if got.Error != "no such type" {
		t.Errorf("error = %q, want %q", got.Error, "no such type")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestNewCustomizationInfo(t *testing.T) {
	c := &customization.Customization{
		Name:        "reviewer",
		Type:        customization.TypeAgent,
		Level:       customization.LevelProject,
		Path:        "/repo/.opencode/agent/reviewer.md",
		Description: "Reviews diffs",
	}

	info := NewCustomizationInfo(c)
	if info.Name != "reviewer" || info.Type != "agent" || info.Level != "project" {
		t.Errorf("info = %+v, want name/type/level from record", info)
	}
	if info.Error != "" {
		t.Errorf("error = %q, want empty", info.Error)
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "\"error\"") {
		t.Errorf("empty error should be omitted, got %s", data)
	}
}
