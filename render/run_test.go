package render

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	yaml "gopkg.in/yaml.v3"

	"cssb/common"
	"cssb/exchange"
	"cssb/selector"
	"cssb/sheet"
)

const goodSheet = `selectors:
  - name: editable
    parts: [ { id: main }, { class: container }, { class: editable } ]
  - name: list
    combine:
      left: { parts: [ { element: ul } ] }
      combinator: ">"
      right: { parts: [ { element: li }, { pseudo_class: first-child } ] }
`

const badSheet = `selectors:
  - name: broken
    parts: [ { class: x }, { element: p } ]
  - name: fine
    parts: [ { element: p } ]
`

func writeSheet(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write sheet: %v", err)
	}
	return path
}

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func TestProcess_Text(t *testing.T) {
	log := testLogger(t)
	src := writeSheet(t, "good.yaml", goodSheet)

	var buf bytes.Buffer
	opts := options{format: common.OutputFmtText, separator: "\t"}
	if err := process(context.Background(), []string{src}, &buf, opts, selector.New(log), log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	want := "editable\t#main.container.editable\nlist\tul > li:first-child\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestProcess_JSON(t *testing.T) {
	log := testLogger(t)
	src := writeSheet(t, "good.yaml", goodSheet)

	var buf bytes.Buffer
	opts := options{format: common.OutputFmtJson}
	if err := process(context.Background(), []string{src}, &buf, opts, selector.New(log), log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	got, err := exchange.FromJSON[[]sheet.Rendered](strings.TrimSpace(buf.String()))
	if err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(*got) != 2 || (*got)[1].Selector != "ul > li:first-child" {
		t.Errorf("unexpected output %+v", *got)
	}
}

func TestProcess_YAML(t *testing.T) {
	log := testLogger(t)
	src := writeSheet(t, "good.yaml", goodSheet)

	var buf bytes.Buffer
	opts := options{format: common.OutputFmtYaml}
	if err := process(context.Background(), []string{src}, &buf, opts, selector.New(log), log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	var got []sheet.Rendered
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(got) != 2 || got[0].Name != "editable" || got[0].Selector != "#main.container.editable" {
		t.Errorf("unexpected output %+v", got)
	}
}

func TestProcess_PartialFailure(t *testing.T) {
	log := testLogger(t)
	bad := writeSheet(t, "bad.yaml", badSheet)
	good := writeSheet(t, "good.yaml", goodSheet)

	var buf bytes.Buffer
	opts := options{format: common.OutputFmtText, separator: " "}
	err := process(context.Background(), []string{bad, good}, &buf, opts, selector.New(log), log)
	if err == nil {
		t.Fatal("expected error for broken definition")
	}
	var oe *selector.OrderError
	if !errors.As(err, &oe) {
		t.Errorf("error %v does not carry OrderError", err)
	}
	if !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("error %v does not name the source", err)
	}

	// valid selectors from both files are still written
	want := "fine p\neditable #main.container.editable\nlist ul > li:first-child\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestProcess_FailFast(t *testing.T) {
	log := testLogger(t)
	bad := writeSheet(t, "bad.yaml", badSheet)
	good := writeSheet(t, "good.yaml", goodSheet)

	var buf bytes.Buffer
	opts := options{format: common.OutputFmtText, separator: " ", failFast: true}
	if err := process(context.Background(), []string{bad, good}, &buf, opts, selector.New(log), log); err == nil {
		t.Fatal("expected error for broken definition")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on fail fast, got %q", buf.String())
	}
}

func TestProcess_MissingSource(t *testing.T) {
	log := testLogger(t)

	var buf bytes.Buffer
	opts := options{format: common.OutputFmtJson}
	err := process(context.Background(), []string{filepath.Join(t.TempDir(), "missing.yaml")}, &buf, opts, selector.New(log), log)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q, want empty JSON array", buf.String())
	}
}

func TestProcess_Cancelled(t *testing.T) {
	log := testLogger(t)
	src := writeSheet(t, "good.yaml", goodSheet)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := process(ctx, []string{src}, &buf, options{}, selector.New(log), log)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("process() error = %v, want context.Canceled", err)
	}
}
