// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textextract

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// mockExecutor records invocations and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	stdout        string
	stderr        string
	exitCode      int
	runErr        error

	gotName  string
	gotArgs  []string
	gotStdin string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunCapture(_ context.Context, name string, args []string, stdin io.Reader) ([]byte, []byte, int, error) {
	m.gotName = name
	m.gotArgs = args
	if stdin != nil {
		data, _ := io.ReadAll(stdin)
		m.gotStdin = string(data)
	}
	return []byte(m.stdout), []byte(m.stderr), m.exitCode, m.runErr
}

func newTestRunner(cfg types.ExtractConfig, exec *mockExecutor) *Runner {
	return &Runner{cfg: cfg, exec: exec}
}

func TestPDFToText(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pdftotext": true},
		stdout:        "extracted page text\n",
	}
	r := newTestRunner(types.ExtractConfig{}, exec)

	res, err := r.PDFToText(context.Background(), "paper.pdf")
	if err != nil {
		t.Fatalf("PDFToText: %v", err)
	}
	if res.Text != "extracted page text\n" {
		t.Errorf("Text = %q, want the tool's stdout", res.Text)
	}
	if res.Tool != "pdftotext" {
		t.Errorf("Tool = %q, want pdftotext", res.Tool)
	}
	if exec.gotName != "pdftotext" {
		t.Errorf("invoked %q, want pdftotext", exec.gotName)
	}
	if len(exec.gotArgs) != 2 || exec.gotArgs[0] != "paper.pdf" || exec.gotArgs[1] != "-" {
		t.Errorf("args = %v, want [paper.pdf -]", exec.gotArgs)
	}
}

func TestPDFToTextMissingBinary(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{}}
	r := newTestRunner(types.ExtractConfig{}, exec)

	_, err := r.PDFToText(context.Background(), "paper.pdf")
	if err == nil {
		t.Fatal("PDFToText succeeded without pdftotext installed")
	}
	var xerr *ExtractionError
	if !errors.As(err, &xerr) {
		t.Fatalf("error type = %T, want *ExtractionError", err)
	}
	if xerr.Tool != "pdftotext" || xerr.Path != "paper.pdf" {
		t.Errorf("ExtractionError = %+v, want tool and path recorded", xerr)
	}
}

func TestPDFToTextToolFailure(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pdftotext": true},
		stderr:        "Syntax Error: couldn't read xref table\n",
		exitCode:      1,
		runErr:        errors.New("exit status 1"),
	}
	r := newTestRunner(types.ExtractConfig{}, exec)

	_, err := r.PDFToText(context.Background(), "broken.pdf")
	var xerr *ExtractionError
	if !errors.As(err, &xerr) {
		t.Fatalf("error type = %T, want *ExtractionError", err)
	}
	if xerr.Stderr != "Syntax Error: couldn't read xref table" {
		t.Errorf("Stderr = %q, want the tool's trimmed stderr", xerr.Stderr)
	}
}

func TestDjvuToText(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"djvutxt": true},
		stdout:        "scanned text",
	}
	r := newTestRunner(types.ExtractConfig{}, exec)

	res, err := r.DjvuToText(context.Background(), "scan.djvu")
	if err != nil {
		t.Fatalf("DjvuToText: %v", err)
	}
	if res.Tool != "djvutxt" || res.Text != "scanned text" {
		t.Errorf("result = %+v, want djvutxt output", res)
	}
	if len(exec.gotArgs) != 1 || exec.gotArgs[0] != "scan.djvu" {
		t.Errorf("args = %v, want [scan.djvu]", exec.gotArgs)
	}
}

func TestDetex(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"delatex": true},
		stdout:        "  Some   title\n\nwith    spacing  ",
	}
	r := newTestRunner(types.ExtractConfig{}, exec)

	got, err := r.Detex(context.Background(), `\emph{Some title} with spacing`)
	if err != nil {
		t.Fatalf("Detex: %v", err)
	}
	if got != "Some title with spacing" {
		t.Errorf("Detex = %q, want whitespace collapsed", got)
	}
	if exec.gotStdin != `\emph{Some title} with spacing` {
		t.Errorf("stdin = %q, want the LaTeX source piped through", exec.gotStdin)
	}
	if len(exec.gotArgs) != 1 || exec.gotArgs[0] != "-s" {
		t.Errorf("args = %v, want [-s]", exec.gotArgs)
	}
}

func TestTextFromFileDispatch(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		bins     map[string]bool
		wantTool string
		wantErr  bool
	}{
		{"pdf via pdftotext", "a.pdf", map[string]bool{"pdftotext": true}, "pdftotext", false},
		{"pdf uppercase ext", "a.PDF", map[string]bool{"pdftotext": true}, "pdftotext", false},
		{"djvu via djvutxt", "a.djvu", map[string]bool{"djvutxt": true}, "djvutxt", false},
		{"unsupported extension", "a.epub", map[string]bool{}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{availableBins: tt.bins, stdout: "text"}
			r := newTestRunner(types.ExtractConfig{}, exec)
			res, err := r.TextFromFile(context.Background(), tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TextFromFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err == nil && res.Tool != tt.wantTool {
				t.Errorf("Tool = %q, want %q", res.Tool, tt.wantTool)
			}
		})
	}
}

func TestTextFromFileNativeFallback(t *testing.T) {
	// Without pdftotext on PATH the native reader takes over; a missing
	// file then fails inside the PDF reader rather than with a lookup error.
	exec := &mockExecutor{availableBins: map[string]bool{}}
	r := newTestRunner(types.ExtractConfig{}, exec)

	_, err := r.TextFromFile(context.Background(), "does-not-exist.pdf")
	if err == nil {
		t.Fatal("TextFromFile succeeded on a missing file")
	}
	var xerr *ExtractionError
	if errors.As(err, &xerr) && xerr.Tool == "pdftotext" {
		t.Errorf("error = %v, want the native reader path, not pdftotext", err)
	}
	if exec.gotName != "" {
		t.Errorf("a subprocess was run (%q), want none", exec.gotName)
	}
}

func TestCleanWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses runs", "a  b\t\tc", "a b c"},
		{"trims ends", "  hello world  ", "hello world"},
		{"newlines", "line one\nline two\n", "line one line two"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanWhitespace(tt.in); got != tt.want {
				t.Errorf("CleanWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewRunnerUsesOSExecutor(t *testing.T) {
	r := NewRunner(types.ExtractConfig{})
	if r.exec == nil {
		t.Fatal("NewRunner left the executor nil")
	}
	if _, ok := r.exec.(*osExecutor); !ok {
		t.Errorf("executor type = %T, want *osExecutor", r.exec)
	}
}

func TestOSExecutorRunCapture(t *testing.T) {
	if _, err := (&osExecutor{}).LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	stdout, _, exitCode, err := (&osExecutor{}).RunCapture(
		context.Background(), "sh", []string{"-c", "printf hello"}, nil)
	if err != nil {
		t.Fatalf("RunCapture: %v", err)
	}
	if string(stdout) != "hello" {
		t.Errorf("stdout = %q, want hello", stdout)
	}
	if exitCode != 0 {
		t.Errorf("exitCode = %d, want 0", exitCode)
	}
}
