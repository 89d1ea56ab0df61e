package steps

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mayamba10/fictional-spoon/internal/system"
	"github.com/Mayamba10/fictional-spoon/internal/ui"
	"github.com/spf13/afero"
)

const finalContent = "Hello, I'm GitHub Copilot.\n" +
	"This file demonstrates opening a file in different modes.\n" +
	"\n" +
	"Favorite subject: Science\n"

func newTestDemo(t *testing.T, fs system.FileSystemManager) (*FileModeDemo, *bytes.Buffer) {
	t.Helper()
	ui.DisableColor()
	var buf bytes.Buffer
	return NewFileModeDemo(fs, ui.NewWithWriter(&buf)), &buf
}

func newMemFS(t *testing.T, files map[string]string) (*system.FileSystem, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(mem, path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to seed %s: %v", path, err)
		}
	}
	return system.NewFileSystemWithFs(mem), mem
}

func readBack(t *testing.T, mem afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(mem, path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestExpectedContent(t *testing.T) {
	if ExpectedContent() != finalContent {
		t.Errorf("ExpectedContent() = %q, want %q", ExpectedContent(), finalContent)
	}
}

func TestRunFinalContent(t *testing.T) {
	tests := []struct {
		name string
		seed map[string]string
	}{
		{"file absent", nil},
		{"file empty", map[string]string{"demo_target.txt": ""}},
		{"file with old data", map[string]string{"demo_target.txt": "old data"}},
		{"file with longer content", map[string]string{"demo_target.txt": strings.Repeat("previous line\n", 50)}},
		{"file already holding final content", map[string]string{"demo_target.txt": finalContent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, mem := newMemFS(t, tt.seed)
			demo, _ := newTestDemo(t, fs)

			if err := demo.Run("demo_target.txt"); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := readBack(t, mem, "demo_target.txt"); got != finalContent {
				t.Errorf("final content = %q, want %q", got, finalContent)
			}
			if demo.Stage() != StageAfterRead {
				t.Errorf("Stage() = %v, want %v", demo.Stage(), StageAfterRead)
			}
		})
	}
}

func TestRunTwiceIsNotAdditive(t *testing.T) {
	fs, mem := newMemFS(t, nil)
	demo, _ := newTestDemo(t, fs)

	for i := 0; i < 2; i++ {
		if err := demo.Run("demo_target.txt"); err != nil {
			t.Fatalf("Run() #%d error = %v", i+1, err)
		}
	}

	if got := readBack(t, mem, "demo_target.txt"); got != finalContent {
		t.Errorf("final content after two runs = %q, want %q", got, finalContent)
	}
}

func TestRunOutputFileAbsent(t *testing.T) {
	fs, _ := newMemFS(t, nil)
	demo, buf := newTestDemo(t, fs)

	if err := demo.Run("demo_target.txt"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "\n" +
		"--- Before (read) of demo_target.txt ---\n" +
		"[INFO] (file does not exist)\n" +
		"\n" +
		"[✓] Written intro to demo_target.txt (write mode, 'w').\n" +
		"[✓] Appended favorite subject to demo_target.txt (append mode, 'a').\n" +
		"\n" +
		"--- After (final) of demo_target.txt ---\n" +
		"Hello, I'm GitHub Copilot.\n" +
		"This file demonstrates opening a file in different modes.\n" +
		"\n" +
		"Favorite subject: Science\n"

	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunOutputOldData(t *testing.T) {
	fs, mem := newMemFS(t, map[string]string{"demo_target.txt": "old data"})
	demo, buf := newTestDemo(t, fs)

	if err := demo.Run("demo_target.txt"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	before := "--- Before (read) of demo_target.txt ---\nold data\n"
	if !strings.Contains(out, before) {
		t.Errorf("output missing before block %q: %q", before, out)
	}
	if strings.Contains(readBack(t, mem, "demo_target.txt"), "old data") {
		t.Error("old data survived the write step")
	}
}

func TestDisplayContents(t *testing.T) {
	tests := []struct {
		name string
		seed map[string]string
		want string
	}{
		{"absent", nil, "[INFO] (file does not exist)\n"},
		{"empty", map[string]string{"t.txt": ""}, "[INFO] (file is empty)\n"},
		{"text is trimmed", map[string]string{"t.txt": "line one\nline two\n\n  \t\n"}, "line one\nline two\n"},
		{"leading whitespace kept", map[string]string{"t.txt": "  indented\n"}, "  indented\n"},
		{"whitespace only", map[string]string{"t.txt": "\n\n"}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, _ := newMemFS(t, tt.seed)
			demo, buf := newTestDemo(t, fs)

			if err := demo.DisplayContents("t.txt", "Current"); err != nil {
				t.Fatalf("DisplayContents() error = %v", err)
			}

			want := "\n--- Current of t.txt ---\n" + tt.want
			if buf.String() != want {
				t.Errorf("output = %q, want %q", buf.String(), want)
			}
		})
	}
}

func TestDisplayContentsUnderRegularFileOnOS(t *testing.T) {
	plain := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(plain, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}
	path := filepath.Join(plain, "child.txt")
	demo, buf := newTestDemo(t, system.NewFileSystem())

	if err := demo.DisplayContents(path, "Current"); err != nil {
		t.Fatalf("DisplayContents() error = %v", err)
	}

	want := "\n--- Current of " + path + " ---\n[INFO] (file does not exist)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	// The path still cannot be created, so the run stops at the write step
	if err := demo.Run(path); err == nil {
		t.Error("Run() error = nil, want error writing below a regular file")
	}
	if demo.Stage() != StageBeforeRead {
		t.Errorf("Stage() = %v, want %v", demo.Stage(), StageBeforeRead)
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name      string
		seed      map[string]string
		wantState ContentState
		wantText  string
	}{
		{"absent", nil, ContentAbsent, ""},
		{"empty", map[string]string{"t.txt": ""}, ContentEmpty, ""},
		{"present", map[string]string{"t.txt": "data\n"}, ContentPresent, "data\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, _ := newMemFS(t, tt.seed)
			demo, buf := newTestDemo(t, fs)

			state, text, err := demo.Inspect("t.txt")
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}
			if state != tt.wantState {
				t.Errorf("Inspect() state = %v, want %v", state, tt.wantState)
			}
			if text != tt.wantText {
				t.Errorf("Inspect() text = %q, want %q", text, tt.wantText)
			}
			if buf.Len() != 0 {
				t.Errorf("Inspect() printed output: %q", buf.String())
			}
		})
	}
}

func TestRunInvalidUTF8AbortsBeforeWrite(t *testing.T) {
	fs, mem := newMemFS(t, map[string]string{"demo_target.txt": "caf\xe9"})
	demo, buf := newTestDemo(t, fs)

	err := demo.Run("demo_target.txt")
	if !errors.Is(err, system.ErrInvalidUTF8) {
		t.Fatalf("Run() error = %v, want ErrInvalidUTF8", err)
	}
	if demo.Stage() != StageNone {
		t.Errorf("Stage() = %v, want %v", demo.Stage(), StageNone)
	}
	if got := readBack(t, mem, "demo_target.txt"); got != "caf\xe9" {
		t.Errorf("file was modified after a failed read: %q", got)
	}
	if strings.Contains(buf.String(), "write mode") {
		t.Error("write step ran after a failed read")
	}
}

func TestRunWriteFailureAborts(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "demo_target.txt", []byte("keep"), 0644); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	fs := system.NewMockFileSystem(system.NewFileSystemWithFs(afero.NewReadOnlyFs(mem)))
	demo, _ := newTestDemo(t, fs)

	if err := demo.Run("demo_target.txt"); err == nil {
		t.Fatal("Run() error = nil, want error on read-only filesystem")
	}
	if demo.Stage() != StageBeforeRead {
		t.Errorf("Stage() = %v, want %v", demo.Stage(), StageBeforeRead)
	}
	for _, call := range fs.Calls {
		if call == system.OpAppendFile {
			t.Error("append step ran after a failed write")
		}
	}
	if got := readBack(t, mem, "demo_target.txt"); got != "keep" {
		t.Errorf("content = %q, want unchanged", got)
	}
}

func TestRunAppendFailureSkipsFinalRead(t *testing.T) {
	base, mem := newMemFS(t, nil)
	fs := system.NewMockFileSystem(base)
	injected := errors.New("no space left on device")
	fs.FailOn[system.OpAppendFile] = injected
	demo, buf := newTestDemo(t, fs)

	err := demo.Run("demo_target.txt")
	if !errors.Is(err, injected) {
		t.Fatalf("Run() error = %v, want %v", err, injected)
	}
	if !strings.Contains(err.Error(), "append step failed") {
		t.Errorf("Run() error = %q, want it to name the append step", err.Error())
	}
	if demo.Stage() != StageWritten {
		t.Errorf("Stage() = %v, want %v", demo.Stage(), StageWritten)
	}
	if strings.Contains(buf.String(), LabelAfter) {
		t.Error("final read ran after a failed append")
	}
	if got := readBack(t, mem, "demo_target.txt"); got != IntroText {
		t.Errorf("content = %q, want intro only %q", got, IntroText)
	}
}

func TestRunCallOrder(t *testing.T) {
	base, _ := newMemFS(t, map[string]string{"demo_target.txt": "old data"})
	fs := system.NewMockFileSystem(base)
	demo, _ := newTestDemo(t, fs)

	if err := demo.Run("demo_target.txt"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		system.OpFileExists, system.OpReadText,
		system.OpWriteFile,
		system.OpAppendFile,
		system.OpFileExists, system.OpReadText,
	}
	if strings.Join(fs.Calls, ",") != strings.Join(want, ",") {
		t.Errorf("Calls = %v, want %v", fs.Calls, want)
	}
}

func TestRunOnDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	demo, _ := newTestDemo(t, system.NewFileSystem())

	if err := demo.Run(dir); err == nil {
		t.Error("Run() error = nil, want error when target is a directory")
	}
}

func TestRunOnOSFileSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.txt")
	demo, _ := newTestDemo(t, system.NewFileSystem())

	if err := demo.Run(path); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if string(data) != finalContent {
		t.Errorf("final content = %q, want %q", string(data), finalContent)
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageNone, "none"},
		{StageBeforeRead, "before-read"},
		{StageWritten, "written"},
		{StageAppended, "appended"},
		{StageAfterRead, "after-read"},
		{Stage(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", int(tt.stage), got, tt.want)
		}
	}
}
