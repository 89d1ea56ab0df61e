// Package steps implements the file mode demo: show the target file, overwrite
// it in write mode, extend it in append mode and show it again.
package steps

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Mayamba10/fictional-spoon/internal/system"
	"github.com/Mayamba10/fictional-spoon/internal/ui"
)

// Fixed text written by the demo
const (
	IntroText           = "Hello, I'm GitHub Copilot.\nThis file demonstrates opening a file in different modes.\n"
	FavoriteSubjectLine = "\nFavorite subject: Science\n"
)

// Labels used for the two read points
const (
	LabelBefore = "Before (read)"
	LabelAfter  = "After (final)"
)

// Stage is the last point a run reached
type Stage int

const (
	StageNone Stage = iota
	StageBeforeRead
	StageWritten
	StageAppended
	StageAfterRead
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageBeforeRead:
		return "before-read"
	case StageWritten:
		return "written"
	case StageAppended:
		return "appended"
	case StageAfterRead:
		return "after-read"
	default:
		return "unknown"
	}
}

// ContentState describes the target file at a read point
type ContentState int

const (
	ContentAbsent ContentState = iota
	ContentEmpty
	ContentPresent
)

func (c ContentState) String() string {
	switch c {
	case ContentAbsent:
		return "absent"
	case ContentEmpty:
		return "empty"
	case ContentPresent:
		return "present"
	default:
		return "unknown"
	}
}

// FileModeDemo opens one target file in read, write and append modes and
// reports its contents around each mutation
type FileModeDemo struct {
	fs    system.FileSystemManager
	ui    *ui.UI
	stage Stage
}

// NewFileModeDemo creates a new FileModeDemo instance
func NewFileModeDemo(fs system.FileSystemManager, ui *ui.UI) *FileModeDemo {
	return &FileModeDemo{
		fs: fs,
		ui: ui,
	}
}

// Stage returns the last stage reached by Run
func (d *FileModeDemo) Stage() Stage {
	return d.stage
}

// Inspect reads the target in read mode without printing anything.
// A missing file is reported as ContentAbsent, not as an error.
func (d *FileModeDemo) Inspect(path string) (ContentState, string, error) {
	exists, err := d.fs.FileExists(path)
	if err != nil {
		return ContentAbsent, "", err
	}
	if !exists {
		return ContentAbsent, "", nil
	}

	text, err := d.fs.ReadText(path)
	if err != nil {
		return ContentAbsent, "", err
	}
	if text == "" {
		return ContentEmpty, "", nil
	}

	return ContentPresent, text, nil
}

// DisplayContents prints the target's contents under a header naming label and path
func (d *FileModeDemo) DisplayContents(path, label string) error {
	d.ui.Print("")
	d.ui.Section(fmt.Sprintf("%s of %s", label, path))

	state, text, err := d.Inspect(path)
	if err != nil {
		return err
	}

	switch state {
	case ContentAbsent:
		d.ui.Info("(file does not exist)")
	case ContentEmpty:
		d.ui.Info("(file is empty)")
	default:
		d.ui.Print(strings.TrimRightFunc(text, unicode.IsSpace))
	}

	return nil
}

// OverwriteWithIntro replaces the target's contents with the introductory text
func (d *FileModeDemo) OverwriteWithIntro(path string) error {
	if err := d.fs.WriteFile(path, []byte(IntroText)); err != nil {
		return err
	}

	d.ui.Print("")
	d.ui.Successf("Written intro to %s (write mode, 'w').", path)
	return nil
}

// AppendFavoriteSubject adds the favorite subject line after the existing contents
func (d *FileModeDemo) AppendFavoriteSubject(path string) error {
	if err := d.fs.AppendFile(path, []byte(FavoriteSubjectLine)); err != nil {
		return err
	}

	d.ui.Successf("Appended favorite subject to %s (append mode, 'a').", path)
	return nil
}

// Run executes the four steps in order. The first failure stops the run;
// Stage then reports the last step that completed.
func (d *FileModeDemo) Run(path string) error {
	d.stage = StageNone

	steps := []struct {
		name  string
		stage Stage
		run   func() error
	}{
		{"read", StageBeforeRead, func() error { return d.DisplayContents(path, LabelBefore) }},
		{"write", StageWritten, func() error { return d.OverwriteWithIntro(path) }},
		{"append", StageAppended, func() error { return d.AppendFavoriteSubject(path) }},
		{"final read", StageAfterRead, func() error { return d.DisplayContents(path, LabelAfter) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("%s step failed: %w", step.name, err)
		}
		d.stage = step.stage
	}

	return nil
}

// ExpectedContent returns the exact content the target holds after a successful Run
func ExpectedContent() string {
	return IntroText + FavoriteSubjectLine
}
