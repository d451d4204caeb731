package answers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"

	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/model"
)

// WriteDiffPreview renders a colored unified diff between the answers
// currently on disk and the answers about to be stored. Used in verbose mode
// so operators can see what the run will record before the engine touches
// the system. A missing prior file diffs against empty content.
func WriteDiffPreview(out io.Writer, set *model.ModuleSet, path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	before, err := os.ReadFile(expanded)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.AnswersReadFailedFmt, path, err)
	}
	after, err := Render(set)
	if err != nil {
		return err
	}
	diff := strings.TrimSpace(udiff.Unified(path, path+" (new)", string(before), string(after)))
	if diff == "" {
		return nil
	}
	if _, err := fmt.Fprintln(out, fmt.Sprintf(messages.AnswersDiffHeaderFmt, path)); err != nil {
		return err
	}
	return writeColoredDiff(out, diff)
}

func writeColoredDiff(out io.Writer, diff string) error {
	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	for _, line := range strings.Split(diff, "\n") {
		var err error
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			_, err = add.Fprintln(out, line)
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			_, err = del.Fprintln(out, line)
		default:
			_, err = fmt.Fprintln(out, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
