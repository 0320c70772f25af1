package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/questkeeper/internal/core"
)

// Notifier prints core notifications as one or two lines.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Notify(msg string, kind core.NoticeKind, detail string) {
	mark := "✔"
	if kind == core.NoticeError {
		mark = "✖"
	}
	fmt.Fprintf(n.w, "%s %s\n", mark, msg)
	if detail != "" {
		fmt.Fprintf(n.w, "  %s\n", detail)
	}
}

// Confirmer asks a y/N question on the shared input reader. Anything but
// "y" or "yes" declines, including read errors.
type Confirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

func NewConfirmer(reader *bufio.Reader, w io.Writer) *Confirmer {
	return &Confirmer{reader: reader, w: w}
}

func (c *Confirmer) Confirm(prompt string) bool {
	ans, err := GetSimpleText(c.reader, prompt+" (y/N)", c.w)
	if err != nil {
		return false
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true
	}
	return false
}
