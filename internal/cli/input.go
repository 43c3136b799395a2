package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/drossy/stars"
)

// ReadMenuInput presses menu buttons from lines read on r until EOF or ctx
// is done. A line is a button name or its 1-based position; "q" and "quit"
// stop the application.
func ReadMenuInput(ctx context.Context, app *stars.Application, r io.Reader, w io.Writer) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if line == "" {
				continue
			}
			if !handleLine(ctx, app, line) {
				fmt.Fprintf(w, ">>> Unknown option %q\n", line)
			}
		}
	}
}

func handleLine(ctx context.Context, app *stars.Application, line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		app.Stop()
		return true
	}

	screen := app.Screen()
	if screen == nil {
		return false
	}
	if n, err := strconv.Atoi(line); err == nil {
		buttons := screen.Buttons()
		if n < 1 || n > len(buttons) {
			return false
		}
		line = buttons[n-1].Name
	}
	return screen.Press(ctx, line)
}
