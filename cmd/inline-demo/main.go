// Command inline-demo is a small REPL showing package inline wired to a
// real terminal: bounded history, prefix autocomplete over a fixed
// command table, keyword syntax colouring, and opt-in multi-line input
// for unterminated braces. Supersedes the teacher's cli/example/main.go,
// narrowed from "drive a shell inside a terminal window" to "drive one
// line editor."
//
// Usage:
//
//	go run ./cmd/inline-demo
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Morpho-lang/inline"
	"github.com/Morpho-lang/inline/term"
)

var commands = []string{
	"help", "history", "clear", "exit", "quit",
	"load", "load-file", "save", "save-file",
}

var keywords = map[string]int32{
	"help": 1, "history": 1, "clear": 1, "exit": 1, "quit": 1,
	"load": 1, "load-file": 1, "save": 1, "save-file": 1,
	"if": 2, "else": 2, "for": 2, "return": 2, "func": 2,
}

func main() {
	ed := inline.New("demo> ", inline.WithTerminalIO(term.NewStdIO()))
	defer ed.Close()

	ed.SetHistoryLength(200)

	if err := ed.SetPalette([]int32{
		-1,                       // 0: unused
		inline.RGB(97, 214, 214), // 1: commands
		inline.RGB(214, 149, 97), // 2: keywords
	}); err != nil {
		fmt.Fprintln(os.Stderr, "inline-demo: palette:", err)
		os.Exit(1)
	}

	ed.SetSyntaxColor(colorWords)
	ed.SetAutocomplete(completeCommand)
	ed.SetMultiline(needsMoreInput, "....> ")

	fmt.Println("type a command (try tab-completion and unbalanced braces); type exit to quit")

	for {
		line, err := ed.ReadLine(context.Background())
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return
			}
			fmt.Fprintln(os.Stderr, "inline-demo:", err)
			return
		}
		if !runCommand(ed, line) {
			return
		}
	}
}

func runCommand(ed *inline.Editor, line string) bool {
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "":
		return true
	case "exit", "quit":
		return false
	case "help":
		fmt.Println("commands:", strings.Join(commands, ", "))
	case "clear":
		fmt.Print("\033[2J\033[H")
	default:
		fmt.Printf("echo: %s\n", line)
	}
	return true
}

// colorWords colours recognised command/keyword tokens; everything
// else renders uncoloured, matching spec.md §7's CallbackFailure
// fallback (a missing colour just means "no colour").
func colorWords(buf string, byteOffset int) (inline.ColorSpan, bool) {
	rest := buf[byteOffset:]
	end := strings.IndexAny(rest, " \t\n")
	if end < 0 {
		end = len(rest)
	}
	word := rest[:end]
	colorIndex, ok := keywords[word]
	if !ok || word == "" {
		// Advance past this token (or one byte, if it's just
		// whitespace) so the renderer keeps making progress.
		if end == 0 {
			end = 1
		}
		return inline.ColorSpan{ByteEnd: byteOffset + end, ColorIndex: -1}, byteOffset+end < len(buf)
	}
	return inline.ColorSpan{ByteEnd: byteOffset + end, ColorIndex: colorIndex}, byteOffset+end < len(buf)
}

// completeCommand enumerates commands sharing the buffer's current
// prefix (spec.md §4.D).
func completeCommand(buf string, index int) (string, bool) {
	matches := matchingCommands(buf)
	if index >= len(matches) {
		return "", false
	}
	return matches[index][len(buf):], true
}

func matchingCommands(prefix string) []string {
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, prefix) && c != prefix {
			out = append(out, c)
		}
	}
	return out
}

// needsMoreInput treats an excess of '{' over '}' as "not done yet",
// demonstrating spec.md §4.H's opt-in multi-line continuation.
func needsMoreInput(buf string) bool {
	depth := 0
	for _, r := range buf {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth > 0
}
