// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/triesearch/internal/utils"
	"github.com/bastiangx/triesearch/pkg/suggest"
	"github.com/charmbracelet/log"
)

// insertMark starts a line that adds a word instead of querying a prefix.
const insertMark = "+"

// InputHandler reads prefixes line by line and prints their completions.
// Lines starting with "+" insert the rest of the line as a new word.
type InputHandler struct {
	completer    suggest.ICompleter
	reader       *bufio.Reader
	out          *log.Logger
	suggestLimit int
	requestCount int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, in io.Reader, out *log.Logger, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:    completer,
		reader:       bufio.NewReader(in),
		out:          out,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start begins the interface loop and returns once the input is exhausted.
func (h *InputHandler) Start() error {
	h.out.Print("type a prefix and press enter to see the suggestions, +word to add a word (Ctrl+D to exit):")

	for {
		line, err := h.reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput processes a single line: either an insertion or a prefix query.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if word, ok := strings.CutPrefix(line, insertMark); ok {
		if word == "" {
			h.out.Warn("Nothing to insert")
			return
		}
		h.completer.AddWord(word)
		h.out.Printf("Added '%s'", word)
		return
	}

	if !h.noFilter && !utils.IsValidInput(line) {
		h.out.Warnf("Ignoring invalid prefix: '%s'", line)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(line, h.suggestLimit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), line)

	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", line)
		return
	}

	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), line)
	for i, s := range suggestions {
		h.out.Printf("%2d. %s", i+1, s)
	}
}
