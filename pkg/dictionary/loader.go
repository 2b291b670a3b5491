// Package dictionary reads word lists from disk and turns them into trie indexes.
package dictionary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/triesearch/pkg/trie"
)

// Loader reads word lists through an afero filesystem.
type Loader struct {
	fs  afero.Fs
	key string
}

// NewLoader creates a loader. key names the field to index when a list
// holds records instead of plain strings.
func NewLoader(fs afero.Fs, key string) *Loader {
	return &Loader{fs: fs, key: key}
}

// Load reads filename and builds an index from its contents.
func (l *Loader) Load(filename string) (*trie.Index, error) {
	source, err := l.LoadSource(filename)
	if err != nil {
		return nil, err
	}

	idx, err := trie.New(source, trie.WithKey(l.key))
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", filename, err)
	}

	log.Debugf("Loaded %s: %d words, %d nodes", filename, idx.Len(), idx.NodeCount())
	return idx, nil
}

// LoadSource reads filename and returns the decoded document, ready to be
// handed to trie.New. Documents that are not arrays are returned as is, so
// construction reports them as invalid input.
func (l *Loader) LoadSource(filename string) (any, error) {
	format, err := ValidateFile(l.fs, filename)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(l.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	switch format {
	case FormatText:
		return parseText(data)
	case FormatJSON:
		return parseJSON(filename, data)
	case FormatMsgpack:
		return parseMsgpack(filename, data)
	}
	return nil, fmt.Errorf("unsupported format %v for file %s", format, filename)
}

// parseText returns one word per line, skipping blank lines and # comments.
func parseText(data []byte) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan word list: %w", err)
	}
	return words, nil
}

// parseJSON keeps string elements as strings and object elements as raw
// JSON, so the key is resolved by the index as a gjson path.
func parseJSON(filename string, data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON in %s", filename)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return doc.Value(), nil
	}

	var elems []any
	doc.ForEach(func(_, value gjson.Result) bool {
		switch {
		case value.Type == gjson.String:
			elems = append(elems, value.Str)
		case value.IsObject():
			elems = append(elems, json.RawMessage(value.Raw))
		default:
			elems = append(elems, value.Value())
		}
		return true
	})
	if elems == nil {
		return []string{}, nil
	}
	return elems, nil
}

func parseMsgpack(filename string, data []byte) (any, error) {
	var doc any
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid msgpack in %s: %w", filename, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("empty msgpack document in %s", filename)
	}
	return doc, nil
}
