// Copyright 2025 The triesearch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the triesearch completion server and CLI.

triesearch indexes a word list in a prefix trie and answers prefix
queries with every indexed word that starts with the prefix. It can run as
a MessagePack IPC server for editors and other processes, answer a single
query, or run an interactive prompt for testing.

# Usage

Serve completions for a word list over stdin/stdout:

	triesearch serve --dict words.txt

Index JSON records by one of their fields and rebuild on change:

	triesearch serve --dict people.json --key name --watch

Answer a single query:

	triesearch suggest car --dict words.txt --limit 5 --json

Run the interactive prompt:

	triesearch cli --dict words.txt

# Word lists

Word lists are picked by extension: .txt and .lst hold one word per line,
.json holds an array of strings or objects, .msgpack and .mpk hold a
MessagePack array of strings or maps. Lists of records need --key.

# Configuration

Defaults come from a TOML file, created on first use:

	[server]
	max_limit = 64
	max_prefix = 60
	default_limit = 10

	[dict]
	path = "words.txt"
	key = ""
	watch = false

	[cache]
	max_entries = 2048

Flags override the file.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Print("Exiting...")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
