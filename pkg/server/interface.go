/*
Package server implements msgpack IPC for prefix completion.

The server reads a stream of msgpack encoded requests from stdin and writes
one msgpack encoded response per request to stdout. Messages are processed
synchronously with timing info included in completion responses.

# IPC

Every request carries an ID which is echoed back in the response. The action
field selects the operation and defaults to "complete":

	{"id": "req_001", "p": "ame", "l": 24}

The server responds with suggestions in lexicographic order:

	{"id": "req_001", "s": ["amen", "amend", "america"], "c": 3, "t": 145}

Words can be added at runtime:

	{"id": "ins_001", "action": "insert", "w": "amethyst"}

Other actions are "stats" and "health". Failed requests get an error
response with a code, e.g. 400 for a prefix above the configured maximum.
*/
package server

// Actions understood by the server.
const (
	ActionComplete = "complete"
	ActionInsert   = "insert"
	ActionStats    = "stats"
	ActionHealth   = "health"
)

// Request is the single inbound message shape.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Prefix string `msgpack:"p"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// StatusResponse answers insert and health requests.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// StatsResponse reports index and cache statistics.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
