/*
Package server implements msgpack IPC for the vocabulary index.

The server provides a minimal request/response interface over stdin/stdout
using binary msgpack encoding. Messages are processed synchronously with
timing info included in completion responses.

# IPC

Each request carries an ID, an op, and the fields that op needs:

	{"id": "req_001", "op": "complete", "p": "ame", "l": 24}

The server responds with suggestions ranked by score, rank 1 being best:

	{"id": "req_001", "s": [{"w": "amenity", "r": 1}, {"w": "america", "r": 2}], "c": 2, "t": 145}

Mutation and lookup ops reply with a status message:

	{"id": "m_001", "op": "insert", "w": "amenity", "f": 4.2}   -> {"id": "m_001", "status": "ok"}
	{"id": "m_002", "op": "remove", "w": "amenity"}             -> {"id": "m_002", "status": "ok"} or "miss"
	{"id": "m_003", "op": "contains", "w": "amenity"}           -> {"id": "m_003", "status": "yes"} or "no"

Snapshot ops (`load`, `save`) take a path and reply with a status message;
`stats` replies with the three counters; `health` answers "ok".

Invalid requests produce a structured error response, never a dropped
connection. The stream ends cleanly on EOF.
*/
package server

// Request is the single incoming message shape; Op selects the operation and
// decides which other fields are read.
type Request struct {
	ID     string  `msgpack:"id"`
	Op     string  `msgpack:"op"`
	Prefix string  `msgpack:"p,omitempty"`
	Limit  int     `msgpack:"l,omitempty"`
	Word   string  `msgpack:"w,omitempty"`
	Score  float64 `msgpack:"f,omitempty"`
	Path   string  `msgpack:"path,omitempty"`
}

// Suggestion - minimal suggestion response
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatusResponse answers mutation, lookup, snapshot and health ops.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// StatsResponse carries the index counters.
type StatsResponse struct {
	ID     string `msgpack:"id"`
	Words  int    `msgpack:"words"`
	Height int    `msgpack:"height"`
	Nodes  int    `msgpack:"nodes"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
