package webreq

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rail-go/rail/pkg/rail"
	"github.com/rail-go/rail/pkg/rail/chain"
)

var (
	ErrNoID      = errors.New("No id found")
	ErrNotObject = errors.New("request body is not a JSON object")
)

// Reply is the terminal outcome of a handled request.
type Reply struct {
	Status  int
	Message string
}

// Parse reads and decodes a JSON request body into a generic object.
//
// Two parse failures are anticipated and travel as the failure variant:
// malformed JSON (the native syntax error is kept verbatim) and a body whose
// top-level value is not an object (ErrNotObject). Everything else,
// including a failing reader, is outside the contract and panics.
func Parse(r io.Reader) rail.Result[map[string]any, error] {
	raw, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return rail.Failure[map[string]any, error](err)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return rail.Failure[map[string]any, error](ErrNotObject)
		}
		panic(err)
	}
	return rail.Success[map[string]any, error](body)
}

// ParseBody parses a request body given as a string.
func ParseBody(body string) rail.Result[map[string]any, error] {
	return Parse(strings.NewReader(body))
}

// RequireID extracts the id field from a parsed body. An absent or falsy id
// (null, "", false, 0) fails with ErrNoID; any other value is rendered as a
// string.
func RequireID(body map[string]any) rail.Result[string, error] {
	v, ok := body["id"]
	if !ok || falsy(v) {
		return rail.Failure[string, error](ErrNoID)
	}
	if s, ok := v.(string); ok {
		return rail.Success[string, error](s)
	}
	return rail.Success[string, error](fmt.Sprint(v))
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		// json numbers decode as float64
		return x == 0
	}
	return false
}

// Handle runs the parse -> require-id pipeline over the request body and
// invokes respond exactly once with the terminal Reply: 200 with the id on
// success, 400 with the failure message otherwise.
func Handle(r io.Reader, respond func(Reply)) {
	reply := chain.Match(
		chain.Then(chain.Start(Parse(r)), RequireID),
		func(id string) Reply {
			return Reply{Status: http.StatusOK, Message: id}
		},
		func(err error) Reply {
			return Reply{Status: http.StatusBadRequest, Message: err.Error()}
		},
	)
	respond(reply)
}
