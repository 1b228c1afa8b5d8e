package webreq

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleBody(t *testing.T, body string) Reply {
	t.Helper()

	var got Reply
	calls := 0
	Handle(strings.NewReader(body), func(r Reply) {
		calls++
		got = r
	})
	require.Equal(t, 1, calls, "respond must be invoked exactly once")
	return got
}

func TestHandle_ValidBodyWithID(t *testing.T) {
	t.Parallel()

	reply := handleBody(t, `{"id": "123"}`)
	assert.Equal(t, 200, reply.Status)
	assert.Equal(t, "123", reply.Message)
}

func TestHandle_MissingID(t *testing.T) {
	t.Parallel()

	reply := handleBody(t, `{}`)
	assert.Equal(t, 400, reply.Status)
	assert.Equal(t, "No id found", reply.Message)
}

func TestHandle_MalformedJSON(t *testing.T) {
	t.Parallel()

	// the reply carries the native parser's own syntax-error text
	var m map[string]any
	native := json.Unmarshal([]byte("invalid json"), &m)
	require.Error(t, native)

	reply := handleBody(t, "invalid json")
	assert.Equal(t, 400, reply.Status)
	assert.Equal(t, native.Error(), reply.Message)
}

func TestHandle_NonObjectBody(t *testing.T) {
	t.Parallel()

	reply := handleBody(t, `[1, 2, 3]`)
	assert.Equal(t, 400, reply.Status)
	assert.Equal(t, ErrNotObject.Error(), reply.Message)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("read: device gone")
}

func TestHandle_ReaderFailurePropagatesAsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Handle(brokenReader{}, func(Reply) {})
	})
}

func TestParse_AnticipatedFailuresOnly(t *testing.T) {
	t.Parallel()

	ok := ParseBody(`{"id": "a"}`)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, "a", ok.Value()["id"])

	syntax := ParseBody(`{"id": `)
	require.True(t, syntax.IsFailure())
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, syntax.Failure(), &syntaxErr)

	scalar := ParseBody(`"just a string"`)
	require.True(t, scalar.IsFailure())
	assert.Equal(t, ErrNotObject, scalar.Failure())

	// a JSON null decodes to a nil object, which is an id problem,
	// not a parse problem
	null := ParseBody(`null`)
	require.True(t, null.IsSuccess())
	assert.Nil(t, null.Value())
}

func TestRequireID_FalsyValues(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]map[string]any{
		"absent": {},
		"null":   {"id": nil},
		"empty":  {"id": ""},
		"false":  {"id": false},
		"zero":   {"id": float64(0)},
	} {
		out := RequireID(body)
		require.True(t, out.IsFailure(), "case %q", name)
		assert.Equal(t, ErrNoID, out.Failure(), "case %q", name)
	}
}

func TestRequireID_NonStringValuesAreFormatted(t *testing.T) {
	t.Parallel()

	out := RequireID(map[string]any{"id": float64(42)})
	require.True(t, out.IsSuccess())
	assert.Equal(t, "42", out.Value())

	out = RequireID(map[string]any{"id": true})
	require.True(t, out.IsSuccess())
	assert.Equal(t, "true", out.Value())
}
