package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func decode(w *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}
