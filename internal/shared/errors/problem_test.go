package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON_FlattensExtensions(t *testing.T) {
	problem := ErrConflict.WithDetail("busy").WithCode("ORDER_ALREADY_IN_PROGRESS")

	raw, err := json.Marshal(problem)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, TypeConflict, body["type"])
	require.Equal(t, "Conflict", body["title"])
	require.Equal(t, float64(http.StatusConflict), body["status"])
	require.Equal(t, "busy", body["detail"])
	require.Equal(t, "ORDER_ALREADY_IN_PROGRESS", body["code"])
	require.NotContains(t, body, "instance")
}

func TestWithExtension_LeavesTemplateUntouched(t *testing.T) {
	first := ErrValidation.WithCode("A")
	second := first.WithCode("B")

	require.Nil(t, ErrValidation.Extensions)
	require.Equal(t, "A", first.Extensions["code"])
	require.Equal(t, "B", second.Extensions["code"])
}

func TestChainedResponder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sentinel := fmt.Errorf("sentinel")
	responder := NewChainedResponder("https://pizza.example", func(err error) (ProblemDetail, bool) {
		if err == sentinel {
			return ErrNotFound.WithCode("X"), true
		}
		return ProblemDetail{}, false
	})
	responder.Now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	cases := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{name: "mapped", err: sentinel, status: http.StatusNotFound, typ: "https://pizza.example" + TypeNotFound},
		{name: "problem passthrough", err: ErrConflict, status: http.StatusConflict, typ: "https://pizza.example" + TypeConflict},
		{name: "unknown", err: fmt.Errorf("boom"), status: http.StatusInternalServerError, typ: "https://pizza.example" + TypeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/thing", nil)

			responder.RespondError(c, tc.err)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.typ, body["type"])
			require.Equal(t, "/api/thing", body["instance"])
			require.Equal(t, "2024-01-02T03:04:05Z", body["timestamp"])
		})
	}
}
