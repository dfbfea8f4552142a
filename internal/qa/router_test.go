package qa_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"qahub/internal/common/http/middleware"
	"qahub/internal/qa"
	"qahub/internal/qa/model"
	"qahub/internal/qa/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func questionsN(n int) []model.Question {
	out := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("q%02d", i)
		out = append(out, model.Question{ID: model.QuestionID(id), Title: "title " + id, Content: "content " + id})
	}
	return out
}

func newRouter(questions []model.Question) (*gin.Engine, *repository.Store) {
	store := repository.NewStore(repository.WithQuestions(questions))
	return qa.NewRouter(qa.RouterConfig{CORS: middleware.DefaultCORSConfig()}, store), store
}

func serve(router http.Handler, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeQuestions(t *testing.T, w *httptest.ResponseRecorder) []model.Question {
	t.Helper()
	var out []model.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestListQuestions(t *testing.T) {
	t.Run("all without params", func(t *testing.T) {
		router, _ := newRouter(questionsN(3))
		w := serve(router, http.MethodGet, "/questions", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, questionsN(3), decodeQuestions(t, w))
	})

	t.Run("inverted range is swapped", func(t *testing.T) {
		router, _ := newRouter(questionsN(10))
		w := serve(router, http.MethodGet, "/questions?start=5&end=2", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, questionsN(10)[2:5], decodeQuestions(t, w))
	})

	t.Run("end is clamped to length", func(t *testing.T) {
		router, _ := newRouter(questionsN(4))
		w := serve(router, http.MethodGet, "/questions?start=0&end=100", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, questionsN(4), decodeQuestions(t, w))
	})

	t.Run("plus-prefixed bounds", func(t *testing.T) {
		router, _ := newRouter(questionsN(4))
		w := serve(router, http.MethodGet, "/questions?start=%2B1&end=3", "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, questionsN(4)[1:3], decodeQuestions(t, w))
	})

	t.Run("empty store is an empty array", func(t *testing.T) {
		router, _ := newRouter(nil)
		w := serve(router, http.MethodGet, "/questions", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestListQuestionsRejectsBadRange(t *testing.T) {
	router, _ := newRouter(questionsN(4))

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"missing end", "/questions?start=1", "Missing parameter"},
		{"parse failure", "/questions?start=abc&end=2", `Cannot parse parameter: strconv.ParseUint: parsing "abc": invalid syntax`},
		{"negative number", "/questions?start=-1&end=2", `Cannot parse parameter: strconv.ParseUint: parsing "-1": invalid syntax`},
		{"start past length", "/questions?start=6&end=8", "Range not satisfiable: start 6 end 4 length 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, tt.target, "", nil)
			assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestGetQuestion(t *testing.T) {
	router, _ := newRouter(questionsN(2))

	w := serve(router, http.MethodGet, "/questions/q01", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, questionsN(2)[1], got)

	w = serve(router, http.MethodGet, "/questions/never-inserted", "", nil)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
	assert.Equal(t, "Question not found", w.Body.String())
}

func TestAddQuestion(t *testing.T) {
	router, store := newRouter(nil)

	body := `{"id":"7","title":"Why Go?","content":"Asking for a friend","tags":["go","lang"]}`
	w := serve(router, http.MethodPost, "/questions", body, jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Question added", w.Body.String())

	w = serve(router, http.MethodGet, "/questions/7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
	assert.Equal(t, 1, store.Questions().Len())
}

func TestAddQuestionMalformedBody(t *testing.T) {
	router, store := newRouter(nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"id": `},
		{"missing title", `{"id":"1","content":"c"}`},
		{"wrong type", `{"id":1,"title":"t","content":"c"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodPost, "/questions", tt.body, jsonHeaders)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.True(t, strings.HasPrefix(w.Body.String(), "Request body deserialize error: "), w.Body.String())
		})
	}
	assert.Equal(t, 0, store.Questions().Len())
}

func TestAddQuestionAcceptsEmptyStrings(t *testing.T) {
	router, _ := newRouter(nil)

	body := `{"id":"a","title":"","content":""}`
	w := serve(router, http.MethodPost, "/questions", body, jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Question added", w.Body.String())

	w = serve(router, http.MethodGet, "/questions/a", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}

func TestAddQuestionBlankIDIsRejected(t *testing.T) {
	router, store := newRouter(nil)

	w := serve(router, http.MethodPost, "/questions", `{"id":"","title":"t","content":"c"}`, jsonHeaders)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
	assert.Equal(t, "No id provided", w.Body.String())
	assert.Equal(t, 0, store.Questions().Len())
}

func TestUpdateQuestionBodyPresence(t *testing.T) {
	router, _ := newRouter(questionsN(1))

	w := serve(router, http.MethodPut, "/questions/q00", `{"id":"q00","title":"t","content":""}`, jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Question updated", w.Body.String())

	w = serve(router, http.MethodPut, "/questions/q00", `{"id":"q00","title":"t"}`, jsonHeaders)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Content")

	w = serve(router, http.MethodGet, "/questions/q00", "", nil)
	assert.JSONEq(t, `{"id":"q00","title":"t","content":""}`, w.Body.String())
}

func TestUpdateQuestion(t *testing.T) {
	router, _ := newRouter(questionsN(1))

	body := `{"id":"q00","title":"edited","content":"edited content"}`
	w := serve(router, http.MethodPut, "/questions/q00", body, jsonHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Question updated", w.Body.String())

	w = serve(router, http.MethodGet, "/questions/q00", "", nil)
	assert.JSONEq(t, body, w.Body.String())
}

func TestUpdateUnknownQuestionLeavesStoreUnchanged(t *testing.T) {
	router, _ := newRouter(questionsN(2))
	before := serve(router, http.MethodGet, "/questions", "", nil).Body.String()

	body := `{"id":"never-inserted","title":"t","content":"c"}`
	w := serve(router, http.MethodPut, "/questions/never-inserted", body, jsonHeaders)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
	assert.Equal(t, "Question not found", w.Body.String())

	after := serve(router, http.MethodGet, "/questions", "", nil).Body.String()
	assert.JSONEq(t, before, after)
}

func TestDeleteQuestion(t *testing.T) {
	router, store := newRouter(questionsN(2))

	w := serve(router, http.MethodDelete, "/questions/q00", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Question deleted", w.Body.String())
	assert.Equal(t, 1, store.Questions().Len())

	w = serve(router, http.MethodDelete, "/questions/q00", "", nil)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
	assert.Equal(t, 1, store.Questions().Len())
}

func TestAddAnswer(t *testing.T) {
	router, store := newRouter(nil)
	formHeaders := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

	form := url.Values{"id": {"1"}, "content": {"Because"}, "questionId": {"7"}}
	w := serve(router, http.MethodPost, "/answers", form.Encode(), formHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Answer added", w.Body.String())
	assert.Equal(t, 1, store.Answers().Len())

	form.Del("content")
	w = serve(router, http.MethodPost, "/answers", form.Encode(), formHeaders)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, w.Code)
	assert.Equal(t, "Missing required field: content", w.Body.String())
	assert.Equal(t, 1, store.Answers().Len())
}

func TestUnknownRouteAndMethod(t *testing.T) {
	router, _ := newRouter(nil)

	w := serve(router, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", w.Body.String())

	w = serve(router, http.MethodPatch, "/questions", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newRouter(nil)

	w := serve(router, http.MethodOptions, "/questions/1", "", map[string]string{
		"Origin":                         "http://example.com",
		"Access-Control-Request-Method":  "PUT",
		"Access-Control-Request-Headers": "Content-Type",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS, PUT, DELETE", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "content-type", w.Header().Get("Access-Control-Allow-Headers"))

	w = serve(router, http.MethodOptions, "/questions", "", map[string]string{
		"Origin":                        "http://example.com",
		"Access-Control-Request-Method": "PATCH",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "CORS request forbidden: request-method not allowed", w.Body.String())
}

func TestResponsesCarryTraceHeaders(t *testing.T) {
	router, _ := newRouter(nil)

	w := serve(router, http.MethodGet, "/questions", "", map[string]string{middleware.TraceIDHeader: "trace-1"})
	assert.Equal(t, "trace-1", w.Header().Get(middleware.TraceIDHeader))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
