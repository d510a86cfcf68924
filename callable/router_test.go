package callable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kotlang/accountGo/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testSecret = "secret"

type response struct {
	Result map[string]interface{} `json:"result"`
	Error  *errorBody             `json:"error"`
}

// echo returns the caller and data it received, or fails when data says so.
func echo(ctx context.Context, caller *auth.Caller, data map[string]interface{}) (interface{}, error) {
	if code, ok := data["fail"].(string); ok {
		switch code {
		case "internal":
			return nil, status.Error(codes.Internal, "Error deleting user: boom")
		case "plain":
			return nil, assert.AnError
		}
	}

	callerId := ""
	if caller != nil {
		callerId = caller.UserId
	}
	return gin.H{"callerId": callerId, "data": data}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(auth.NewJwtVerifier(testSecret), map[string]Function{"echo": echo})
}

func do(t *testing.T, router http.Handler, method, body, authorization string) (*httptest.ResponseRecorder, response) {
	t.Helper()

	req := httptest.NewRequest(method, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestRouter_Success(t *testing.T) {
	router := newTestRouter()
	token := auth.GetToken(testSecret, "user-1", "admin")

	rec, res := do(t, router, http.MethodPost, `{"data":{"userId":"abc"}}`, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(executionIdHeader))
	assert.Nil(t, res.Error)
	assert.Equal(t, "user-1", res.Result["callerId"])
	assert.Equal(t, map[string]interface{}{"userId": "abc"}, res.Result["data"])
}

func TestRouter_NoCredential(t *testing.T) {
	rec, res := do(t, newTestRouter(), http.MethodPost, `{"data":{"userId":"abc"}}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", res.Result["callerId"])
}

func TestRouter_Errors(t *testing.T) {
	var testCases = []struct {
		desc           string
		method         string
		body           string
		authorization  string
		expectedStatus int
		expectedError  errorBody
	}{
		{
			desc:           "Non-POST method",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  errorBody{Status: "INVALID_ARGUMENT", Message: "Bad Request"},
		},
		{
			desc:           "Malformed body",
			method:         http.MethodPost,
			body:           `{"data":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  errorBody{Status: "INVALID_ARGUMENT", Message: "Bad Request"},
		},
		{
			desc:           "Missing data field",
			method:         http.MethodPost,
			body:           `{"userId":"abc"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  errorBody{Status: "INVALID_ARGUMENT", Message: "Bad Request"},
		},
		{
			desc:           "Invalid token",
			method:         http.MethodPost,
			body:           `{"data":{}}`,
			authorization:  "Bearer " + auth.GetToken("other", "user-1", "admin"),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  errorBody{Status: "UNAUTHENTICATED", Message: "Bad authorization string"},
		},
		{
			desc:           "Wrong scheme",
			method:         http.MethodPost,
			body:           `{"data":{}}`,
			authorization:  "Basic abc",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  errorBody{Status: "UNAUTHENTICATED", Message: "Bad authorization string"},
		},
		{
			desc:           "Function returns status error",
			method:         http.MethodPost,
			body:           `{"data":{"fail":"internal"}}`,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  errorBody{Status: "INTERNAL", Message: "Error deleting user: boom"},
		},
		{
			desc:           "Function returns plain error",
			method:         http.MethodPost,
			body:           `{"data":{"fail":"plain"}}`,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  errorBody{Status: "INTERNAL", Message: assert.AnError.Error()},
		},
	}

	for _, testData := range testCases {
		t.Run(testData.desc, func(t *testing.T) {
			rec, res := do(t, newTestRouter(), testData.method, testData.body, testData.authorization)

			assert.Equal(t, testData.expectedStatus, rec.Code)
			require.NotNil(t, res.Error)
			assert.Equal(t, testData.expectedError, *res.Error)
			assert.Nil(t, res.Result)
		})
	}
}

func TestRouter_NonObjectData(t *testing.T) {
	rec, res := do(t, newTestRouter(), http.MethodPost, `{"data":"abc"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, res.Result["data"])
}

func TestRouter_Healthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(codes.Unauthenticated))
	assert.Equal(t, "invalid-argument", ClientCode(codes.InvalidArgument))
	assert.Equal(t, "INTERNAL", WireStatus(codes.Internal))
	assert.Equal(t, "INTERNAL", WireStatus(codes.Unknown))
}
