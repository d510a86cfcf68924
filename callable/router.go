package callable

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Kotlang/accountGo/auth"
	"github.com/Kotlang/accountGo/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const executionIdHeader = "Function-Execution-Id"

// Function is the body of a callable. data is the request's "data" object, or
// nil when the client sent something other than an object.
type Function func(ctx context.Context, caller *auth.Caller, data map[string]interface{}) (interface{}, error)

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewRouter serves each function at POST /<name> using the callable protocol:
// the request body is {"data": ...}, a success is {"result": ...} and a
// failure is {"error": {"status": ..., "message": ...}}.
func NewRouter(verifier auth.TokenVerifier, functions map[string]Function) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
		ExposeHeaders:   []string{executionIdHeader},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for name, fn := range functions {
		router.Any("/"+name, handle(verifier, name, fn))
	}

	return router
}

func handle(verifier auth.TokenVerifier, name string, fn Function) gin.HandlerFunc {
	return func(c *gin.Context) {
		executionId := uuid.NewString()
		c.Header(executionIdHeader, executionId)
		log := []zap.Field{zap.String("function", name), zap.String("executionId", executionId)}

		data, err := decodeRequest(c)
		if err != nil {
			logger.Error("Invalid request", append(log, zap.Error(err))...)
			abort(c, status.Error(codes.InvalidArgument, "Bad Request"))
			return
		}

		caller, err := callerFromHeader(c, verifier)
		if err != nil {
			logger.Error("Failed validating token", append(log, zap.Error(err))...)
			abort(c, status.Error(codes.Unauthenticated, "Bad authorization string"))
			return
		}

		result, err := fn(c.Request.Context(), caller, data)
		if err != nil {
			logger.Info("Function failed", append(log, zap.String("code", ClientCode(status.Code(err))))...)
			abort(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": result})
	}
}

func decodeRequest(c *gin.Context) (map[string]interface{}, error) {
	if c.Request.Method != http.MethodPost {
		return nil, errBadRequest("method " + c.Request.Method + " not allowed")
	}
	if c.ContentType() != "application/json" {
		return nil, errBadRequest("content type must be application/json")
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		return nil, err
	}

	raw, ok := body["data"]
	if !ok {
		return nil, errBadRequest("request body is missing data")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		// Not an object; validation in the function reports what is missing.
		return nil, nil
	}
	return data, nil
}

// callerFromHeader returns a nil caller when no credential was sent.
func callerFromHeader(c *gin.Context, verifier auth.TokenVerifier) (*auth.Caller, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, nil
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return nil, auth.ErrInvalidToken
	}

	return verifier.Verify(c.Request.Context(), token)
}

func abort(c *gin.Context, err error) {
	st := status.Convert(err)
	c.AbortWithStatusJSON(HTTPStatus(st.Code()), gin.H{
		"error": errorBody{
			Status:  WireStatus(st.Code()),
			Message: st.Message(),
		},
	})
}

type errBadRequest string

func (e errBadRequest) Error() string {
	return string(e)
}
