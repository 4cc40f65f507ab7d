package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bookshelf/internal/http/payload"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"go.uber.org/zap"
)

var (
	GraphQL = "/graphql"
	Health  = "/health"
)

type GraphQLHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	executor         GraphQLExecutor
}

func NewGraphQLHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, executor GraphQLExecutor) *GraphQLHandler {
	return &GraphQLHandler{
		logs:             logger,
		requestValidator: requestValidator,
		executor:         executor,
	}
}

func (h *GraphQLHandler) HandleGraphQL(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetReqID(r.Context())

	var req payload.GraphQLRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(w, r, &req); err != nil {
		h.respond(w, &graphql.Response{
			Errors: []*gqlerrors.QueryError{{
				Message:    fmt.Errorf("invalid request payload: %w", err).Error(),
				Extensions: map[string]interface{}{"code": codeBadRequest},
			}},
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", GraphQL,
			"request_id", requestId)
		return
	}

	resp := h.executor.Exec(r.Context(), req.Query, req.OperationName, req.Variables)

	for _, qErr := range resp.Errors {
		classify(qErr)
		h.logs.Infow("graphql error",
			"message", qErr.Message,
			"code", qErr.Extensions["code"],
			"path", qErr.Path,
			"operation", req.OperationName,
			"request_id", requestId)
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *GraphQLHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// classify gives qErr an extensions code when the resolver did not set one. Errors
// without a path come from parsing or validation. The rest are unexpected resolver
// failures and lose their message.
func classify(qErr *gqlerrors.QueryError) {
	if _, ok := qErr.Extensions["code"]; ok {
		return
	}
	if qErr.Extensions == nil {
		qErr.Extensions = map[string]interface{}{}
	}

	if qErr.ResolverError == nil && len(qErr.Path) == 0 {
		qErr.Extensions["code"] = codeValidationFailed
		return
	}

	qErr.Message = internalErrMessage
	qErr.Extensions["code"] = codeInternal
}

func (h *GraphQLHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
