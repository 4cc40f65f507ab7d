package handler

import (
	"context"
	"net/http"

	"github.com/graph-gophers/graphql-go"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(w http.ResponseWriter, r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name GraphQLExecutor . GraphQLExecutor
type GraphQLExecutor interface {
	Exec(ctx context.Context, queryString string, operationName string, variables map[string]interface{}) *graphql.Response
}
