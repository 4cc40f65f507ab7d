// Package graph binds the bookshelf operations to the GraphQL schema.
package graph

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 10

// NewSchema parses the embedded SDL and binds it to svc.
func NewSchema(logger *zap.SugaredLogger, svc Service) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(schemaSDL, NewResolver(logger, svc),
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(panicLogger{logs: logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}

type panicLogger struct {
	logs *zap.SugaredLogger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logs.Errorw("graphql resolver panicked", "panic", value)
}
