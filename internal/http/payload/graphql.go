package payload

import (
	"github.com/jellydator/validation"
)

// GraphQLRequest is the standard GraphQL-over-HTTP POST body.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (g *GraphQLRequest) Validate() error {
	return validation.ValidateStruct(g,
		validation.Field(&g.Query, validation.Required),
	)
}
