package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"bookshelf/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var (
		dv      payload.DecodeValidator
		body    string
		request payload.GraphQLRequest
		err     error
	)

	JustBeforeEach(func() {
		request = payload.GraphQLRequest{}
		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
		err = dv.DecodeAndValidateJSONPayload(httptest.NewRecorder(), req, &request)
	})

	When("the body is a valid GraphQL request", func() {
		BeforeEach(func() {
			body = `{"query":"query Me { me { id } }","operationName":"Me","variables":{"a":1}}`
		})

		It("should decode every field", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Query).To(ContainSubstring("me"))
			Expect(request.OperationName).To(Equal("Me"))
			Expect(request.Variables).To(HaveKeyWithValue("a", BeNumerically("==", 1)))
		})
	})

	When("the query is missing", func() {
		BeforeEach(func() {
			body = `{"variables":{}}`
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})
	})

	When("the body has unknown fields", func() {
		BeforeEach(func() {
			body = `{"query":"{ me { id } }","extra":true}`
		})

		It("should fail decoding", func() {
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})

	When("the body is not JSON", func() {
		BeforeEach(func() {
			body = `query { me { id } }`
		})

		It("should fail decoding", func() {
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})
})
