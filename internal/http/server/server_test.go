package server_test

import (
	"net/http"

	"bookshelf/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should listen on the given port", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "3001")
		Expect(srv.Addr()).To(Equal(":3001"))
	})

	It("should report ErrServerClosed after shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")
		errChan := srv.Run()

		Consistently(errChan, "100ms").ShouldNot(Receive())
		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(Equal(http.ErrServerClosed)))
	})
})
