package jsonplaceholder_test

import (
	"context"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/phrazzld/api-wrapper/internal/config"
	"github.com/phrazzld/api-wrapper/internal/platform/jsonplaceholder"
	"github.com/phrazzld/api-wrapper/internal/testutils"
)

var _ = Describe("Client lifecycle", func() {
	var (
		upstream *testutils.FakeUpstream
		client   *jsonplaceholder.Client
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		upstream = testutils.NewFakeUpstream(GinkgoT())

		var err error
		client, err = jsonplaceholder.NewClient(
			config.UpstreamConfig{BaseURL: upstream.URL(), TimeoutSeconds: 10},
			slog.New(slog.NewTextHandler(io.Discard, nil)),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewClient", func() {
		It("should not contact the upstream", func() {
			Expect(upstream.RequestCount()).To(Equal(0))
		})
	})

	Describe("Close", func() {
		It("should succeed the first time", func() {
			Expect(client.Close()).To(Succeed())
		})

		It("should report ErrClientClosed when called again", func() {
			Expect(client.Close()).To(Succeed())
			Expect(client.Close()).To(MatchError(jsonplaceholder.ErrClientClosed))
		})
	})

	Describe("fetching after Close", func() {
		BeforeEach(func() {
			Expect(client.Close()).To(Succeed())
		})

		It("should reject FetchPosts without an upstream call", func() {
			posts, err := client.FetchPosts(ctx)
			Expect(err).To(MatchError(jsonplaceholder.ErrClientClosed))
			Expect(posts).To(BeNil())
			Expect(upstream.RequestCount()).To(Equal(0))
		})

		It("should reject FetchPost without an upstream call", func() {
			_, err := client.FetchPost(ctx, 1)
			Expect(err).To(MatchError(jsonplaceholder.ErrClientClosed))
			Expect(upstream.RequestCount()).To(Equal(0))
		})

		It("should reject FetchUserPosts without an upstream call", func() {
			_, err := client.FetchUserPosts(ctx, 1)
			Expect(err).To(MatchError(jsonplaceholder.ErrClientClosed))
			Expect(upstream.RequestCount()).To(Equal(0))
		})
	})

	Describe("fetching while open", func() {
		AfterEach(func() {
			Expect(client.Close()).To(Succeed())
		})

		It("should issue exactly one upstream call per operation", func() {
			_, err := client.FetchPosts(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = client.FetchPost(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			_, err = client.FetchUserPosts(ctx, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(upstream.Requests()).To(Equal([]string{"/posts", "/posts/1", "/posts?userId=2"}))
		})
	})
})
