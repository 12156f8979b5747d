// Package testutils provides testing utilities for the API wrapper.
//
// This package contains helpers for:
//  1. Running a fake upstream posts API backed by httptest
//  2. Executing requests against test servers
//  3. Asserting JSON and error responses
//
// # Fake Upstream
//
//	// Serve the default dataset (posts 1-3, users 1 and 2):
//	upstream := testutils.NewFakeUpstream(t)
//
//	// Force every request to fail with a status code:
//	upstream.FailWith(http.StatusBadGateway)
//
//	// Inspect what the client sent:
//	count := upstream.RequestCount()
//
// # Request Execution and Assertions
//
//	resp := testutils.Get(t, server.URL+"/v1/posts/1")
//	testutils.AssertDetailResponse(t, resp, http.StatusNotFound, "Post not found")
package testutils
