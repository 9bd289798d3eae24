package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRestContract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Contract Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).ToNot(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should describe every mounted route", func() {
		for _, path := range []string{
			"/ping",
			"/health",
			"/auth/login",
			"/users/me",
			"/users",
			"/users/{id}",
			"/access-requests",
			"/access-requests/{id}/approve",
			"/access-requests/{id}/reject",
			"/projects",
			"/projects/draft",
			"/projects/{id}",
			"/projects/{id}/close",
			"/projects/{id}/document",
			"/requests",
			"/requests/pending",
			"/requests/{id}/approve",
			"/requests/{id}/reject",
			"/requests/{id}/complete",
			"/requests/{id}/document",
		} {
			Expect(doc.Paths.Find(path)).ToNot(BeNil(), "missing path %s", path)
		}
	})

	It("should enumerate the workflow statuses on the request schema", func() {
		schema := doc.Components.Schemas["ExpenseRequest"]
		Expect(schema).ToNot(BeNil())

		statuses := schema.Value.Properties["status"].Value.Enum
		Expect(statuses).To(ContainElements(
			"pending_head", "pending_finance", "pending_director",
			"approved", "rejected", "completed",
		))
	})
})
