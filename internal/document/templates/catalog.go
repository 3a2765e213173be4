// Package templates declares the document templates known to the service
// and their external template ids per deployment environment.
package templates

import (
	"fmt"
	"sort"

	"document-workers/internal/document/builders"
	"document-workers/internal/document/tabs"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvDemo        = "demo"
	EnvProduction  = "production"
)

var Environments = []string{EnvDevelopment, EnvStaging, EnvDemo, EnvProduction}

// Declarative pairs a descriptor with its template id in each environment.
type Declarative struct {
	Descriptor  *tabs.Descriptor
	TemplateIDs map[string]string
}

// Imperative pairs a builder with its template id in each environment.
type Imperative struct {
	Builder     *builders.Builder
	TemplateIDs map[string]string
}

var declaratives = []Declarative{
	{
		Descriptor: gridServicesAgreement,
		TemplateIDs: map[string]string{
			EnvDevelopment: "4b1f6c2e-91d3-4a57-8f0e-3c2d7a9e1b01",
			EnvStaging:     "7d0a2e51-3c84-49b6-a1f2-6e9b0c4d2a17",
			EnvDemo:        "a3c95e08-5b21-4f7d-9e64-1d8f2b7c3e22",
			EnvProduction:  "e6f2b9d4-8a13-4c5e-b7d0-9f1a3c6e5d38",
		},
	},
	{
		Descriptor: participationSgipHic,
		TemplateIDs: map[string]string{
			EnvDevelopment: "0c7e3a9f-2d5b-4e81-96a4-b3f1d8c2e704",
			EnvStaging:     "2f9b6d13-7e4a-4c08-8b5d-e1a7c3f9b615",
			EnvDemo:        "5a1d8e27-9c6f-4b3a-a2e0-d4b8f6c1a926",
			EnvProduction:  "8e4c1b36-0f7d-4a92-b5e3-c6a9d2f8e437",
		},
	},
	{
		Descriptor: utilityBillAuthorization,
		TemplateIDs: map[string]string{
			EnvDevelopment: "1d6a9f42-4e3b-4c7d-8a15-f2c8b0e6d948",
			EnvStaging:     "3b8e2c57-6a1f-4d94-9c2e-a5d7f1b3c859",
			EnvDemo:        "6c0f4d68-8b2a-4e15-a3d6-b9e1c7f5a06a",
			EnvProduction:  "9f2d7e79-1c4b-4a36-b8f7-d0c3a6e2b17b",
		},
	},
	{
		Descriptor: financingDisclosure,
		TemplateIDs: map[string]string{
			EnvDevelopment: "b27e5a80-3f9c-4d61-9e4a-c8f2d1b7e38c",
			EnvStaging:     "c48a1f91-5d2e-4b73-a6c8-e3b9f0d2c49d",
			EnvDemo:        "d69c3b02-7e4f-4c85-b1d9-f4a0e2c3d5ae",
			EnvProduction:  "f80e5d13-9a6b-4e97-82fa-a5c1f3e4b6bf",
		},
	},
}

var imperatives = []Imperative{
	{
		Builder: homeImprovementContract,
		TemplateIDs: map[string]string{
			EnvDevelopment: "12ab34cd-56ef-4a78-9b01-c2d3e4f5a6c0",
			EnvStaging:     "23bc45de-67fa-4b89-8c12-d3e4f5a6b7d1",
			EnvDemo:        "34cd56ef-78ab-4c90-9d23-e4f5a6b7c8e2",
			EnvProduction:  "45de67fa-89bc-4da1-8e34-f5a6b7c8d9f3",
		},
	},
	{
		Builder: changeOrder,
		TemplateIDs: map[string]string{
			EnvDevelopment: "56ef78ab-9acd-4eb2-9f45-a6b7c8d9e004",
			EnvStaging:     "67fa89bc-abde-4fc3-8a56-b7c8d9e0f115",
			EnvDemo:        "78ab9acd-bcef-40d4-9b67-c8d9e0f1a226",
			EnvProduction:  "89bcabde-cdfa-41e5-8c78-d9e0f1a2b337",
		},
	},
}

func Declaratives() []Declarative { return declaratives }

func Imperatives() []Imperative { return imperatives }

// Load registers every catalog entry. An error means the catalog itself is
// inconsistent and the process should not start.
func Load(descriptors *tabs.Registry, builderRegistry *builders.Registry) error {
	for _, d := range declaratives {
		for _, env := range sortedEnvs(d.TemplateIDs) {
			key := tabs.TemplateKey{Environment: env, TemplateID: d.TemplateIDs[env]}
			if err := descriptors.Register(key, d.Descriptor); err != nil {
				return fmt.Errorf("register %s: %w", d.Descriptor.Name, err)
			}
		}
	}
	for _, im := range imperatives {
		for _, env := range sortedEnvs(im.TemplateIDs) {
			if err := builderRegistry.Register(im.TemplateIDs[env], im.Builder); err != nil {
				return fmt.Errorf("register %s: %w", im.Builder.Name, err)
			}
		}
	}
	return nil
}

// TemplateID returns the external id of the named template in env.
func TemplateID(name, env string) (string, bool) {
	for _, d := range declaratives {
		if d.Descriptor.Name == name {
			id, ok := d.TemplateIDs[env]
			return id, ok
		}
	}
	for _, im := range imperatives {
		if im.Builder.Name == name {
			id, ok := im.TemplateIDs[env]
			return id, ok
		}
	}
	return "", false
}

func sortedEnvs(ids map[string]string) []string {
	envs := make([]string, 0, len(ids))
	for env := range ids {
		envs = append(envs, env)
	}
	sort.Strings(envs)
	return envs
}
