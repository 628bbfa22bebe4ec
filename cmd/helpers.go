package cmd

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/notesmgr/notectx/internal/assemble"
	"github.com/notesmgr/notectx/internal/budget"
	cfgpkg "github.com/notesmgr/notectx/internal/config"
	"github.com/notesmgr/notectx/internal/graph"
	"github.com/notesmgr/notectx/internal/store"
)

// activeConfig returns the loaded configuration, or built-in defaults
// when config loading failed earlier.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		ProjectRoot:        ".",
		ContextDir:         "context",
		ProjectName:        assemble.DefaultProjectName,
		DefaultDetail:      string(budget.DetailStandard),
		DefaultMaxTokens:   8000,
		GraphBackend:       graph.BackendStub,
		PromotionThreshold: graph.DefaultPromotionThreshold,
	}
}

// buildStore opens the document store rooted at the configured project.
// Commands always run against the real filesystem.
func buildStore() *store.Store {
	c := activeConfig()
	return store.New(afero.NewOsFs(), c.ProjectRoot, c.ContextDir)
}

// buildAssembler wires an assembler over the configured store.
func buildAssembler() *assemble.Assembler {
	c := activeConfig()
	return assemble.New(assemble.Options{
		Store:       buildStore(),
		ProjectName: c.ProjectName,
	})
}

// buildGraphService resolves the configured knowledge-graph backend.
func buildGraphService() (graph.Service, error) {
	c := activeConfig()
	svc, ok := graph.New(c.GraphBackend, graph.Config{
		EntityTypes:       c.EntityTypes,
		RelationshipTypes: c.RelationshipTypes,
	})
	if !ok {
		return nil, fmt.Errorf("unknown graph backend: %s", c.GraphBackend)
	}
	return svc, nil
}

// parseDetail validates a detail level flag value.
func parseDetail(s string) (budget.DetailLevel, error) {
	switch budget.DetailLevel(s) {
	case budget.DetailMinimal, budget.DetailStandard, budget.DetailComprehensive:
		return budget.DetailLevel(s), nil
	}
	return "", fmt.Errorf("invalid detail level %q (use minimal, standard, or comprehensive)", s)
}

// parseLevel validates a hierarchy level flag value.
func parseLevel(s string) (store.HierarchyLevel, error) {
	for _, level := range store.Levels() {
		if string(level) == s {
			return level, nil
		}
	}
	return "", fmt.Errorf("invalid hierarchy level %q (use summary, standard, or detailed)", s)
}
