package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	_ "go.trai.ch/localci/internal/wiring"
)

// Every graft node must read exactly the nodes it lists in DependsOn.
func TestNodeDependenciesMatchUsage(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}
