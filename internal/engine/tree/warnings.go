package tree

import (
	"strings"

	"go.trai.ch/localci/internal/core/domain"
)

// Stage names the step of loading the tree that failed.
type Stage int

const (
	// StageNoConfig means no pipeline config was found.
	StageNoConfig Stage = iota
	// StageLicense means the license check failed.
	StageLicense
	// StageContainerRuntime means the container engine is not reachable.
	StageContainerRuntime
	// StageProcessFile means the config could not be compiled or decoded.
	StageProcessFile
)

// WarningNode returns the tree entry explaining a failed load.
func WarningNode(stage Stage, err error) domain.TreeNode {
	node := domain.TreeNode{Kind: domain.NodeWarning}
	switch stage {
	case StageNoConfig:
		node.Label = "No .circleci/config.yml found"
		node.Detail = "Create a .circleci/config.yml in this repository, or pass --config"
	case StageLicense:
		node.Label = "Your license is invalid or the trial has expired"
		node.Detail = "Set LOCALCI_LICENSE to a license key"
	case StageContainerRuntime:
		node.Label = "Error: is Docker running?"
		node.Detail = "Start Docker, then run this command again"
	case StageProcessFile:
		node.Label = "Error processing the CircleCI config"
		if err != nil {
			node.Label += ": " + firstLine(err.Error())
			if isNetworkError(err) {
				node.Detail = "Is your machine connected to the internet?"
			}
		}
	}
	return node
}

func isNetworkError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "timeout")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
