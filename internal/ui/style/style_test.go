package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/ui/style"
)

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, style.Check, style.StatusIcon(domain.JobSucceeded))
	assert.Equal(t, style.Cross, style.StatusIcon(domain.JobFailed))
	assert.Equal(t, style.Running, style.StatusIcon(domain.JobRunning))
	assert.Equal(t, style.Idle, style.StatusIcon(domain.JobIdle))
	assert.Equal(t, style.Idle, style.StatusIcon(""))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, style.Green, style.StatusColor(domain.JobSucceeded))
	assert.Equal(t, style.Red, style.StatusColor(domain.JobFailed))
	assert.Equal(t, style.Muted, style.StatusColor(domain.JobIdle))
}
