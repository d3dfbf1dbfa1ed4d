package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil pipeline factory returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingPipelineFactory)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		factory, _ := mockFactory(&mockPipeline{}, nil)
		ports := &Ports{NewPipeline: factory}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil pipeline factory returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingPipelineFactory)
	})

	t.Run("pipeline factory is valid", func(t *testing.T) {
		factory, _ := mockFactory(&mockPipeline{}, nil)
		ports := &Ports{NewPipeline: factory}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
