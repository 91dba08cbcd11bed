package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceCmd(t *testing.T) {
	cmd := distanceCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"0", "0", "1", "0"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "111194.9\n", out.String())
}

func TestDistanceCmd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "not a number", args: []string{"12.97", "north", "12.98", "77.59"}},
		{name: "too few arguments", args: []string{"12.97", "77.59"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := distanceCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			assert.Error(t, cmd.Execute())
		})
	}
}
