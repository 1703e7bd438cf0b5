package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/c360/semports/errors"
	"github.com/c360/semports/types"
)

func TestNodeStatus_NamesRoundTrip(t *testing.T) {
	statuses := []types.NodeStatus{
		types.NodeStatusIdle,
		types.NodeStatusRunning,
		types.NodeStatusSuccess,
		types.NodeStatusFailure,
		types.NodeStatusSkipped,
	}

	for _, status := range statuses {
		t.Run(status.String(), func(t *testing.T) {
			parsed, err := types.ParseNodeStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}
}

func TestParseNodeStatus_Rejects(t *testing.T) {
	for _, text := range []string{"success", "Success", "", "DONE", " SUCCESS"} {
		t.Run(text, func(t *testing.T) {
			_, err := types.ParseNodeStatus(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, pkgerrors.ErrConversion)
			assert.True(t, pkgerrors.IsInvalid(err))
		})
	}
}

func TestNodeStatus_Predicates(t *testing.T) {
	tests := []struct {
		status    types.NodeStatus
		active    bool
		completed bool
	}{
		{types.NodeStatusIdle, false, false},
		{types.NodeStatusRunning, true, false},
		{types.NodeStatusSuccess, true, true},
		{types.NodeStatusFailure, true, true},
		{types.NodeStatusSkipped, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.active, tt.status.IsActive())
			assert.Equal(t, tt.completed, tt.status.IsCompleted())
		})
	}
}

func TestNodeStatus_ColorString(t *testing.T) {
	assert.Equal(t, "\x1b[32mSUCCESS\x1b[0m", types.NodeStatusSuccess.ColorString())
	assert.Equal(t, "\x1b[31mFAILURE\x1b[0m", types.NodeStatusFailure.ColorString())
	assert.Equal(t, "NodeStatus(42)", types.NodeStatus(42).ColorString())
}

func TestNodeType_Parse(t *testing.T) {
	tests := []struct {
		text    string
		want    types.NodeType
		wantErr bool
	}{
		{"ACTION", types.NodeTypeAction, false},
		{"CONDITION", types.NodeTypeCondition, false},
		{"CONTROL", types.NodeTypeControl, false},
		{"DECORATOR", types.NodeTypeDecorator, false},
		{"SUBTREE", types.NodeTypeSubtree, false},
		{"UNDEFINED", types.NodeTypeUndefined, false},
		{"Action", 0, true},
		{"SubTree", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := types.ParseNodeType(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, pkgerrors.ErrConversion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeType_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]types.NodeType{"type": types.NodeTypeDecorator})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"DECORATOR"}`, string(data))

	var decoded map[string]types.NodeType
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, types.NodeTypeDecorator, decoded["type"])

	err = json.Unmarshal([]byte(`{"type":"decorator"}`), &decoded)
	assert.Error(t, err)
}

func TestNodeType_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "NodeType(-1)", types.NodeType(-1).String())
}

func TestNodeType_IsValid(t *testing.T) {
	assert.True(t, types.NodeTypeUndefined.IsValid())
	assert.True(t, types.NodeTypeSubtree.IsValid())
	assert.False(t, types.NodeType(-1).IsValid())
	assert.False(t, types.NodeType(6).IsValid())
}
