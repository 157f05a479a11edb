package wireschema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstlang/sst/wireschema"
)

func TestDocSchema_Marshals(t *testing.T) {
	t.Parallel()

	s := wireschema.DocSchema()
	assert.Equal(t, "array", s.Type)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"array"`)
}

func TestInstanceSchema_Marshals(t *testing.T) {
	t.Parallel()

	s := wireschema.InstanceSchema()
	require.Len(t, s.OneOf, 6)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "element")
}
