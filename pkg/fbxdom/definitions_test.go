package fbxdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbxscene/pkg/fbx"
)

func TestDefinitionsCache_Lookup(t *testing.T) {
	doc := buildTestDocument()
	cache := doc.DefinitionsCache()

	id, ok := cache.PropsNodeID("Geometry", "FbxMesh")
	require.True(t, ok, "Geometry/FbxMesh template should be cached")

	node := doc.Tree().Node(fbx.NodeID(id))
	require.NotNil(t, node)
	assert.Equal(t, "Properties70", node.Name)
}

func TestDefinitionsCache_AbsentClassIsNotAnError(t *testing.T) {
	cache := buildTestDocument().DefinitionsCache()

	_, ok := cache.PropsNodeID("Material", "FbxSurfacePhong")
	assert.False(t, ok, "missing template must report absence, not panic or error")

	_, ok = cache.PropsNodeID("Geometry", "WrongSubclass")
	assert.False(t, ok)
}

func TestDefinitionsCache_NoDefinitionsSection(t *testing.T) {
	tree := fbx.NewTree(&fbx.Node{}, 0)
	doc := NewDocument(tree)

	_, ok := doc.DefinitionsCache().PropsNodeID("Geometry", "FbxMesh")
	assert.False(t, ok)
}

func TestDefinitionsCache_StableAcrossCalls(t *testing.T) {
	cache := buildTestDocument().DefinitionsCache()

	first, ok1 := cache.PropsNodeID("Geometry", "FbxMesh")
	second, ok2 := cache.PropsNodeID("Geometry", "FbxMesh")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}
