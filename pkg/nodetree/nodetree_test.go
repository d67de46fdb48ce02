package nodetree

import (
	"fmt"
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/figma"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	warnings []string
}

func (r *recorder) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func testDocument() *figma.Node {
	return &figma.Node{
		ID: "1:1", Name: "Card", Type: "FRAME",
		Children: []figma.Node{
			{
				ID: "1:2", Name: "Title", Type: "TEXT", Characters: "Hello",
				Annotations: []figma.Annotation{{Label: "Heading <h2>"}, {LabelMarkdown: "  "}},
			},
			{
				ID: "1:3", Name: "Icon.Close", Type: "INSTANCE", ComponentID: "9:9",
				ComponentProperties: map[string]figma.ComponentProperty{
					"isIcon#3:0": {Type: "BOOLEAN", Value: true},
				},
			},
			{ID: "1:4", Name: "Shape", Type: "VECTOR"},
			{
				ID: "3:0", Name: "Button", Type: "COMPONENT_SET",
				ComponentPropertyDefinitions: map[string]figma.ComponentPropertyDefinition{
					"isIcon": {Type: "VARIANT", VariantOptions: []string{"true", "false"}},
				},
				Children: []figma.Node{
					{ID: "3:1", Name: "Size=Small, isIcon=true", Type: "COMPONENT"},
					{ID: "3:2", Name: "Size=Large, isIcon=false", Type: "COMPONENT"},
				},
			},
		},
	}
}

func buildTest(t *testing.T, log Warner) *Element {
	t.Helper()
	doc := testDocument()
	root := Build(doc, figma.NewLibrary(doc, nil, nil, nil), log)
	require.NotNil(t, root)
	return root
}

func TestBuild(t *testing.T) {
	root := buildTest(t, nil)

	assert.Equal(t, KindContainer, root.Kind)
	require.Len(t, root.Children, 4)
	assert.Equal(t, 7, root.Count())

	title := root.Children[0]
	assert.Equal(t, KindText, title.Kind)
	assert.Equal(t, "Hello", title.Text)
	assert.Equal(t, []string{"Heading <h2>"}, title.Annotations)
	assert.Same(t, root, title.Parent)

	closeIcon := root.Children[1]
	assert.True(t, closeIcon.IsIcon)
	assert.Equal(t, "Icon.Close", closeIcon.ElementName(true))
	assert.Equal(t, "IconClose", closeIcon.ElementName(false))
	assert.Equal(t, "icon-close", closeIcon.ClassName())

	assert.Equal(t, KindVector, root.Children[2].Kind)
	assert.False(t, root.Children[2].IsIcon)

	set := root.Children[3]
	small, large := set.Children[0], set.Children[1]
	assert.Equal(t, "Button", small.VariantSetName)
	assert.Equal(t, "Button", small.ElementName(true))
	assert.Equal(t, "button", large.ClassName())
	assert.True(t, small.IsIcon)
	assert.False(t, large.IsIcon)
}

func TestBuildSkipsFailingChild(t *testing.T) {
	detectIcon = func(node *figma.Node, lib *figma.Library) bool {
		if node.Name == "Shape" {
			panic("broken node")
		}
		return isIcon(node, lib)
	}
	t.Cleanup(func() { detectIcon = isIcon })

	log := new(recorder)
	root := buildTest(t, log)

	var names []string
	for _, c := range root.Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Title", "Icon.Close", "Button"}, names)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "1:4")
}

func TestIconHeuristics(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want bool
	}{
		{
			name: "boolean property",
			node: figma.Node{Type: "INSTANCE", ComponentProperties: map[string]figma.ComponentProperty{
				"IsIcon#1:2": {Type: "BOOLEAN", Value: true},
			}},
			want: true,
		},
		{
			name: "variant property string",
			node: figma.Node{Type: "INSTANCE", ComponentProperties: map[string]figma.ComponentProperty{
				"isIcon": {Type: "VARIANT", Value: "true"},
			}},
			want: true,
		},
		{
			name: "false property",
			node: figma.Node{Type: "INSTANCE", ComponentProperties: map[string]figma.ComponentProperty{
				"isIcon#1:2": {Type: "BOOLEAN", Value: false},
			}},
		},
		{
			name: "unrelated property",
			node: figma.Node{Type: "INSTANCE", ComponentProperties: map[string]figma.ComponentProperty{
				"hasIcon#1:2": {Type: "BOOLEAN", Value: true},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isIcon(&tt.node, nil))
		})
	}

	assert.True(t, variantHasIcon("Size=Small, isIcon = true"))
	assert.False(t, variantHasIcon("Size=Small, isIcon=false"))
	assert.False(t, variantHasIcon(""))
}

func TestInstanceVariantSet(t *testing.T) {
	doc := testDocument()
	doc.Children = append(doc.Children, figma.Node{ID: "1:9", Name: "Button", Type: "INSTANCE", ComponentID: "3:1"})

	root := Build(doc, figma.NewLibrary(doc, nil, nil, nil), nil)
	inst := root.Children[len(root.Children)-1]
	require.Equal(t, "1:9", inst.ID)
	assert.Equal(t, "Button", inst.VariantSetName)
	assert.True(t, inst.IsIcon)
}

func TestSelect(t *testing.T) {
	root := buildTest(t, nil)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"Card", []string{"1:1"}},
		{"**/Title", []string{"1:2"}},
		{"Card/Button/*", []string{"3:1", "3:2"}},
		{"Card/Icon.Close", []string{"1:3"}},
		{"Missing/**", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Select(root, tt.pattern)
			require.NoError(t, err)

			var ids []string
			for _, el := range got {
				ids = append(ids, el.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	_, err := Select(root, "Card/[")
	assert.Error(t, err)
}

func TestHasAbsoluteChild(t *testing.T) {
	doc := &figma.Node{ID: "1", Name: "Root", Type: "FRAME", Children: []figma.Node{
		{ID: "2", Name: "Badge", Type: "FRAME", LayoutPositioning: "ABSOLUTE"},
	}}
	root := Build(doc, nil, nil)
	assert.True(t, root.HasAbsoluteChild())
	assert.False(t, root.Children[0].HasAbsoluteChild())
	assert.Equal(t, "Root/Badge", root.Children[0].Path())
}
