package projection

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshshape/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	vertices := []geometry.Vector3{
		geometry.NewVector3(1, 2, 3),
		geometry.NewVector3(4, 5, 6),
	}

	all := ProjectAll(vertices)
	assert.Equal(t, []orb.Point{{1, 2}, {4, 5}}, all[XY])
	assert.Equal(t, []orb.Point{{1, 3}, {4, 6}}, all[XZ])
	assert.Equal(t, []orb.Point{{2, 3}, {5, 6}}, all[YZ])
}

func TestProjectEmpty(t *testing.T) {
	for _, p := range Planes {
		assert.Empty(t, Project(nil, p))
	}
}

func TestPlaneNames(t *testing.T) {
	assert.Equal(t, "XY Plane", XY.String())
	assert.Equal(t, "XZ Plane", XZ.String())
	assert.Equal(t, "YZ Plane", YZ.String())
}
