package meshgl

import (
	"testing"

	"github.com/Faultbox/shadowmesh/pkg/math"
	"github.com/Faultbox/shadowmesh/pkg/paint"
)

func TestVertexLayout(t *testing.T) {
	if vertexStride != 12 {
		t.Errorf("vertexStride = %d, want 12", vertexStride)
	}
	if posOffset != 0 {
		t.Errorf("posOffset = %d, want 0", posOffset)
	}
	if colorOffset != 8 {
		t.Errorf("colorOffset = %d, want 8", colorOffset)
	}
}

func TestBatchMergesMeshes(t *testing.T) {
	r := &Renderer{screenWidth: 640, screenHeight: 480}

	shadow := paint.SmallDark().Tessellate(math.RectFromMinMax(math.V2(10, 10), math.V2(110, 60)), 4)
	panel := paint.NewTessellator(paint.DefaultTessellationOptions())
	var fill paint.Mesh
	panel.TessellateRect(paint.FilledRect(math.RectFromMinMax(math.V2(10, 10), math.V2(110, 60)), 4, paint.White), &fill)

	r.Begin()
	r.Add(&shadow)
	r.Add(&fill)

	batch := r.Batch()
	if got, want := batch.TriangleCount(), shadow.TriangleCount()+fill.TriangleCount(); got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
	if !batch.IsValid() {
		t.Error("merged batch is not valid")
	}

	r.Begin()
	if !r.Batch().IsEmpty() {
		t.Error("Begin() did not reset the batch")
	}
}
