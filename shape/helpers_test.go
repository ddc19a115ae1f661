package shape

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const tol = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// mustShape unwraps a constructor result, failing the test on error.
func mustShape(t *testing.T) func(*Shape, error) *Shape {
	return func(s *Shape, err error) *Shape {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}
		if s == nil {
			t.Fatalf("constructor returned nil shape")
		}
		return s
	}
}
