package cartesian

import (
	"math/rand"
	"testing"
)

func TestBuildEmpty(t *testing.T) {
	euler, firstOcc, depth := Build(nil)

	if len(euler) != 0 || len(firstOcc) != 0 || len(depth) != 0 {
		t.Fatalf("expected empty output, got euler=%v firstOcc=%v depth=%v", euler, firstOcc, depth)
	}
}

func TestBuildSingleton(t *testing.T) {
	euler, firstOcc, depth := Build([]int{5})

	if len(euler) != 1 || euler[0] != 0 {
		t.Fatalf("unexpected euler for singleton: %v", euler)
	}

	if firstOcc[0] != 0 || depth[0] != 0 {
		t.Fatalf("unexpected firstOcc/depth for singleton: %v %v", firstOcc, depth)
	}
}

func checkInvariants(t *testing.T, lcp, euler, firstOcc, depth []int) {
	t.Helper()
	m := len(lcp)

	if len(euler) != 2*m-1 {
		t.Fatalf("|euler| = %d, want %d for m=%d", len(euler), 2*m-1, m)
	}

	for v := 0; v < m; v++ {
		if firstOcc[v] >= len(euler) || euler[firstOcc[v]] != v {
			t.Fatalf("firstOcc[%d]=%d does not point back at node %d (euler=%v)", v, firstOcc[v], v, euler)
		}
	}

	for i := 0; i < len(euler)-1; i++ {
		d0, d1 := depth[euler[i]], depth[euler[i+1]]

		if d1-d0 != 1 && d0-d1 != 1 {
			t.Fatalf("±1 invariant violated between euler[%d]=%d (depth %d) and euler[%d]=%d (depth %d)",
				i, euler[i], d0, i+1, euler[i+1], d1)
		}
	}
}

func naiveLeftmostArgmin(lcp []int, a, b int) int {
	best := a

	for i := a + 1; i <= b; i++ {
		if lcp[i] < lcp[best] {
			best = i
		}
	}

	return best
}

func TestLCAViaRMQIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		m := rng.Intn(40) + 1
		lcp := make([]int, m)

		for i := range lcp {
			lcp[i] = rng.Intn(5)
		}

		euler, firstOcc, depth := Build(lcp)
		checkInvariants(t, lcp, euler, firstOcc, depth)

		a := rng.Intn(m)
		b := a + rng.Intn(m-a)

		wantNode := naiveLeftmostArgmin(lcp, a, b)

		L, R := firstOcc[a], firstOcc[b]
		if L > R {
			L, R = R, L
		}

		bestT := L

		for t := L + 1; t <= R; t++ {
			if depth[euler[t]] < depth[euler[bestT]] {
				bestT = t
			}
		}

		gotNode := euler[bestT]

		if lcp[gotNode] != lcp[wantNode] {
			t.Fatalf("lcp=%v a=%d b=%d: RMQ-derived node %d has lcp %d, want lcp %d (naive node %d)",
				lcp, a, b, gotNode, lcp[gotNode], lcp[wantNode], wantNode)
		}
	}
}
