package bits

import "testing"

func TestLog2Floor(t *testing.T) {
	cases := []struct {
		x    uint
		want uint
	}{
		{1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}, {7, 2}, {8, 3},
		{1023, 9}, {1024, 10}, {1025, 10},
	}

	for _, c := range cases {
		if got := Log2Floor(c.x); got != c.want {
			t.Errorf("Log2Floor(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := []struct {
		x    uint
		want uint
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
	}

	for _, c := range cases {
		if got := Log2Ceil(c.x); got != c.want {
			t.Errorf("Log2Ceil(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestIsPowerOf2(t *testing.T) {
	for _, x := range []int{1, 2, 4, 8, 16, 1024} {
		if !IsPowerOf2(x) {
			t.Errorf("IsPowerOf2(%d) = false, want true", x)
		}
	}

	for _, x := range []int{0, 3, 5, 6, 7, 9, -1, -8} {
		if IsPowerOf2(x) {
			t.Errorf("IsPowerOf2(%d) = true, want false", x)
		}
	}
}

func TestMinMaxInt(t *testing.T) {
	if MaxInt(3, 5) != 5 || MaxInt(5, 3) != 5 {
		t.Error("MaxInt incorrect")
	}

	if MinInt(3, 5) != 3 || MinInt(5, 3) != 3 {
		t.Error("MinInt incorrect")
	}
}
