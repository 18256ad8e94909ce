package surface

import "testing"

func TestSurface(t *testing.T) {
	s := New[float64](4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("dimensions = %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.Set(x, y, float64(y*4+x))
		}
	}
	if got := s.At(3, 2); got != 11 {
		t.Errorf("At(3,2) = %g", got)
	}
	if got := s.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %g", got)
	}
	row := s.Row(1)
	if len(row) != 4 || row[0] != 4 || row[3] != 7 {
		t.Errorf("Row(1) = %v", row)
	}
	row[2] = 99
	if got := s.At(2, 1); got != 99 {
		t.Errorf("Row is not a view: At(2,1) = %g", got)
	}
}
