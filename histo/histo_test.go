package histo

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func TestHistoBins(Te *testing.T) {
	fmt.Println("Histogram test!")
	D := NewData([]float64{0, 1, 2, 3, 4, 8}, nil, 3)
	D.AddData(1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, -1)
	want := []float64{2, 4, 2, 4, 7}
	if !reflect.DeepEqual(D.View(), want) {
		Te.Errorf("got %v want %v", D.View(), want)
	}
	if D.ID() != 3 {
		Te.Errorf("wrong ID %d", D.ID())
	}
	fmt.Println(D)
	R := NewData([]float64{0, 1, 2, 3, 4, 8}, []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, -1})
	if !reflect.DeepEqual(R.View(), want) {
		Te.Errorf("ReHisto: got %v want %v", R.View(), want)
	}
}

func TestWeighted(Te *testing.T) {
	D := NewData(Dividers(0, 2, 4), nil)
	D.AddWeighted(2.5, 0.1, 0.6, 0.5, 1.99, 2.0)
	want := []float64{2.5, 5, 0, 2.5}
	if !reflect.DeepEqual(D.View(), want) {
		Te.Errorf("got %v want %v", D.View(), want)
	}
	D.Normalize()
	if math.Abs(D.Sum()-0.8) > 1e-12 {
		Te.Errorf("normalized sum should be 0.8 (one point off limits), got %f", D.Sum())
	}
	D.UnNormalize()
	for i, v := range D.View() {
		if math.Abs(v-want[i]) > 1e-12 {
			Te.Errorf("UnNormalize: got %v want %v", D.View(), want)
			break
		}
	}
}

func TestMatrix(Te *testing.T) {
	M := NewMatrix(3, 1, Dividers(0, 1, 10))
	M.AddWeighted(2, 0, 10, 0.55)
	M.AddWeighted(0, 0, 1, 0.05)
	if r, c := M.Dims(); r != 3 || c != 1 {
		Te.Errorf("wrong dims %d %d", r, c)
	}
	if v := M.View(2, 0).View()[5]; v != 10 {
		Te.Errorf("expected 10 in bin 5, got %f", v)
	}
	if M.View(1, 0).Sum() != 0 || M.View(0, 0).Sum() != 1 {
		Te.Errorf("unexpected sums\n%s", M)
	}
	if M.View(1, 0).ID() != 1 {
		Te.Errorf("wrong ID %d", M.View(1, 0).ID())
	}
}
