//Package histo implements simple histograms with fixed dividers, and
//matrices of them.
package histo

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Dividers returns the n+1 dividers of n equal bins between min and max.
func Dividers(min, max float64, n int) []float64 {
	if n <= 0 || max <= min {
		panic(fmt.Sprintf("gordf/histo.Dividers: Can't divide [%f,%f) in %d bins", min, max, n))
	}
	return floats.Span(make([]float64, n+1), min, max)
}

//A matrix of histograms, all with the same dividers.
type Matrix struct {
	rows, cols int
	d          []*Data //row-major
	dividers   []float64
}

//NewMatrix returns a new r x c matrix of empty histograms with
//the given dividers.
func NewMatrix(r, c int, dividers []float64) *Matrix {
	ret := new(Matrix)
	ret.rows = r
	ret.cols = c
	ret.d = make([]*Data, r*c)
	ret.dividers = dividers
	ret.Fill()
	return ret
}

func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

//returns the index in the []*Data slice of a matrix given
//the row and column indexes.
func (M *Matrix) rc2i(r, c int) int {
	if r < 0 || r >= M.rows || c < 0 || c >= M.cols {
		panic(fmt.Sprintf("gordf/histo: Index %d,%d out of range for a %dx%d matrix", r, c, M.rows, M.cols))
	}
	return M.cols*r + c
}

//Fill puts an empty histogram in every position of the matrix. Each
//histogram gets its row-major position as ID.
func (M *Matrix) Fill() {
	for i := range M.d {
		M.d[i] = NewData(M.dividers, nil, i)
	}
}

//View returns the histogram in the r,c position in the matrix
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

//AddWeighted adds the points with weight w to the histogram in the r,c position.
func (M *Matrix) AddWeighted(r, c int, w float64, point ...float64) {
	M.d[M.rc2i(r, c)].AddWeighted(w, point...)
}

func (M *Matrix) String() string {
	ret := fmt.Sprintf("rows:%d cols:%d | Data:\n", M.rows, M.cols)
	t := make([]string, 0, len(M.d))
	for _, v := range M.d {
		t = append(t, v.String())
	}
	return ret + strings.Join(t, "\n\n")
}

//Data is a histogram. Bin i counts the values v with dividers[i] <= v < dividers[i+1].
type Data struct {
	id         int
	normalized bool
	total      float64 //sum of the weights added
	dividers   []float64
	histo      []float64
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil, in which case an empty histogram is created.
//If an ID is given it will be set, otherwise the ID will be -1.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("gordf/histo.NewData: At least 2 dividers are needed")
	}
	d := new(Data)
	//copied so nobody changes it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String prints a -hopefully- pretty string representation of
//the histogram, in 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, Total: %g\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//Bin returns the bin where v falls, or -1 if v is outside the dividers.
func (D *Data) Bin(v float64) int {
	last := len(D.dividers) - 1
	if v < D.dividers[0] || v >= D.dividers[last] {
		return -1
	}
	i := sort.SearchFloat64s(D.dividers, v)
	if D.dividers[i] == v {
		return i
	}
	return i - 1
}

//AddData adds the given data point(s) to the histogram with weight 1.
func (D *Data) AddData(point ...float64) {
	D.AddWeighted(1, point...)
}

//AddWeighted adds w to the bin of each point. Points outside the dividers
//are omitted, but their weight still counts for the total.
func (D *Data) AddWeighted(w float64, point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		if b := D.Bin(v); b >= 0 {
			D.histo[b] += w
		}
	}
	D.total += w * float64(len(point))
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides every bin by the total weight added.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize reverts Normalize
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := D.total
	D.normalized = false
	if normalize {
		n = 1 / D.total
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Scale multiplies every bin by f.
func (D *Data) Scale(f float64) {
	floats.Scale(f, D.histo)
}

//CopyDividers returns a copy of the dividers of the histogram, in dest[0]
//if it is given and large enough.
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

//Copy returns a copy of the bins, in dest[0] if it is given and large enough.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

//View returns the bins themselves, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with the histogram of rawdata.
//rawdata is sorted in place.
func (D *Data) ReHisto(rawdata []float64) {
	sort.Float64s(rawdata)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(rawdata, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(rawdata, D.dividers[0])
	rawdata = rawdata[mini:maxi]
	D.total = float64(len(rawdata))
	D.normalized = false
	D.histo = stat.Histogram(D.histo, D.dividers, rawdata, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	if len(dest) > 0 && len(dest[0]) >= N {
		return dest[0][:N]
	}
	return make([]float64, N)
}
