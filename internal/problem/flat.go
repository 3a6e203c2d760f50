package problem

import (
	"fmt"
	"math"
)

// Flat is the device layout of a batch: problem-major contiguous arrays.
//
// Item i of problem p lives at Weights[p*ItemCount+i] and Values[p*ItemCount+i].
type Flat struct {
	Capacities []int32
	Weights    []int32
	Values     []int32
	ItemCount  int
}

// Problems returns the number of problems in the flat layout.
func (f *Flat) Problems() int {
	return len(f.Capacities)
}

// Item returns weight and value of item i in problem p.
func (f *Flat) Item(p, i int) (weight, value int32) {
	k := p*f.ItemCount + i
	return f.Weights[k], f.Values[k]
}

// Flatten marshals the batch into the flat device layout.
// The batch must have a uniform item count and every number must fit in int32.
func Flatten(b Batch) (*Flat, error) {
	itemCount, err := b.ItemCount()
	if err != nil {
		return nil, err
	}

	f := &Flat{
		Capacities: make([]int32, len(b)),
		Weights:    make([]int32, len(b)*itemCount),
		Values:     make([]int32, len(b)*itemCount),
		ItemCount:  itemCount,
	}
	for p := range b {
		in := &b[p]
		if in.Capacity > math.MaxInt32 {
			return nil, fmt.Errorf("instance %d: capacity %d overflows int32", p, in.Capacity)
		}
		f.Capacities[p] = int32(in.Capacity) //nolint:gosec // G115: checked above.
		base := p * itemCount
		for i := 0; i < itemCount; i++ {
			w, v := in.Weights[i], in.Values[i]
			if w > math.MaxInt32 || v > math.MaxInt32 {
				return nil, fmt.Errorf("instance %d: item %d overflows int32", p, i)
			}
			f.Weights[base+i] = int32(w) //nolint:gosec // G115: checked above.
			f.Values[base+i] = int32(v)  //nolint:gosec // G115: checked above.
		}
	}
	return f, nil
}
