package tspio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/tour"
)

// WriteTour writes length followed by the IDs of the cities of order.
// order must be a permutation of the instance's city indices.
func WriteTour(w io.Writer, inst *instance.Instance, order []int, length int64) error {
	if inst == nil {
		return tour.ErrInvalidTour
	}
	if err := tour.ValidatePermutation(order, inst.N()); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.FormatInt(length, 10))
	bw.WriteByte('\n')
	for _, c := range order {
		bw.WriteString(strconv.Itoa(inst.City(c).ID))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteFile writes the tour to path, replacing any existing file.
func WriteFile(path string, inst *instance.Instance, order []int, length int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tspio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("tspio: %w", cerr)
		}
	}()

	return WriteTour(f, inst, order, length)
}
