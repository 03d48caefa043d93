package tspio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linkern/instance"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// lineReader yields non-blank lines with their 1-based line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line; ok is false at EOF.
func (lr *lineReader) next() (fields []string, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		fields = strings.Fields(lr.sc.Text())
		if len(fields) > 0 {
			return fields, true, nil
		}
	}

	return nil, false, lr.sc.Err()
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", instance.ErrInvalidInput, lr.line, fmt.Sprintf(format, args...))
}

// ReadInstances parses every instance in r, in order. At least one instance
// is required.
func ReadInstances(r io.Reader) ([]*instance.Instance, error) {
	var (
		lr     = newLineReader(r)
		out    []*instance.Instance
		fields []string
		ok     bool
		err    error
	)
	for {
		fields, ok, err = lr.next()
		if err != nil {
			return nil, fmt.Errorf("tspio: read: %w", err)
		}
		if !ok {
			break
		}
		if len(fields) != 1 {
			return nil, lr.errorf("want a city count, got %q", strings.Join(fields, " "))
		}
		k, convErr := strconv.Atoi(fields[0])
		if convErr != nil || k < 0 {
			return nil, lr.errorf("bad city count %q", fields[0])
		}
		header := lr.line

		cities, err := readCities(lr, k)
		if err != nil {
			return nil, err
		}
		inst, err := instance.Build(cities)
		if err != nil {
			return nil, fmt.Errorf("tspio: instance at line %d: %w", header, err)
		}
		out = append(out, inst)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no instances", instance.ErrInvalidInput)
	}

	return out, nil
}

func readCities(lr *lineReader, k int) ([]instance.City, error) {
	var (
		cities = make([]instance.City, 0, k)
		fields []string
		ok     bool
		err    error
		c      instance.City
	)
	for len(cities) < k {
		fields, ok, err = lr.next()
		if err != nil {
			return nil, fmt.Errorf("tspio: read: %w", err)
		}
		if !ok {
			return nil, lr.errorf("expected %d cities, found %d", k, len(cities))
		}
		if len(fields) != 3 {
			return nil, lr.errorf("want \"id x y\", got %q", strings.Join(fields, " "))
		}
		if c.ID, err = strconv.Atoi(fields[0]); err != nil {
			return nil, lr.errorf("bad id %q", fields[0])
		}
		if c.X, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, lr.errorf("bad x %q", fields[1])
		}
		if c.Y, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, lr.errorf("bad y %q", fields[2])
		}
		cities = append(cities, c)
	}

	return cities, nil
}

// ReadFile opens path and parses it with ReadInstances.
func ReadFile(path string) ([]*instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tspio: %w", err)
	}
	defer f.Close()

	return ReadInstances(f)
}
