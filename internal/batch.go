package logtally

import (
	"bufio"
	"bytes"
	"io"
	"math"
)

const initialLineBufferSize = 64 * 1024

// lineGroup is only valid until the next call to batchReader.next.
type lineGroup []string

type batchReader struct {
	scanner *bufio.Scanner
	group   lineGroup
}

func (b *batchReader) next() (lineGroup, error) {
	b.group = b.group[:0]
	for len(b.group) < cap(b.group) && b.scanner.Scan() {
		b.group = append(b.group, b.scanner.Text())
	}
	if err := b.scanner.Err(); err != nil {
		return nil, err
	}
	if len(b.group) == 0 {
		return nil, io.EOF
	}

	return b.group, nil
}

// scanLines splits on "\n", "\r\n" and a lone "\r".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be followed by "\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func newBatchReader(r io.Reader, size int) *batchReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBufferSize), math.MaxInt)
	sc.Split(scanLines)

	return &batchReader{
		scanner: sc,
		group:   make(lineGroup, 0, size),
	}
}
