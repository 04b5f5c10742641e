// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (b *builder) readText(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 2 {
			return fmt.Errorf("%w: line %d: want \"a-b [weight]\", got %q", ErrMalformed, lineNo, line)
		}

		from, to, isEdge := strings.Cut(fields[0], "-")
		if !isEdge {
			if len(fields) != 1 {
				return fmt.Errorf("%w: line %d: weight without an edge", ErrMalformed, lineNo)
			}
			b.node(from)
			continue
		}
		if from == "" || to == "" {
			return fmt.Errorf("%w: line %d: empty endpoint in %q", ErrMalformed, lineNo, fields[0])
		}

		w := int64(1)
		if len(fields) == 2 {
			v, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("%w: line %d: weight %q is not a non-negative integer", ErrMalformed, lineNo, fields[1])
			}
			w = v
		}
		b.edge(from, to, w)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}

	return nil
}
