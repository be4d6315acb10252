package content

import "errors"

// errConcatOverflow is returned when joining a page's content streams
// would overflow an int-sized length - e.g. a maliciously crafted
// /Length chain on a 32-bit build.
var errConcatOverflow = errors.New("content: concatenated stream size overflows int")

// ConcatStreams joins a page's (possibly many) content streams into a
// single buffer for the driver to scan, appending one whitespace
// separator byte after every stream - including the last - so a token
// never spans a stream boundary by accident and a content stream that
// ends mid-token (e.g. a truncated comment) never bleeds into the next
// part. The total size is computed with overflow checking before any
// allocation.
func ConcatStreams(streams [][]byte) ([]byte, error) {
	if len(streams) == 0 {
		return nil, nil
	}
	total := 0
	for _, s := range streams {
		n := len(s) + 1 // separator byte
		next := total + n
		if next < total {
			return nil, errConcatOverflow
		}
		total = next
	}

	out := make([]byte, 0, total)
	for _, s := range streams {
		out = append(out, s...)
		out = append(out, ' ')
	}
	return out, nil
}
