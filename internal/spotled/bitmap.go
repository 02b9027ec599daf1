package spotled

import "fmt"

// PackRows packs bitmap rows into bytes, MSB first, in reading order. Rows
// use '1' or '#' for lit pixels and '0', '.' or ' ' for dark ones. The
// result is zero padded to at least minLen bytes; pass 0 for no padding.
func PackRows(rows []string, minLen int) ([]byte, error) {
	var bits []byte
	var current byte
	count := 0
	for _, row := range rows {
		for _, c := range row {
			current <<= 1
			switch c {
			case '1', '#':
				current |= 1
			case '0', '.', ' ':
			default:
				return nil, fmt.Errorf("invalid bitmap character %q", c)
			}
			count++
			if count == 8 {
				bits = append(bits, current)
				current = 0
				count = 0
			}
		}
	}
	if count > 0 {
		bits = append(bits, current<<(8-count))
	}
	for len(bits) < minLen {
		bits = append(bits, 0)
	}
	return bits, nil
}
