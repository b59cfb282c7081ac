// Package alnum provides an alphanumeric ("natural") string comparison:
// maximal runs of ASCII digits compare by numeric value, every other run
// compares bytewise. "V10-2" therefore sorts after "V9-2", where plain
// string ordering would put it first.
//
// The comparison is locale-independent and total: ties between numerically
// equal runs of different lengths ("007" vs "7") fall back to the shorter
// run first, so Compare never reports equality for distinct inputs unless
// the strings are byte-identical.
package alnum

// Compare returns -1, 0 or +1 ordering a against b alphanumerically.
// Complexity: O(len(a) + len(b)).
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// Consume both digit runs and compare them as numbers.
			ia, ja := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareDigits(a[ia:i], b[ja:j]); c != 0 {
				return c
			}

			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}

			return 1
		}
		i++
		j++
	}

	// One string is a prefix of the other; the shorter sorts first.
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b alphanumerically.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// compareDigits orders two runs of ASCII digits by numeric value without
// converting them: strip leading zeros, compare lengths, then bytes.
// Numerically equal runs tie-break by original length ("7" before "007").
func compareDigits(a, b string) int {
	ta, tb := trimZeros(a), trimZeros(b)
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}

		return 1
	}
	if ta != tb {
		if ta < tb {
			return -1
		}

		return 1
	}
	// Same value; fewer leading zeros first keeps the order total.
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// trimZeros drops leading zeros, keeping at least one digit.
func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}

	return s
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
