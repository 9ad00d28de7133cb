package sitescan

import "iter"

// FrequencyTable maps a word to the number of times it occurs.
type FrequencyTable map[string]int

// CountWords tallies tokens in a single pass. Empty tokens are skipped.
// The returned table is never nil.
func CountWords(tokens iter.Seq[string]) FrequencyTable {
	table := make(FrequencyTable)
	if tokens == nil {
		return table
	}
	for token := range tokens {
		if token == "" {
			continue
		}
		table[token]++
	}
	return table
}
