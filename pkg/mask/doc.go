// Package mask normalises raw keystrokes into digit strings and re-applies
// display masks for phone, SSN, zip code and custom `X` patterns.
//
// Two families of masks live side by side. Named presets (phone, ssn) only
// punctuate once every digit group is present and pass partial input through
// untouched. Custom patterns, where `X` marks a digit slot, format
// progressively as digits arrive. The two behaviours are kept distinct so
// stored values stay compatible with existing callers.
package mask
