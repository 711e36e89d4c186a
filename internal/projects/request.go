package projects

import "strings"

// Pair is one requested field update.
type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Request is an ordered list of field updates. Order only affects
// reporting; updates are independent of each other.
type Request []Pair

// PairLists zips two parallel lists positionally into a Request. A name
// with no value at the same position is dropped.
func PairLists(names, values []string) Request {
	count := len(names)
	if len(values) < count {
		count = len(values)
	}
	request := make(Request, 0, count)
	for i := 0; i < count; i++ {
		request = append(request, Pair{Name: names[i], Value: values[i]})
	}
	return request
}

// ParseLists builds a Request from two parallel comma-separated lists.
func ParseLists(namesCSV, valuesCSV string) Request {
	return PairLists(SplitList(namesCSV), SplitList(valuesCSV))
}

// SplitList splits a comma-separated list, trimming surrounding
// whitespace from each entry. An empty input yields nil.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		entries = append(entries, strings.TrimSpace(part))
	}
	return entries
}
