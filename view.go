package hanzime

// View adds character boundary metadata to a string, to help with slicing
// substrings by character position (not bytes!). A view records at most
// Capacity characters; everything after that is invisible to clients.
//
// Invalid UTF-8 bytes count as one character each.
type View struct {
	str   string
	start [Capacity]int // byte offset of the first byte of character i
	end   [Capacity]int // byte offset just after character i
	count int
}

// NewView creates a view for s.
func NewView(s string) *View {
	v := &View{}
	v.Reset(s)
	return v
}

// Reset re-initializes the view for string s.
func (v *View) Reset(s string) {
	v.str = s
	v.count = 0
	for i := range s {
		if v.count > 0 {
			v.end[v.count-1] = i
		}
		if v.count == Capacity {
			return
		}
		v.start[v.count] = i
		v.count++
	}
	if v.count > 0 {
		v.end[v.count-1] = len(s)
	}
}

// Len returns the number of visible characters.
func (v *View) Len() int {
	return v.count
}

// String returns the visible part of the underlying string.
func (v *View) String() string {
	if v.count == 0 {
		return ""
	}
	return v.str[:v.end[v.count-1]]
}

// Slice returns the substring for characters start…end-1 (upper bound
// exclusive). If the range is empty or not covered by the view, Slice
// returns false.
func (v *View) Slice(start, end int) (string, bool) {
	if start < 0 || end <= start || end > v.count {
		return "", false
	}
	startB, endB := v.start[start], v.end[end-1]
	if startB > endB || endB > len(v.str) {
		return "", false
	}
	return v.str[startB:endB], true
}
