package hanzime

// Engine translates queries with a dictionary. An engine owns the view and
// token queue for one query at a time; it is not safe for concurrent use,
// but any number of engines may share a dictionary.
//
// Re-using an engine (and a BufSink) avoids all allocations on the query
// path.
type Engine struct {
	dict  *Dictionary
	view  View
	queue TokenQueue
}

// NewEngine creates an engine for dictionary dict.
func NewEngine(dict *Dictionary) *Engine {
	return &Engine{dict: dict}
}

// Dictionary returns the dictionary of this engine.
func (e *Engine) Dictionary() *Dictionary {
	return e.dict
}

// Translate looks up query and renders the result into sink.
// Characters of query beyond Capacity are ignored.
func (e *Engine) Translate(query string, sink Sink) {
	e.view.Reset(query)
	e.queue.Reset()
	scan(e.dict, &e.view, 0, e.view.Len(), &e.queue, sink)
	e.queue.Render(e.dict, sink)
}

// Tokens scans query and returns a copy of the resulting tokens, before
// any choices are resolved. This is intended for diagnostics.
func (e *Engine) Tokens(query string) []Token {
	e.view.Reset(query)
	e.queue.Reset()
	var sink BufSink
	scan(e.dict, &e.view, 0, e.view.Len(), &e.queue, &sink)
	tokens := make([]Token, e.queue.Len())
	copy(tokens, e.queue.tokens[:e.queue.Len()])
	return tokens
}

// Query translates query with dictionary dict and returns the result.
func Query(dict *Dictionary, query string) string {
	var sink BufSink
	NewEngine(dict).Translate(query, &sink)
	return sink.String()
}
