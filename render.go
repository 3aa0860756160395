package hanzime

const choiceLabels = "123456789"

// Render iterates through the tokens of q, resolves open choices and writes
// the resulting text to sink.
//
// Possible surprising behavior:
//   - the word chosen for an OpenChoice token depends on a lookahead for
//     MaybeChoice tokens
//   - a MaybeChoice token is demoted to Skip if it is used to resolve a choice
//     or a space separates a SingleMatch from the following word
func (q *TokenQueue) Render(dict *Dictionary, sink Sink) {
	for current := 0; current < q.count; current++ {
		tk := q.tokens[current]
		switch tk.Kind {
		case SingleMatch:
			sink.WriteString(dict.Entry(tk.Entry))
			// An adjacent space keeps the pinyin of this word from being
			// matched as part of a longer word; it has done its job.
			if next := q.At(current + 1); next.Kind == MaybeChoice && next.Char == ' ' {
				q.skip(current + 1)
			}
		case OpenChoice:
			q.resolveChoice(current, dict.Entry(tk.Entry), sink)
		case MaybeChoice, Other:
			sink.WriteString(tk.Text)
		case Skip:
		}
	}
}

// resolveChoice looks ahead from position at for a MaybeChoice token which
// picks one of the alternatives of entry. Candidates which do not pick a
// valid alternative are left alone. Without a pick, all alternatives are
// written as a prompt.
func (q *TokenQueue) resolveChoice(at int, entry string, sink Sink) {
	for i := at; i < q.count; i++ {
		tk := q.tokens[i]
		if tk.Kind != MaybeChoice {
			continue
		}
		if expandChoice(entry, tk.Char, sink) {
			q.skip(i)
			return
		}
	}
	expandChoice(entry, 0, sink)
}

// expandChoice renders the alternatives of entry as the alternative picked
// by candidate, or as a prompt listing all alternatives. It returns true if
// candidate has picked an alternative, i.e., has to be consumed.
func expandChoice(entry string, candidate rune, sink Sink) bool {
	n := countChoices(entry)
	if n == 1 {
		sink.Trace(TraceNotOpenChoice)
		sink.WriteString(entry)
		return false
	}
	pick := 0
	switch {
	case candidate == ' ': // space picks the default option
		pick = 1
	case '1' <= candidate && candidate <= '9':
		pick = int(candidate - '0')
	}
	if pick > 0 {
		// out of range picks write nothing, to prevent duplicate prompts
		choice, ok := nthChoice(entry, pick)
		if ok {
			sink.WriteString(choice)
		}
		return ok
	}
	sink.WriteString(" (")
	for i := 1; i <= n; i++ {
		label := min(i, len(choiceLabels))
		sink.WriteString(choiceLabels[label-1 : label])
		choice, _ := nthChoice(entry, i)
		sink.WriteString(choice)
		if i < n {
			sink.WriteString(" ")
		}
	}
	sink.WriteString(") ")
	return false
}
