package sentiment

import (
	"sort"
	"strings"
)

// Term is a single lexicon entry: a lowercase word, multi-word phrase,
// or emoji with a signed sentiment weight.
type Term struct {
	Text   string
	Weight float64
}

// Lexicon is an ordered table of stock-slang terms. Entries are kept
// in a slice rather than a map so substring scans always report
// matches in the same order.
type Lexicon struct {
	terms []Term
	index map[string]float64
}

func NewLexicon(terms []Term) *Lexicon {
	l := &Lexicon{
		terms: make([]Term, 0, len(terms)),
		index: make(map[string]float64, len(terms)),
	}
	for _, t := range terms {
		text := strings.ToLower(t.Text)
		if _, ok := l.index[text]; ok {
			continue
		}
		l.terms = append(l.terms, Term{Text: text, Weight: t.Weight})
		l.index[text] = t.Weight
	}
	return l
}

// Extend returns a copy with extra terms appended. Overrides arrive as
// a map, so they are sorted by text first to keep scan order stable.
func (l *Lexicon) Extend(overrides map[string]float64) *Lexicon {
	if len(overrides) == 0 {
		return l
	}
	texts := make([]string, 0, len(overrides))
	for text := range overrides {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	merged := make([]Term, 0, len(l.terms)+len(texts))
	seen := make(map[string]bool, len(texts))
	for _, text := range texts {
		seen[strings.ToLower(text)] = true
	}
	for _, t := range l.terms {
		if seen[t.Text] {
			continue
		}
		merged = append(merged, t)
	}
	for _, text := range texts {
		merged = append(merged, Term{Text: text, Weight: overrides[text]})
	}
	return NewLexicon(merged)
}

// FindTerms scans text for every lexicon entry using case-insensitive
// substring containment and returns the matched terms in lexicon order
// together with the summed signed weight. Overlapping matches are not
// de-duplicated: a term contained inside a longer matched phrase still
// contributes its own weight.
func (l *Lexicon) FindTerms(text string) ([]string, float64) {
	lowered := strings.ToLower(text)

	var found []string
	var adjustment float64
	for _, t := range l.terms {
		if strings.Contains(lowered, t.Text) {
			found = append(found, t.Text)
			adjustment += t.Weight
		}
	}
	return found, adjustment
}

// Contains reports whether word is itself a lexicon entry.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.index[strings.ToLower(word)]
	return ok
}

func (l *Lexicon) Len() int { return len(l.terms) }

// DefaultLexicon returns the built-in stock-slang table: Indonesian
// and English retail-trading terms plus emoji, positive block first.
// Weights sit roughly in [-3.0, 3.0].
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultTerms)
}

var defaultTerms = []Term{
	// Price movement, positive
	{"naik", 2.0}, {"up", 2.0}, {"bullish", 2.5}, {"rally", 2.5}, {"breakout", 2.5},
	{"pump", 2.0}, {"moon", 3.0}, {"rocket", 2.5}, {"surge", 2.0}, {"spike", 2.0},
	{"roket", 2.5}, {"terbang", 2.0}, {"meluncur", 2.0}, {"meroket", 2.5},

	// Profit
	{"profit", 2.0}, {"untung", 2.0}, {"cuan", 2.5}, {"gain", 2.0}, {"jackpot", 3.0},
	{"money", 1.5}, {"duit", 1.5}, {"kaya", 2.0}, {"tajir", 2.5},

	// Positive emotion
	{"mantap", 2.0}, {"keren", 1.5}, {"bagus", 1.5}, {"solid", 2.0}, {"top", 2.0},
	{"gokil", 2.0}, {"dahsyat", 2.5}, {"luar biasa", 2.5}, {"amazing", 2.0},
	{"excellent", 2.0}, {"perfect", 2.5}, {"good", 1.5}, {"great", 2.0},

	// Trading actions, positive
	{"buy", 1.5}, {"beli", 1.5}, {"hold", 1.0}, {"accumulate", 2.0}, {"akumulasi", 2.0},
	{"strong buy", 2.5}, {"recommended", 2.0}, {"target", 1.5},

	// Market microstructure, positive. "ara" is auto-rejection atas,
	// the IDX daily upper price limit.
	{"ara", 2.0}, {"auto reject atas", 2.0}, {"auto rejection atas", 2.0},
	{"limit up", 2.5}, {"suspend naik", 2.5},
	{"volume gede", 1.5}, {"volume besar", 1.5}, {"high volume", 1.5},
	{"support kuat", 2.0}, {"strong support", 2.0},
	{"golden cross", 2.5}, {"breakout resistance", 2.5},

	// Emoji, positive
	{"🚀", 2.5}, {"🌙", 2.5}, {"💰", 2.0}, {"📈", 2.0}, {"💎", 2.0}, {"🔥", 2.0},
	{"👍", 1.5}, {"😍", 2.0}, {"🤑", 2.5}, {"💪", 2.0}, {"⬆️", 2.0}, {"↗️", 2.0},

	// Price movement, negative
	{"turun", -2.0}, {"down", -2.0}, {"bearish", -2.5}, {"crash", -3.0}, {"dump", -2.5},
	{"drop", -2.0}, {"fall", -2.0}, {"decline", -2.0}, {"correction", -1.5},
	{"anjlok", -2.5}, {"terjun", -2.5}, {"ambruk", -3.0}, {"jebol", -2.5},

	// Loss
	{"loss", -2.0}, {"rugi", -2.0}, {"bangkrut", -3.0}, {"minus", -2.0},
	{"cut loss", -2.5}, {"cutloss", -2.5}, {"stop loss", -1.5},

	// Negative emotion
	{"jelek", -1.5}, {"buruk", -2.0}, {"parah", -2.5}, {"hancur", -3.0}, {"bad", -2.0},
	{"terrible", -2.5}, {"awful", -2.5}, {"worst", -3.0}, {"sucks", -2.5},
	{"sedih", -1.5}, {"kecewa", -2.0}, {"frustasi", -2.0},

	// Trading actions, negative
	{"sell", -1.5}, {"jual", -1.5}, {"exit", -1.0}, {"weak", -1.5}, {"lemah", -1.5},
	{"resistance kuat", -1.5}, {"strong resistance", -1.5},

	// Market microstructure, negative. "arb" is auto-rejection bawah,
	// the IDX daily lower price limit.
	{"arb", -2.0}, {"auto reject bawah", -2.0}, {"auto rejection bawah", -2.0},
	{"limit down", -2.5}, {"suspend turun", -2.5},
	{"volume kecil", -1.0}, {"volume sepi", -1.5}, {"low volume", -1.0},
	{"support jebol", -2.5}, {"break support", -2.5},
	{"death cross", -2.5}, {"breakdown support", -2.5},

	// Emoji, negative
	{"📉", -2.0}, {"😭", -2.0}, {"😢", -1.5}, {"💔", -2.0}, {"😞", -1.5},
	{"👎", -1.5}, {"😡", -2.0}, {"🤬", -2.5}, {"⬇️", -2.0}, {"↘️", -2.0},
}
