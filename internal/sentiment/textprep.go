package sentiment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
)

var (
	noisePattern  = regexp.MustCompile(`http\S+|www\S+|@\w+|#\w+`)
	tickerPattern = regexp.MustCompile(`\$([a-zA-Z]{2,5})`)
	// Strip punctuation but keep letters, digits and the common emoji
	// blocks the lexicon uses.
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s` +
		`\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}]`)
)

// Informal Indonesian chat filler that the generic stopword lists do
// not cover.
var slangStopwords = map[string]bool{
	"ga": true, "gak": true, "yg": true, "dgn": true, "dg": true, "sm": true,
	"sama": true, "bgt": true, "banget": true, "dong": true, "sih": true,
	"kok": true, "udah": true, "udh": true, "dah": true, "aja": true,
	"aj": true, "jg": true, "kl": true, "kalo": true, "kalau": true,
	"klo": true, "tp": true, "trs": true, "terus": true, "lgi": true,
	"lagi": true, "lg": true, "gmn": true, "gimana": true, "bgm": true,
	"bagaimana": true, "gt": true, "gitu": true, "gini": true,
	"begini": true, "begitu": true, "kayak": true, "kyk": true,
	"seperti": true, "nya": true,
}

// CleanForWordCloud lowercases text and strips URLs, mentions,
// hashtags, punctuation, and stopwords so only meaningful words
// remain. Cashtags like $EMAS keep their symbol without the dollar
// sign, and emoji tokens survive every filter pass.
func CleanForWordCloud(text string) string {
	text = tickerPattern.ReplaceAllString(text, "$1")
	text = strings.ToLower(text)
	text = noisePattern.ReplaceAllString(text, "")
	text = punctPattern.ReplaceAllString(text, " ")

	var kept []string
	for _, word := range strings.Fields(text) {
		if isEmojiToken(word) {
			kept = append(kept, word)
			continue
		}
		if slangStopwords[word] || utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if isStopword(word) {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// isStopword checks the word against the generic Indonesian and
// English lists. CleanString returns an empty string for a token the
// list covers.
func isStopword(word string) bool {
	if strings.TrimSpace(stopwords.CleanString(word, "id", false)) == "" {
		return true
	}
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}

func isEmojiToken(word string) bool {
	for _, r := range word {
		if !isEmojiRune(r) {
			return false
		}
	}
	return word != ""
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F:
		return true
	case r >= 0x1F300 && r <= 0x1F5FF:
		return true
	case r >= 0x1F680 && r <= 0x1F6FF:
		return true
	case r >= 0x1F1E0 && r <= 0x1F1FF:
		return true
	}
	return false
}

// MeaningfulWords extracts word-cloud candidates from text: cleaned
// words of at least minLen runes that are either lexicon terms,
// cashtag symbols from the raw text, or plain words of 4+ letters.
// Emoji tokens count when the lexicon carries them.
func MeaningfulWords(text string, minLen int, lexicon *Lexicon) []string {
	if minLen <= 0 {
		minLen = 3
	}
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}

	tickers := make(map[string]bool)
	for _, match := range tickerPattern.FindAllStringSubmatch(text, -1) {
		tickers[strings.ToLower(match[1])] = true
	}

	var meaningful []string
	for _, word := range strings.Fields(CleanForWordCloud(text)) {
		if lexicon.Contains(word) || tickers[word] {
			meaningful = append(meaningful, word)
			continue
		}
		if isAlpha(word) && utf8.RuneCountInString(word) >= max(minLen, 4) {
			meaningful = append(meaningful, word)
		}
	}
	return meaningful
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}
