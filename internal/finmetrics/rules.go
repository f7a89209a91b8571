package finmetrics

import "regexp"

// Rule binds a metric name to the compiled pattern that locates it in flat
// text. Adding a metric to the vocabulary means adding a row here; record
// ordering follows this table.
type Rule struct {
	Metric  string
	Pattern *regexp.Regexp
}

// numberToken matches an optionally signed financial amount: optional currency
// symbol, thousands separators, decimals, or the whole amount wrapped in
// parentheses (accounting negative).
const numberToken = `(\(\s*[$€£]?\s*[0-9][0-9,]*(?:\.[0-9]+)?\s*\)|[$€£]?\s*[0-9][0-9,]*(?:\.[0-9]+)?)`

// filler tolerates punctuation, currency symbols and "of" between the label
// and the amount, but never crosses a line break.
const filler = `(?:\s+of)?[^A-Za-z0-9\r\n]*?`

func compileRule(metric string, labelPattern string) Rule {
	return Rule{
		Metric:  metric,
		Pattern: regexp.MustCompile(`(?i)\b` + labelPattern + filler + numberToken),
	}
}

// Vocabulary returns the fixed rule table in vocabulary order.
func Vocabulary() []Rule {
	return []Rule{
		compileRule("Revenue", `revenues?`),
		compileRule("Expenses", `expenses?`),
		compileRule("Profit", `profits?`),
		compileRule("Net Income", `net\s+income`),
		compileRule("Gross Profit", `gross\s+profit`),
		compileRule("Assets", `assets`),
		compileRule("Liabilities", `liabilit(?:y|ies)`),
		compileRule("Equity", `equity`),
	}
}
