// Package style implements the style-module contract (C14): a
// Repository of named recognizer instances, a Mapping wiring them into
// the context-trigger table, and a Defaults set of named settings.
// Default returns the ready-to-use configuration this
// module's own recognizers expect; a different style module could
// swap the Mapping/Repository for an entirely different grammar while
// reusing the same markup.Dispatcher machinery.
package style

import "github.com/LaudateCorpus1/lexor-parser-default/markup"

// inlineTriggers is the byte set that interrupts plain-text
// accumulation inside inline content: everything that can start an
// inline-only construct, plus '\n' so a containing paragraph or list
// item can check for its own closing condition at each line boundary,
// and '{' and '#' so a header can close where its text ends, before a
// trailing attribute block or closing hashes.
const inlineTriggers = "`&\\$'\"<[!%:@*_\n{#"

const listItemTriggers = inlineTriggers + "*+^0123456789"

// Repository is the full set of this style's recognizer instances,
// keyed by name, mirroring the `REPOSITORY` dict the style-module
// contract describes. Holding them here (rather than constructing new
// instances per Mapping entry) lets a caller look one up directly,
// e.g. for documentation or CLI "list known recognizers" tooling.
func Repository() map[string]markup.Recognizer {
	recs := []markup.Recognizer{
		markup.NewEmptyRecognizer(),
		markup.NewEntityRecognizer(),
		markup.NewCommentRecognizer(),
		markup.NewDoctypeRecognizer(),
		markup.NewProcessingInstructionRecognizer(),
		markup.NewElementRecognizer(),
		markup.NewAtxHeaderRecognizer(),
		markup.NewSetextHeaderRecognizer(),
		markup.NewHrRecognizer(),
		markup.NewMetaRecognizer(),
		markup.NewCodeInlineRecognizer(),
		markup.NewFencedCodeRecognizer(),
		markup.NewIndentedCodeRecognizer(),
		markup.NewLatexInlineRecognizer(),
		markup.NewLatexDisplayRecognizer(),
		markup.NewListRecognizer(),
		markup.NewListItemRecognizer(),
		markup.NewQuoteRecognizer(),
		markup.NewReferenceBlockRecognizer(),
		markup.NewReferenceInlineRecognizer(),
		markup.NewMacroRecognizer(),
		markup.NewAutoLinkRecognizer(),
		markup.NewAutoMailRecognizer(),
		markup.NewParagraphRecognizer(),
		markup.NewEvalRecognizer(),
		markup.NewEmStrongRecognizer(),
		markup.NewStrongRecognizer(),
		markup.NewEmRecognizer(),
		markup.NewStrongEmRecognizer(),
		markup.NewUnderscoreStrongRecognizer(),
		markup.NewUnderscoreEmRecognizer(),
		markup.NewSmartEmRecognizer(),
	}
	repo := make(map[string]markup.Recognizer, len(recs))
	for _, r := range recs {
		repo[r.Name()] = r
	}
	return repo
}

// Defaults is the DEFAULTS table the style-module contract describes:
// named on/off settings. It lists "inline" as "on", but nothing in
// this module reads it: Mapping and Default always build the full
// block-level table, and the writers do not consult it either.
func Defaults() map[string]string {
	return map[string]string{"inline": "on"}
}

// Mapping returns the resolved context-trigger table (C5) for this
// style: which recognizers run inside which containing element, and
// on which bytes.
//
// The single-underscore slot is filled by SmartEmNP rather than the
// plain underscore recognizer: SmartEmNP adds a word-boundary check on
// the opening '_' and skips candidate closers followed by a letter or
// '&', which keeps snake_case-style identifiers from being read as
// emphasis. Its closer search differs from the plain form's, so for a
// few inputs (e.g. "_a _b c_") it accepts a span the plain form
// rejects. Only one of the two is registered for the '_' byte. The plain
// underscore recognizer still lives in Repository for a style that
// wants it instead.
func Mapping() markup.Mapping {
	repo := Repository()
	pick := func(names ...string) []markup.Recognizer {
		out := make([]markup.Recognizer, 0, len(names))
		for _, n := range names {
			out = append(out, repo[n])
		}
		return out
	}

	return markup.Mapping{
		// #document is block level: essentially any byte may start a
		// new block construct (most commonly a paragraph), so it never
		// accumulates a plain-text run before trying recognizers.
		markup.DocumentRootName: {
			TriggerAll: true,
			Recognizers: pick(
				"MetaNP",
				"CommentNP",
				"DocumentTypeNP",
				"ProcessingInstructionNP",
				"EvalNP",
				"ElementNP",
				"ReferenceBlockNP",
				"SetextHeaderNP", // before HrNP: see DESIGN.md Open Questions #1
				"HrNP",
				"AtxHeaderNP",
				"FencedCodeNP",
				"IndentedCodeNP",
				"ListNP",
				"LatexDisplayNP",
				"EmptyNP",
				"ParagraphNP",
			),
		},

		// __default__ is inline content: ordinary text is the common
		// case, so only specific trigger bytes interrupt accumulation.
		// ElementNP is deliberately absent here: it is a block-level
		// construct only (see DESIGN.md's note on style.Mapping), so a literal
		// '<' inside running prose falls through to EntityNP's stray-'<'
		// handling instead of being retried and re-declined.
		"__default__": {
			Triggers: inlineTriggers,
			Recognizers: pick(
				"CodeInlineNP",
				"LatexInlineNP",
				"ReferenceInlineNP",
				"***EmNP",
				"**EmNP",
				"*EmNP",
				"___EmNP",
				"__EmNP",
				"SmartEmNP",
				"QuoteNP",
				"AutoLinkNP",
				"AutoMailNP",
				"EntityNP",
			),
		},

		// A paragraph's content is ordinary inline content; its own
		// Close (not looked up here — it lives on the frame that opened
		// it) handles the blank-line/interrupting-tag check.
		"p": {Alias: "__default__"},

		// A list never holds anything but list items; let every
		// position try to open one.
		"list": {
			TriggerAll:  true,
			Recognizers: pick("ListItemNP"),
		},

		// A list item's body is inline content that may itself start a
		// nested list.
		"list_item": {
			Triggers: listItemTriggers,
			Recognizers: pick(
				"CodeInlineNP",
				"LatexInlineNP",
				"ReferenceInlineNP",
				"***EmNP",
				"**EmNP",
				"*EmNP",
				"___EmNP",
				"__EmNP",
				"SmartEmNP",
				"ListNP",
				"QuoteNP",
				"AutoLinkNP",
				"AutoMailNP",
				"EntityNP",
			),
		},

		// A define block holds nothing but macro definitions and blank
		// lines between them.
		"define": {
			TriggerAll:  true,
			Recognizers: pick("MacroNP", "EmptyNP"),
		},

		// body and section are plain block containers: same content
		// model as the document root.
		"body":    {Alias: markup.DocumentRootName},
		"section": {Alias: markup.DocumentRootName},

		// align and equation hold nothing but their own raw content;
		// no Mapping-listed recognizer ever opens inside one, only the
		// opening recognizer's own Close ends it. The trigger byte
		// exists solely to stop naive text accumulation early enough
		// for that Close check to run at the right byte.
		"align":    {Triggers: "%"},
		"equation": {Triggers: "%"},

		// codeblock is the same shape as align/equation, interrupting
		// on the bytes that can start its own closing fence.
		"codeblock": {Triggers: "<%"},
	}
}

// Default returns a ready-to-use markup.Config wired to this style's
// Mapping, with auto-linking on and no code-sink validation (a caller
// that wants embedded code validated sets Config.CodeSink itself,
// e.g. to codesink.GoSink{}).
func Default() *markup.Config {
	cfg := markup.DefaultConfig()
	cfg.Mapping = Mapping()
	return cfg
}
