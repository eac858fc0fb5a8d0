// Package i18n maps violation codes to human-readable messages.
package i18n

import "strings"

// Translator retrieves localized messages for violation codes. data provides
// optional parameters to embed in the message (for example, "expected" or
// "key"), referenced in templates as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl := t.template(code)
	if tmpl == "" {
		return code
	}
	for k, v := range data {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", v)
	}
	return tmpl
}

func (t dictTranslator) template(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です ({expected} が必要です)"
		case "invalid_enum":
			return "許可された値ではありません"
		case "required":
			return "必須プロパティ {key} が不足しています"
		case "unknown_key":
			return "未知のプロパティ {key} です"
		case "too_short":
			return "短すぎます (最小 {limit})"
		case "too_long":
			return "長すぎます (最大 {limit})"
		case "too_small":
			return "小さすぎます (最小 {limit})"
		case "too_big":
			return "大きすぎます (最大 {limit})"
		case "unresolved_reference":
			return "参照 {pointer} を解決できません"
		case "depth_exceeded":
			return "参照の再帰が深さ {limit} を超えました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "expected {expected}, got {actual}"
		case "invalid_enum":
			return "value is not one of the allowed values"
		case "invalid_const":
			return "value does not equal the declared constant"
		case "not_allowed":
			return "schema allows no value here"
		case "too_small":
			return "value is below the {kind} of {limit}"
		case "too_big":
			return "value is above the {kind} of {limit}"
		case "not_multiple_of":
			return "value is not a multiple of {divisor}"
		case "too_short":
			return "string is shorter than {limit} characters"
		case "too_long":
			return "string is longer than {limit} characters"
		case "too_few_items":
			return "array has fewer than {limit} items"
		case "too_many_items":
			return "array has more than {limit} items"
		case "too_few_properties":
			return "object has fewer than {limit} properties"
		case "too_many_properties":
			return "object has more than {limit} properties"
		case "pattern":
			return "string does not match pattern {pattern}"
		case "invalid_format":
			return "string is not a valid {format}"
		case "required":
			return "missing required property {key}"
		case "unknown_key":
			return "unknown property {key}"
		case "duplicate_items":
			return "array item duplicates the item at index {duplicateOf}"
		case "any_of_no_match":
			return "no alternative matched ({alternatives} tried)"
		case "one_of_no_match":
			return "no alternative matched ({alternatives} tried)"
		case "one_of_ambiguous":
			return "more than one alternative matched ({matched})"
		case "not_matched":
			return "value matches the forbidden schema"
		case "unresolved_reference":
			return "unresolved reference {pointer}"
		case "depth_exceeded":
			return "reference recursion exceeded depth {limit}"
		}
	}
	return ""
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
