// Package voice implements the voice-guided complaint form: a linear state
// machine that walks a caller through the form fields one prompt at a time.
// Speech recognition and synthesis are injected as an Engine capability, so
// the machine runs against real audio hardware in the client and against
// scripted fakes in tests.
package voice

import (
	"errors"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// ErrUnavailable is returned when the speech capability is missing. The host
// form degrades to manual input instead of crashing.
var ErrUnavailable = errors.New("speech capability unavailable")

// Language selects the prompt and keyword language.
type Language string

const (
	LangEnglish Language = "en"
	LangTelugu  Language = "te"
)

// Field names one complaint form field, in the order the assistant fills
// them.
type Field string

const (
	FieldName        Field = "name"
	FieldVillage     Field = "village"
	FieldCategory    Field = "type"
	FieldDescription Field = "description"
)

type step struct {
	field    Field
	promptEN string
	promptTE string
}

// The fixed prompt sequence: name, village, category, description.
var steps = []step{
	{
		field:    FieldName,
		promptEN: "Please say your full name",
		promptTE: "దయచేసి మీ పూర్తి పేరు చెప్పండి",
	},
	{
		field:    FieldVillage,
		promptEN: "Please say your village or town name",
		promptTE: "దయచేసి మీ గ్రామం లేదా పట్టణం పేరు చెప్పండి",
	},
	{
		field:    FieldCategory,
		promptEN: "What type of sanitation issue? Say: drains, toilets, waste, water, sewage, or other",
		promptTE: "ఎలాంటి పరిశుభ్రత సమస్య? చెప్పండి: కాలువలు, టాయిలెట్లు, వ్యర్థాలు, నీరు, మురుగు, లేదా ఇతర",
	},
	{
		field:    FieldDescription,
		promptEN: "Please describe the problem in detail",
		promptTE: "దయచేసి సమస్యను వివరంగా వర్ణించండి",
	},
}

const (
	welcomeEN = "Welcome to voice complaint registration. I will guide you through the process."
	welcomeTE = "వాయిస్ ఫిర్యాదు నమోదుకు స్వాగతం. నేను మిమ్మల్ని ప్రక్రియ ద్వారా మార్గనిర్దేశం చేస్తాను."

	completionEN = "Voice input completed. Please review and submit your complaint."
	completionTE = "వాయిస్ ఇన్‌పుట్ పూర్తయింది. దయచేసి మీ ఫిర్యాదును సమీక్షించి సమర్పించండి."
)

// categoryKeyword pairs a spoken keyword with the category it maps to. The
// slice is ordered: the first keyword contained in the utterance wins, which
// keeps normalization deterministic.
type categoryKeyword struct {
	keyword  string
	category domain.ComplaintCategory
}

var categoryKeywords = []categoryKeyword{
	{"drains", domain.CategoryOverflowingDrains},
	{"కాలువలు", domain.CategoryOverflowingDrains},
	{"toilets", domain.CategoryLackOfToilets},
	{"టాయిలెట్లు", domain.CategoryLackOfToilets},
	{"waste", domain.CategoryWasteDisposal},
	{"వ్యర్థాలు", domain.CategoryWasteDisposal},
	{"water", domain.CategoryWaterContamination},
	{"నీరు", domain.CategoryWaterContamination},
	{"sewage", domain.CategoryBrokenSewage},
	{"మురుగు", domain.CategoryBrokenSewage},
	{"other", domain.CategoryOther},
	{"ఇతర", domain.CategoryOther},
}

func (s step) prompt(lang Language) string {
	if lang == LangTelugu {
		return s.promptTE
	}
	return s.promptEN
}

func welcome(lang Language) string {
	if lang == LangTelugu {
		return welcomeTE
	}
	return welcomeEN
}

func completion(lang Language) string {
	if lang == LangTelugu {
		return completionTE
	}
	return completionEN
}
