package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegExp       Code = 1006
	LexBadEscape                Code = 1007

	// Парсерные
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectExpression     Code = 2002
	SynExpectIdentifier     Code = 2003
	SynUnclosedParen        Code = 2004
	SynUnclosedBrace        Code = 2005
	SynUnclosedBracket      Code = 2006
	SynExpectSemicolon      Code = 2007
	SynInvalidAssignTarget  Code = 2008
	SynInvalidPattern       Code = 2009
	SynJSXMismatchedTag     Code = 2010
	SynJSXUnclosedElement   Code = 2011
	SynJSXExpectAttribute   Code = 2012
	SynJSXAdjacentElements  Code = 2013
	SynNoTemplate           Code = 2014
	SynUnsupportedStatement Code = 2015

	// Ошибки шаблона (структурные директивы, v-model, слоты)
	TplInfo                   Code = 3000
	TplVIfNoExpression        Code = 3001
	TplVElseNoAdjacentIf      Code = 3002
	TplVForNoExpression       Code = 3003
	TplVForMalformed          Code = 3004
	TplVShowNoExpression      Code = 3005
	TplVOnNoExpression        Code = 3006
	TplVModelNoExpression     Code = 3007
	TplVModelMalformed        Code = 3008
	TplVModelOnScopeVariable  Code = 3009
	TplVModelOnInvalidElement Code = 3010
	TplVModelOnFileInput      Code = 3011
	TplVModelUnnecessaryValue Code = 3012
	TplVModelArgOnElement     Code = 3013
	TplVSlotDuplicateNames    Code = 3014
	TplVSlotMixedUsage        Code = 3015
	TplVSlotMisplaced         Code = 3016
	TplVSlotExtraneousDefault Code = 3017
	TplVHtmlNoExpression      Code = 3018
	TplVHtmlWithChildren      Code = 3019
	TplVTextNoExpression      Code = 3020
	TplVTextWithChildren      Code = 3021
	TplVMemoNoExpression      Code = 3022
	TplSSRUnsupported         Code = 3023
	TplUnknownDirective       Code = 3024

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCacheError     Code = 4003

	// Ошибки проекта / конфигурации
	ProjInfo          Code = 5000
	ProjBadConfig     Code = 5001
	ProjUnknownOption Code = 5002

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexUnterminatedTemplate:     "Unterminated template literal",
	LexUnterminatedRegExp:       "Unterminated regular expression",
	LexBadEscape:                "Bad escape sequence",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectExpression:         "Expect expression",
	SynExpectIdentifier:         "Expect identifier",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectSemicolon:          "Expect semicolon",
	SynInvalidAssignTarget:      "Invalid assignment target",
	SynInvalidPattern:           "Invalid destructuring pattern",
	SynJSXMismatchedTag:         "Mismatched JSX closing tag",
	SynJSXUnclosedElement:       "Unclosed JSX element",
	SynJSXExpectAttribute:       "Expect JSX attribute",
	SynJSXAdjacentElements:      "Adjacent JSX elements must be wrapped in a fragment",
	SynNoTemplate:               "Source contains no JSX template",
	SynUnsupportedStatement:     "Unsupported statement",
	TplInfo:                     "Template information",
	TplVIfNoExpression:          "v-if/v-else-if is missing expression",
	TplVElseNoAdjacentIf:        "v-else/v-else-if has no adjacent v-if or v-else-if",
	TplVForNoExpression:         "v-for is missing expression",
	TplVForMalformed:            "v-for has invalid expression",
	TplVShowNoExpression:        "v-show is missing expression",
	TplVOnNoExpression:          "v-on is missing expression",
	TplVModelNoExpression:       "v-model is missing expression",
	TplVModelMalformed:          "v-model value must be a valid JavaScript member expression",
	TplVModelOnScopeVariable:    "v-model cannot be used on a v-for or v-slot scope variable",
	TplVModelOnInvalidElement:   "v-model can only be used on <input>, <textarea> and <select> elements",
	TplVModelOnFileInput:        "v-model cannot be used on file inputs since they are read-only",
	TplVModelUnnecessaryValue:   "Unnecessary value binding used alongside v-model",
	TplVModelArgOnElement:       "v-model argument is not supported on plain elements",
	TplVSlotDuplicateNames:      "Duplicate slot names found",
	TplVSlotMixedUsage:          "Mixed v-slot usage on both the component and nested <template>",
	TplVSlotMisplaced:           "v-slot can only be used on components or <template> tags",
	TplVSlotExtraneousDefault:   "Extraneous children found when component already has explicitly named default slot",
	TplVHtmlNoExpression:        "v-html is missing expression",
	TplVHtmlWithChildren:        "v-html will override element children",
	TplVTextNoExpression:        "v-text is missing expression",
	TplVTextWithChildren:        "v-text will override element children",
	TplVMemoNoExpression:        "v-memo is missing expression",
	TplSSRUnsupported:           "Server-side rendering output is not supported",
	TplUnknownDirective:         "Unknown built-in directive",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
	IOCacheError:                "Compile cache error",
	ProjInfo:                    "Project information",
	ProjBadConfig:               "Invalid jsxc.toml",
	ProjUnknownOption:           "Unknown configuration option",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TPL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
