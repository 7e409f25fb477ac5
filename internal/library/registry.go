// Package library implements the BareScript built-in function table.
//
// Every built-in is total: argument type mismatches produce a sentinel return
// value (null, -1, 0 or false) rather than an error.
package library

import (
	"barescript/internal/value"
)

// Options is the context passed to every built-in.
type Options = value.Options

// ScriptFunctions is the built-in script function table.
var ScriptFunctions = GetScriptFunctions()

// ExpressionFunctions maps expression-language names onto entries of
// ScriptFunctions.
var ExpressionFunctions = expressionFunctions(ScriptFunctions)

// GetScriptFunctions builds a fresh built-in table.
func GetScriptFunctions() map[string]*value.Function {
	fns := map[string]*value.Function{

		"arrayCopy":        fnArrayCopy(),
		"arrayExtend":      fnArrayExtend(),
		"arrayGet":         fnArrayGet(),
		"arrayIndexOf":     fnArrayIndexOf(),
		"arrayJoin":        fnArrayJoin(),
		"arrayLastIndexOf": fnArrayLastIndexOf(),
		"arrayLength":      fnArrayLength(),
		"arrayNew":         fnArrayNew(),
		"arrayNewSize":     fnArrayNewSize(),
		"arrayPop":         fnArrayPop(),
		"arrayPush":        fnArrayPush(),
		"arraySet":         fnArraySet(),
		"arrayShift":       fnArrayShift(),
		"arraySlice":       fnArraySlice(),
		"arraySort":        fnArraySort(),

		"dataAggregate": fnDataAggregate(),
		"dataParseCSV":  fnDataParseCSV(),
		"dataSort":      fnDataSort(),
		"dataTop":       fnDataTop(),
		"dataValidate":  fnDataValidate(),

		"datetimeDay":         fnDatetimeDay(),
		"datetimeHour":        fnDatetimeHour(),
		"datetimeISOFormat":   fnDatetimeISOFormat(),
		"datetimeISOParse":    fnDatetimeISOParse(),
		"datetimeMillisecond": fnDatetimeMillisecond(),
		"datetimeMinute":      fnDatetimeMinute(),
		"datetimeMonth":       fnDatetimeMonth(),
		"datetimeNew":         fnDatetimeNew(),
		"datetimeNow":         fnDatetimeNow(),
		"datetimeSecond":      fnDatetimeSecond(),
		"datetimeToday":       fnDatetimeToday(),
		"datetimeYear":        fnDatetimeYear(),

		"jsonParse":     fnJSONParse(),
		"jsonStringify": fnJSONStringify(),

		"mathAbs":    fnMathAbs(),
		"mathAcos":   fnMathAcos(),
		"mathAsin":   fnMathAsin(),
		"mathAtan":   fnMathAtan(),
		"mathAtan2":  fnMathAtan2(),
		"mathCeil":   fnMathCeil(),
		"mathCos":    fnMathCos(),
		"mathFloor":  fnMathFloor(),
		"mathLn":     fnMathLn(),
		"mathLog":    fnMathLog(),
		"mathMax":    fnMathMax(),
		"mathMin":    fnMathMin(),
		"mathPi":     fnMathPi(),
		"mathRandom": fnMathRandom(),
		"mathRound":  fnMathRound(),
		"mathSign":   fnMathSign(),
		"mathSin":    fnMathSin(),
		"mathSqrt":   fnMathSqrt(),
		"mathTan":    fnMathTan(),

		"numberParseFloat": fnNumberParseFloat(),
		"numberParseInt":   fnNumberParseInt(),
		"numberToFixed":    fnNumberToFixed(),

		"objectAssign": fnObjectAssign(),
		"objectCopy":   fnObjectCopy(),
		"objectDelete": fnObjectDelete(),
		"objectGet":    fnObjectGet(),
		"objectHas":    fnObjectHas(),
		"objectKeys":   fnObjectKeys(),
		"objectNew":    fnObjectNew(),
		"objectSet":    fnObjectSet(),

		"regexEscape":   fnRegexEscape(),
		"regexMatch":    fnRegexMatch(),
		"regexMatchAll": fnRegexMatchAll(),
		"regexNew":      fnRegexNew(),
		"regexReplace":  fnRegexReplace(),
		"regexSplit":    fnRegexSplit(),

		// string functions
		"stringCharCodeAt":   fnStringCharCodeAt(),
		"stringEndsWith":     fnStringEndsWith(),
		"stringFromCharCode": fnStringFromCharCode(),
		"stringIndexOf":      fnStringIndexOf(),
		"stringLastIndexOf":  fnStringLastIndexOf(),
		"stringLength":       fnStringLength(),
		"stringLower":        fnStringLower(),
		"stringNew":          fnStringNew(),
		"stringRepeat":       fnStringRepeat(),
		"stringReplace":      fnStringReplace(),
		"stringSlice":        fnStringSlice(),
		"stringSplit":        fnStringSplit(),
		"stringStartsWith":   fnStringStartsWith(),
		"stringTrim":         fnStringTrim(),
		"stringUpper":        fnStringUpper(),

		"systemBoolean":   fnSystemBoolean(),
		"systemCompare":   fnSystemCompare(),
		"systemFetch":     fnSystemFetch(),
		"systemGlobalGet": fnSystemGlobalGet(),
		"systemGlobalSet": fnSystemGlobalSet(),
		"systemIs":        fnSystemIs(),
		"systemLog":       fnSystemLog(),
		"systemLogDebug":  fnSystemLogDebug(),
		"systemPartial":   fnSystemPartial(),
		"systemType":      fnSystemType(),

		"urlEncode":          fnURLEncode(),
		"urlEncodeComponent": fnURLEncodeComponent(),
	}

	for name, fn := range fns {
		fn.Name = name
	}
	return fns
}

// ExpressionFunctionMap maps expression function names to script function
// names.
var ExpressionFunctionMap = map[string]string{
	"abs":          "mathAbs",
	"acos":         "mathAcos",
	"asin":         "mathAsin",
	"atan":         "mathAtan",
	"atan2":        "mathAtan2",
	"ceil":         "mathCeil",
	"charCodeAt":   "stringCharCodeAt",
	"cos":          "mathCos",
	"date":         "datetimeNew",
	"day":          "datetimeDay",
	"endsWith":     "stringEndsWith",
	"indexOf":      "stringIndexOf",
	"fixed":        "numberToFixed",
	"floor":        "mathFloor",
	"fromCharCode": "stringFromCharCode",
	"hour":         "datetimeHour",
	"lastIndexOf":  "stringLastIndexOf",
	"len":          "stringLength",
	"lower":        "stringLower",
	"ln":           "mathLn",
	"log":          "mathLog",
	"max":          "mathMax",
	"min":          "mathMin",
	"millisecond":  "datetimeMillisecond",
	"minute":       "datetimeMinute",
	"month":        "datetimeMonth",
	"now":          "datetimeNow",
	"parseInt":     "numberParseInt",
	"parseFloat":   "numberParseFloat",
	"pi":           "mathPi",
	"rand":         "mathRandom",
	"replace":      "stringReplace",
	"rept":         "stringRepeat",
	"round":        "mathRound",
	"second":       "datetimeSecond",
	"sign":         "mathSign",
	"sin":          "mathSin",
	"slice":        "stringSlice",
	"sqrt":         "mathSqrt",
	"startsWith":   "stringStartsWith",
	"text":         "stringNew",
	"tan":          "mathTan",
	"today":        "datetimeToday",
	"trim":         "stringTrim",
	"upper":        "stringUpper",
	"year":         "datetimeYear",
}

func expressionFunctions(scriptFns map[string]*value.Function) map[string]*value.Function {
	fns := make(map[string]*value.Function, len(ExpressionFunctionMap))
	for exprName, scriptName := range ExpressionFunctionMap {
		if fn, ok := scriptFns[scriptName]; ok {
			fns[exprName] = fn
		}
	}
	return fns
}

// Lookup returns a script function by name, or an expression function when
// expr is set.
func Lookup(name string, expr bool) (*value.Function, bool) {
	if expr {
		fn, ok := ExpressionFunctions[name]
		return fn, ok
	}
	fn, ok := ScriptFunctions[name]
	return fn, ok
}
