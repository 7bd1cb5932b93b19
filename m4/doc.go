// Package m4 extracts symbol definitions from M4 and Autoconf sources.
//
// # Overview
//
// The [Scanner] reads the input one byte at a time and reports every macro
// definition (define, m4_define, AC_DEFUN and friends) and every shell-style
// variable assignment it meets to a [Sink] as a [Tag].
//
// # Notes and Policies.
//
//  1. The scanner is not a validating parser. It never reports syntax errors,
//     it only does its best with whatever it gets.
//  2. Quotes can be redefined at any time with changequote. A changequote call
//     with anything but two single-character arguments has no effect.
//  3. The input starts in the [DialectM4] dialect unless told otherwise, and
//     switches to [DialectAutoconf] the first time a macro with the AC_, AM_ or
//     AS_ prefix is called. The switch is permanent for the rest of the input.
//  4. Quoted text is skipped as a whole, so definitions inside macro bodies are
//     not reported.
//  5. Unbalanced quotes at the end of the input are silently dropped.
//
// # Dialects.
//
// Raw M4 quotes with "`" and "'". Autoconf quotes with "[" and "]" and also
// has to live with shell strings ("..." and `...`), which are skipped up to
// the closing character or the end of the line, whichever comes first.
//
// # Example.
//
//	var tags m4.Tags
//	s := m4.New(strings.NewReader("AC_DEFUN([my_macro], [...])"), &tags)
//	_ = s.Scan()
//	// tags: [{Kind: KindMacro, Name: "my_macro", Line: 1}]
package m4
