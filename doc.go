// A lexer and recursive-descent parser for the Kotlin source language.
//
// Given Kotlin source text, Lex produces a flat token stream with
// positional metadata, and Parse produces a typed abstract syntax tree
// for a complete compilation unit or an interactive script. No semantic
// analysis (name resolution, type checking) is performed — the result
// is a syntax tree only.
//
// A tiny example:
//
//	p, err := kopyt.NewParser(`package a
//
//	fun main() {
//	    println("hi")
//	}`)
//	if err != nil {
//	    panic(err)
//	}
//	file, err := p.Parse()
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(file.Package.Name) // Output: a
package kopyt
