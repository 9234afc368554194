package kopyt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseFile(t *testing.T, src string) *KotlinFile {
	t.Helper()
	p, err := NewParser(src)
	assert.NoError(t, err)
	file, err := p.Parse()
	assert.NoError(t, err)
	return file
}

func TestParsePackageAndImports(t *testing.T) {
	file := parseFile(t, `
package com.example.app

import kotlin.collections.List
import kotlin.collections.*
import kotlin.io.println as out
`)
	assert.Equal(t, "com.example.app", file.Package.Name)
	assert.Len(t, file.Imports, 3)
	assert.Equal(t, "kotlin.collections.List", file.Imports[0].Name)
	assert.False(t, file.Imports[0].Wildcard)
	assert.True(t, file.Imports[1].Wildcard)
	assert.Equal(t, "out", file.Imports[2].Alias)
}

func TestParseShebangLine(t *testing.T) {
	file := parseFile(t, "#!/usr/bin/env kotlin\nval x = 1\n")
	assert.NotNil(t, file.Shebang)
}

func TestParseSimplePropertyDeclaration(t *testing.T) {
	file := parseFile(t, "val x: Int = 42")
	assert.Len(t, file.Declarations, 1)
	prop, ok := file.Declarations[0].(*PropertyDeclaration)
	assert.True(t, ok)
	assert.Equal(t, "val", prop.Mutability)
	decl, ok := prop.Declaration.(*VariableDeclaration)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.Name)
}

func TestParseFunctionDeclarationWithBlockBody(t *testing.T) {
	file := parseFile(t, `
fun add(a: Int, b: Int): Int {
    return a + b
}
`)
	fn, ok := file.Declarations[0].(*FunctionDeclaration)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Parameter.Name)
	assert.Equal(t, "b", fn.Parameters[1].Parameter.Name)
}

func TestParseFunctionDeclarationWithExpressionBody(t *testing.T) {
	file := parseFile(t, "fun square(x: Int): Int = x * x")
	fn := file.Declarations[0].(*FunctionDeclaration)
	assert.Equal(t, "square", fn.Name)
	assert.NotNil(t, fn.Body)
}

func TestParseFunctionWithReceiver(t *testing.T) {
	file := parseFile(t, "fun String.shout(): String = this.uppercase()")
	fn := file.Declarations[0].(*FunctionDeclaration)
	assert.NotNil(t, fn.Receiver)
	assert.Equal(t, "shout", fn.Name)
}

func TestParsePropertyWithReceiver(t *testing.T) {
	file := parseFile(t, "val String.lastIndex: Int get() = this.length - 1")
	prop := file.Declarations[0].(*PropertyDeclaration)
	assert.NotNil(t, prop.Receiver)
}

func TestParseClassWithPrimaryConstructor(t *testing.T) {
	file := parseFile(t, `
class Point(val x: Int, val y: Int) {
    fun length(): Int = x + y
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	assert.Equal(t, "Point", cls.Name)
	assert.NotNil(t, cls.PrimaryConstructor)
	assert.Len(t, cls.PrimaryConstructor.Parameters, 2)
	body, ok := cls.Body.(*ClassBody)
	assert.True(t, ok)
	assert.Len(t, body.Members, 1)
}

func TestParseClassWithDelegationSpecifiers(t *testing.T) {
	file := parseFile(t, `
class Circle(radius: Int) : Shape(radius), Drawable {
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	assert.Len(t, cls.DelegationSpecifiers, 2)
}

func TestParseExplicitDelegation(t *testing.T) {
	file := parseFile(t, `
class Wrapper(base: Base) : Base by base {
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	assert.Len(t, cls.DelegationSpecifiers, 1)
	_, ok := cls.DelegationSpecifiers[0].(*ExplicitDelegation)
	assert.True(t, ok)
}

func TestParseInterfaceDeclaration(t *testing.T) {
	file := parseFile(t, `
interface Shape {
    fun area(): Double
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	assert.Equal(t, ClassKindInterface, cls.Kind)
}

func TestParseFunInterfaceDeclaration(t *testing.T) {
	file := parseFile(t, `
fun interface Runnable {
    fun run()
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	assert.Equal(t, ClassKindFunInterface, cls.Kind)
}

func TestParseEnumClass(t *testing.T) {
	file := parseFile(t, `
enum class Color {
    RED, GREEN, BLUE
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	assert.Equal(t, ClassKindEnum, cls.Kind)
	body, ok := cls.Body.(*EnumClassBody)
	assert.True(t, ok)
	assert.Len(t, body.Entries, 3)
}

func TestParseEnumClassWithArguments(t *testing.T) {
	file := parseFile(t, `
enum class Planet(val mass: Double) {
    EARTH(5.97), MARS(0.642);

    fun describe(): String = "mass=" + mass
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	body, ok := cls.Body.(*EnumClassBody)
	assert.True(t, ok)
	assert.Len(t, body.Entries, 2)
	assert.Len(t, body.Members, 1)
}

func TestParseObjectDeclaration(t *testing.T) {
	file := parseFile(t, `
object Singleton {
    val name: String = "single"
}
`)
	obj, ok := file.Declarations[0].(*ObjectDeclaration)
	assert.True(t, ok)
	assert.Equal(t, "Singleton", obj.Name)
}

func TestParseCompanionObject(t *testing.T) {
	file := parseFile(t, `
class Factory {
    companion object {
        fun create(): Factory = Factory()
    }
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	body := cls.Body.(*ClassBody)
	var found bool
	for _, m := range body.Members {
		if _, ok := m.(*CompanionObject); ok {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseSecondaryConstructorWithDelegation(t *testing.T) {
	file := parseFile(t, `
class Person(val name: String) {
    constructor(name: String, age: Int) : this(name) {
    }
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	body := cls.Body.(*ClassBody)
	var found bool
	for _, m := range body.Members {
		if sc, ok := m.(*SecondaryConstructor); ok {
			found = true
			assert.NotNil(t, sc.Delegation)
			assert.Equal(t, "this", sc.Delegation.Delegate)
		}
	}
	assert.True(t, found)
}

func TestParseAnonymousInitializerBlock(t *testing.T) {
	file := parseFile(t, `
class Foo {
    init {
        println("created")
    }
}
`)
	cls := file.Declarations[0].(*ClassDeclaration)
	body := cls.Body.(*ClassBody)
	_, ok := body.Members[0].(*AnonymousInitializer)
	assert.True(t, ok)
}

func TestParseTypeAlias(t *testing.T) {
	file := parseFile(t, "typealias StringList = List<String>")
	alias, ok := file.Declarations[0].(*TypeAlias)
	assert.True(t, ok)
	assert.Equal(t, "StringList", alias.Name)
}

func TestParseGetterSetterInDeclaredOrder(t *testing.T) {
	file := parseFile(t, `
var counter: Int = 0
    get() = field
    set(value) {
        field = value
    }
`)
	prop := file.Declarations[0].(*PropertyDeclaration)
	assert.NotNil(t, prop.Getter)
	assert.NotNil(t, prop.Setter)
}

func TestParseSetterBeforeGetter(t *testing.T) {
	file := parseFile(t, `
var counter: Int = 0
    set(value) {
        field = value
    }
    get() = field
`)
	prop := file.Declarations[0].(*PropertyDeclaration)
	assert.NotNil(t, prop.Getter)
	assert.NotNil(t, prop.Setter)
}

func TestParseEmptySetterParameterListIsRejected(t *testing.T) {
	p, err := NewParser(`
var counter: Int = 0
    set() {
    }
`)
	assert.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}

func TestParsePropertyDelegate(t *testing.T) {
	file := parseFile(t, "val lazy: Int by lazyProvider")
	prop := file.Declarations[0].(*PropertyDeclaration)
	assert.NotNil(t, prop.Delegate)
}

func TestParseMultiVariableDeclaration(t *testing.T) {
	file := parseFile(t, "val (a, b) = pair")
	prop := file.Declarations[0].(*PropertyDeclaration)
	multi, ok := prop.Declaration.(*MultiVariableDeclaration)
	assert.True(t, ok)
	assert.Len(t, multi.Declarations, 2)
}

func TestParseSoftKeywordAsParameterName(t *testing.T) {
	file := parseFile(t, "fun f(data: Int, value: Int): Int = data + value")
	fn := file.Declarations[0].(*FunctionDeclaration)
	assert.Equal(t, "data", fn.Parameters[0].Parameter.Name)
	assert.Equal(t, "value", fn.Parameters[1].Parameter.Name)
}

func TestParseGenericFunctionWithTypeConstraints(t *testing.T) {
	file := parseFile(t, `
fun <T : Comparable<T>> max(a: T, b: T): T {
    return if (a > b) a else b
}
`)
	fn := file.Declarations[0].(*FunctionDeclaration)
	assert.Len(t, fn.TypeParameters, 1)
}

func TestParseVarargAndDefaultValueParameters(t *testing.T) {
	file := parseFile(t, `fun f(vararg items: Int, sep: String = ", ") { }`)
	fn := file.Declarations[0].(*FunctionDeclaration)
	assert.Len(t, fn.Parameters, 2)
	assert.NotNil(t, fn.Parameters[1].Default)
}

func TestParseAnnotatedDeclaration(t *testing.T) {
	file := parseFile(t, `
@Deprecated("use bar instead")
fun foo() { }
`)
	fn := file.Declarations[0].(*FunctionDeclaration)
	assert.Len(t, fn.Modifiers, 1)
}

func TestParseCompleteKotlinFileRoundTrips(t *testing.T) {
	src := `package com.example

import kotlin.math.abs

class Vector(val x: Double, val y: Double) {
    fun length(): Double {
        return abs(x) + abs(y)
    }
}

fun main() {
    val v = Vector(1.0, 2.0)
    println(v.length())
}`
	file := parseFile(t, src)
	assert.Len(t, file.Declarations, 2)
	assert.NotEmpty(t, file.String())
	assert.Equal(t, file.String(), parseFile(t, file.String()).String())
}
