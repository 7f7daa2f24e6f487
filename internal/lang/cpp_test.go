package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for C/C++ extraction:
// - Class and struct definitions with base-class clauses
// - Inline methods belong to their class
// - Out-of-line members ("void Foo::bar()") attach to the class entity
// - An out-of-line member before the class definition merges into one entity
// - Forward declarations produce no class
// - Pointer-returning functions resolve to the declared name
// - C files extract free functions and includes

func TestCpp_ClassWithBases(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".cpp", `#include <vector>
#include "shape.h"

class Circle : public Shape, private Drawable {
public:
    double area(double scale) { return scale; }
};
`)

	cls := findClass(t, fs.Classes, "Circle")
	assert.Equal(t, []string{"Shape", "Drawable"}, cls.BaseNames)

	area := findFunc(t, cls.Methods, "area")
	assert.Equal(t, []string{"scale"}, area.Parameters)

	require.Len(t, fs.Imports, 2)
	assert.Equal(t, "#include <vector>", fs.Imports[0])
	assert.Equal(t, `#include "shape.h"`, fs.Imports[1])
}

func TestCpp_OutOfLineMemberAttaches(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".cpp", `class Parser {
public:
    void reset();
};

void Parser::reset() {
    // no-op
}

int* makeBuffer(int size) {
    return nullptr;
}
`)

	cls := findClass(t, fs.Classes, "Parser")
	reset := findFunc(t, cls.Methods, "reset")
	assert.Equal(t, "reset", reset.Name)

	require.Len(t, fs.Functions, 1)
	mk := fs.Functions[0]
	assert.Equal(t, "makeBuffer", mk.Name)
	assert.Equal(t, []string{"size"}, mk.Parameters)
}

func TestCpp_OutOfLineMemberBeforeClass(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".cpp", `void Foo::bar() {
}

class Foo : public Base {
public:
    void bar();
    int baz(int v) { return v; }
};
`)

	assert.Equal(t, []string{"Foo"}, classNames(fs.Classes))
	cls := fs.Classes[0]
	assert.Equal(t, []string{"Base"}, cls.BaseNames)
	findFunc(t, cls.Methods, "bar")
	baz := findFunc(t, cls.Methods, "baz")
	assert.Equal(t, []string{"v"}, baz.Parameters)
	assert.Equal(t, 1, cls.LineStart)
}

func TestCpp_ForwardDeclarationIgnored(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".cpp", `class Widget;

class Window {
};
`)

	assert.Equal(t, []string{"Window"}, classNames(fs.Classes))
}

func TestC_FreeFunctions(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".c", `#include <stdio.h>

int add(int a, int b) {
    return a + b;
}

static void log_line(const char *msg) {
    printf("%s\n", msg);
}
`)

	assert.Empty(t, fs.Classes)

	add := findFunc(t, fs.Functions, "add")
	assert.Equal(t, []string{"a", "b"}, add.Parameters)

	logLine := findFunc(t, fs.Functions, "log_line")
	assert.Equal(t, []string{"msg"}, logLine.Parameters)

	require.Len(t, fs.Imports, 1)
	assert.Equal(t, "#include <stdio.h>", fs.Imports[0])
}
