package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemap-dev/codemap/internal/model"
)

// Test Plan for TypeScript/TSX extraction:
// - Extract classes with extends and implements clauses
// - Extract interfaces, with extends and method signatures
// - Abstract classes and abstract method signatures
// - Visibility modifiers (public/private/protected)
// - TSX files parse JSX without losing class and function structure
// - Imports collect import statements
// - Object-literal and type-literal members are not module-level functions

func TestTypeScript_ClassImplements(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".ts", `import { Logger } from "./logger";

class Service extends Base implements Runnable, Closeable {
  private start(timeout: number): void {}
  protected stop(): void {}
  public restart(): void {}
}
`)

	cls := findClass(t, fs.Classes, "Service")
	assert.Equal(t, []string{"Base", "Runnable", "Closeable"}, cls.BaseNames)

	start := findFunc(t, cls.Methods, "start")
	assert.Equal(t, model.VisibilityPrivate, start.Visibility)
	assert.Equal(t, []string{"timeout"}, start.Parameters)

	stop := findFunc(t, cls.Methods, "stop")
	assert.Equal(t, model.VisibilityProtected, stop.Visibility)

	restart := findFunc(t, cls.Methods, "restart")
	assert.Equal(t, model.VisibilityPublic, restart.Visibility)

	require.Len(t, fs.Imports, 1)
	assert.Contains(t, fs.Imports[0], "./logger")
}

func TestTypeScript_Interface(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".ts", `interface Repository extends Closeable {
  find(id: string): Entity;
  save(e: Entity): void;
}
`)

	cls := findClass(t, fs.Classes, "Repository")
	assert.Equal(t, []string{"Closeable"}, cls.BaseNames)

	find := findFunc(t, cls.Methods, "find")
	assert.Equal(t, []string{"id"}, find.Parameters)
	findFunc(t, cls.Methods, "save")
}

func TestTypeScript_AbstractClass(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".ts", `abstract class Shape {
  abstract area(): number;

  describe(): string {
    return "shape";
  }
}
`)

	cls := findClass(t, fs.Classes, "Shape")
	findFunc(t, cls.Methods, "area")
	findFunc(t, cls.Methods, "describe")
}

func TestTypeScript_LiteralMembersNotFunctions(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".ts", `const handlers = {
  onClick(e: Event) {},
};

type Shape = {
  area(): number;
};
`)

	assert.Empty(t, fs.Classes)
	assert.Empty(t, fs.Functions)
}

func TestTSX_ComponentFile(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".tsx", `import React from "react";

function App(props: Props) {
  return <div>{props.title}</div>;
}

class Panel extends React.Component {
  render() {
    return <section />;
  }
}
`)

	app := findFunc(t, fs.Functions, "App")
	assert.Equal(t, []string{"props"}, app.Parameters)

	cls := findClass(t, fs.Classes, "Panel")
	require.Len(t, cls.BaseNames, 1)
	assert.Equal(t, "React.Component", cls.BaseNames[0])
	findFunc(t, cls.Methods, "render")
}
