package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemap-dev/codemap/internal/model"
)

// Test Plan for the remaining grammars:
// - Java: classes with extends/implements, interfaces, constructors, imports
// - Ruby: class with superclass, modules, require statements as imports
// - Rust: structs, traits, impl blocks attaching methods and trait bases
// - PHP: classes with extends/implements, namespace use imports
// - C#: classes with base lists, using directives
// - Kotlin: classes with delegation specifiers, suspend functions, imports

func TestJava_ClassHierarchy(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".java", `import java.util.List;
import java.io.Closeable;

public class OrderService extends BaseService implements Auditable, Closeable {
    public OrderService(Config config) {
    }

    public List<Order> findAll(int limit) {
        return null;
    }

    private static void reset() {
    }
}

interface Auditable extends Traceable {
    void audit(String event);
}
`)

	cls := findClass(t, fs.Classes, "OrderService")
	assert.Equal(t, []string{"BaseService", "Auditable", "Closeable"}, cls.BaseNames)

	ctor := findFunc(t, cls.Methods, "OrderService")
	assert.Equal(t, []string{"config"}, ctor.Parameters)

	findAll := findFunc(t, cls.Methods, "findAll")
	assert.Equal(t, []string{"limit"}, findAll.Parameters)
	assert.Equal(t, model.VisibilityPublic, findAll.Visibility)

	reset := findFunc(t, cls.Methods, "reset")
	assert.True(t, reset.IsStatic)
	assert.Equal(t, model.VisibilityPrivate, reset.Visibility)

	iface := findClass(t, fs.Classes, "Auditable")
	assert.Equal(t, []string{"Traceable"}, iface.BaseNames)
	findFunc(t, iface.Methods, "audit")

	require.Len(t, fs.Imports, 2)
	assert.Equal(t, "import java.util.List;", fs.Imports[0])
}

func TestRuby_ClassAndRequires(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".rb", `require 'json'
require_relative 'helpers'

class Worker < Base
  def perform(job, retries)
  end

  def self.enqueue(job)
  end
end

module Queue
  def push(item)
  end
end
`)

	cls := findClass(t, fs.Classes, "Worker")
	assert.Equal(t, []string{"Base"}, cls.BaseNames)

	perform := findFunc(t, cls.Methods, "perform")
	assert.Equal(t, []string{"job", "retries"}, perform.Parameters)
	findFunc(t, cls.Methods, "enqueue")

	mod := findClass(t, fs.Classes, "Queue")
	findFunc(t, mod.Methods, "push")

	require.Len(t, fs.Imports, 2)
	assert.Equal(t, "require 'json'", fs.Imports[0])
	assert.Equal(t, "require_relative 'helpers'", fs.Imports[1])
}

func TestRust_ImplBlocksAttach(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".rs", `use std::fmt;

pub struct Counter {
    count: u64,
}

impl Counter {
    pub fn new() -> Self {
        Counter { count: 0 }
    }

    fn bump(&mut self, by: u64) {
        self.count += by;
    }
}

impl fmt::Display for Counter {
    fn fmt(&self, f: &mut fmt::Formatter) -> fmt::Result {
        write!(f, "{}", self.count)
    }
}

pub async fn run(counter: Counter) {}
`)

	cls := findClass(t, fs.Classes, "Counter")
	assert.Equal(t, []string{"fmt::Display"}, cls.BaseNames)

	newFn := findFunc(t, cls.Methods, "new")
	assert.Equal(t, model.VisibilityPublic, newFn.Visibility)

	bump := findFunc(t, cls.Methods, "bump")
	assert.Equal(t, model.VisibilityPrivate, bump.Visibility)
	assert.Equal(t, []string{"self", "by"}, bump.Parameters)

	findFunc(t, cls.Methods, "fmt")

	run := findFunc(t, fs.Functions, "run")
	assert.True(t, run.IsAsync)
	assert.Equal(t, []string{"counter"}, run.Parameters)

	require.Len(t, fs.Imports, 1)
	assert.Equal(t, "use std::fmt;", fs.Imports[0])
}

func TestPHP_ClassAndUses(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".php", `<?php

use App\Contracts\Mailer;

class Notifier extends BaseNotifier implements Mailer
{
    public function send($message, $to)
    {
    }
}

function helper($value)
{
    return $value;
}
`)

	cls := findClass(t, fs.Classes, "Notifier")
	assert.Equal(t, []string{"BaseNotifier", "Mailer"}, cls.BaseNames)

	send := findFunc(t, cls.Methods, "send")
	assert.Equal(t, []string{"$message", "$to"}, send.Parameters)
	assert.Equal(t, model.VisibilityPublic, send.Visibility)

	helper := findFunc(t, fs.Functions, "helper")
	assert.Equal(t, []string{"$value"}, helper.Parameters)

	require.Len(t, fs.Imports, 1)
	assert.Contains(t, fs.Imports[0], `App\Contracts\Mailer`)
}

func TestCSharp_BaseList(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".cs", `using System;
using System.Collections.Generic;

public class Repository : RepositoryBase, IDisposable
{
    public Repository(string connection)
    {
    }

    public List<string> Query(string filter, int limit)
    {
        return null;
    }

    private static void Reset()
    {
    }
}
`)

	cls := findClass(t, fs.Classes, "Repository")
	assert.Equal(t, []string{"RepositoryBase", "IDisposable"}, cls.BaseNames)

	ctor := findFunc(t, cls.Methods, "Repository")
	assert.Equal(t, []string{"connection"}, ctor.Parameters)

	query := findFunc(t, cls.Methods, "Query")
	assert.Equal(t, []string{"filter", "limit"}, query.Parameters)
	assert.Equal(t, model.VisibilityPublic, query.Visibility)

	reset := findFunc(t, cls.Methods, "Reset")
	assert.True(t, reset.IsStatic)

	require.Len(t, fs.Imports, 2)
	assert.Equal(t, "using System;", fs.Imports[0])
}

func TestKotlin_ClassesAndSuspend(t *testing.T) {
	t.Parallel()

	fs := analyze(t, ".kt", `import kotlinx.coroutines.delay

class Fetcher(private val client: Client) : BaseFetcher(), Closeable {
    fun fetch(url: String, timeout: Long): String {
        return url
    }

    suspend fun fetchAsync(url: String): String {
        delay(1)
        return url
    }
}

object Registry {
    fun lookup(name: String): Fetcher? = null
}
`)

	cls := findClass(t, fs.Classes, "Fetcher")
	assert.Equal(t, []string{"BaseFetcher", "Closeable"}, cls.BaseNames)

	fetch := findFunc(t, cls.Methods, "fetch")
	assert.Equal(t, []string{"url", "timeout"}, fetch.Parameters)

	fetchAsync := findFunc(t, cls.Methods, "fetchAsync")
	assert.True(t, fetchAsync.IsAsync)

	obj := findClass(t, fs.Classes, "Registry")
	findFunc(t, obj.Methods, "lookup")

	require.Len(t, fs.Imports, 1)
	assert.Contains(t, fs.Imports[0], "kotlinx.coroutines.delay")
}
