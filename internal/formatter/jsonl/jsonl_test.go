package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/jacoelho/jseek/internal/document"
	"github.com/jacoelho/jseek/internal/formatter"
	"github.com/jacoelho/jseek/internal/path"
)

func TestFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)

	nodes := []struct {
		literal string
		path    path.Path
		node    any
	}{
		{literal: "name", path: path.Parse("users.0.name"), node: "Mark <m@example.com>"},
		{literal: "users.1", path: path.Parse("users.1"), node: map[string]any{"name": "Jane"}},
	}
	for _, n := range nodes {
		doc, err := document.New(n.node)
		if err != nil {
			t.Fatal(err)
		}
		m := formatter.Match{Source: "users.json", Binding: n.literal, Path: n.path, Node: doc}
		if err := f.Format(m); err != nil {
			t.Fatalf("Format() unexpected error: %v", err)
		}
	}
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	expected := []map[string]any{
		{
			"source":   "users.json",
			"binding":  "name",
			"path":     "users.0.name",
			"jsonpath": "$['users'][0]['name']",
			"value":    "Mark <m@example.com>",
		},
		{
			"source":   "users.json",
			"binding":  "users.1",
			"path":     "users.1",
			"jsonpath": "$['users'][1]",
			"value":    map[string]any{"name": "Jane"},
		},
	}

	scanner := bufio.NewScanner(&buf)
	var got []map[string]any
	for scanner.Scan() {
		var record map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("line %q is not JSON: %v", scanner.Text(), err)
		}
		got = append(got, record)
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("records = %v, want %v", got, expected)
	}
	if bytes.Contains(buf.Bytes(), []byte(`<`)) {
		t.Errorf("output escapes HTML: %s", buf.String())
	}
}
