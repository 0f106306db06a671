package tree23

import (
	"strconv"
	"strings"
	"testing"
)

func intController() *Controller[int] {
	tr := New[int]()
	return NewController[int](tr, func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})
}

func TestControllerInsertAndSearch(t *testing.T) {
	c := intController()
	result := c.Insert("42")
	if result.Err != nil {
		t.Fatalf("Insert(\"42\") error = %v", result.Err)
	}
	if !result.ClearInput {
		t.Fatalf("ClearInput = false on successful Insert, want true")
	}

	_, found := c.Search("42")
	if !found {
		t.Fatalf("Search(\"42\") found = false, want true")
	}
}

func TestControllerParseFailureClearsInputWithoutTouchingTree(t *testing.T) {
	c := intController()
	result := c.Insert("not-a-number")
	if result.Err == nil {
		t.Fatalf("Insert with invalid text returned nil error")
	}
	if !result.ClearInput {
		t.Fatalf("ClearInput = false on failed parse, want true (field still clears)")
	}
	if c.tree.root != nil {
		t.Fatalf("tree root = %v after a failed parse, want the tree left empty", c.tree.root)
	}

	_, found := c.Search("not-a-number")
	if found {
		t.Fatalf("Search found = true for a value that was never inserted")
	}
}

func TestControllerErase(t *testing.T) {
	c := intController()
	c.Insert("7")
	result := c.Erase("7")
	if result.Err != nil {
		t.Fatalf("Erase(\"7\") error = %v", result.Err)
	}
	_, found := c.Search("7")
	if found {
		t.Fatalf("Search(\"7\") found = true after Erase, want false")
	}
}
