package models

import "testing"

func TestContactCreateAndList(t *testing.T) {
	before, err := ContactList()
	if err != nil {
		t.Fatal(err)
	}
	c, err := ContactCreate("Visitor", "visitor@example.com", "Hello there")
	if err != nil {
		t.Fatalf("ContactCreate: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("contact has no ID")
	}
	after, err := ContactList()
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("list grew by %d, want 1", len(after)-len(before))
	}
	last := after[len(after)-1]
	if last.Name != "Visitor" || last.Email != "visitor@example.com" || last.Message != "Hello there" {
		t.Errorf("stored contact = %+v", last)
	}
}
