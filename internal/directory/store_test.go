package directory

import (
	"errors"
	"testing"
)

func testDepartments() []Department {
	return []Department{
		{Name: "Software", Members: []Employee{
			{ID: "alice-1", Name: "Alice Ray", Email: "alice@example.com", Role: "Engineer"},
			{ID: "bob-2", Name: "Bob Tan", Email: "bob@example.com", Role: "Engineer"},
		}},
		{Name: "Design", Members: []Employee{
			{ID: "cara-3", Name: "Cara Wu", Email: "cara@example.com", Role: "Designer"},
		}},
	}
}

func TestDepartmentsReturnsCopies(t *testing.T) {
	s := NewStoreWith(testDepartments())

	got := s.Departments()
	got[0].Members[0].Name = "mutated"

	again := s.Departments()
	if again[0].Members[0].Name != "Alice Ray" {
		t.Error("mutating a returned department leaked into the store")
	}
}

func TestFindEmployee(t *testing.T) {
	s := NewStoreWith(testDepartments())

	emp, dept, ok := s.FindEmployee("cara-3")
	if !ok {
		t.Fatal("expected to find cara-3")
	}
	if emp.Name != "Cara Wu" || dept != "Design" {
		t.Errorf("got %q in %q", emp.Name, dept)
	}

	if _, _, ok := s.FindEmployee("nobody"); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestAddDepartment(t *testing.T) {
	s := NewStoreWith(testDepartments())

	if err := s.AddDepartment("Sales"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddDepartment("  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: got %v, want ErrEmptyName", err)
	}
	// Duplicate check is case-insensitive.
	if err := s.AddDepartment("sales"); !errors.Is(err, ErrDuplicateDepartment) {
		t.Errorf("duplicate: got %v, want ErrDuplicateDepartment", err)
	}
}

func TestRemoveDepartmentReturnsMemberIDs(t *testing.T) {
	s := NewStoreWith(testDepartments())

	ids, err := s.RemoveDepartment("Software")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(ids) != 2 || ids[0] != "alice-1" || ids[1] != "bob-2" {
		t.Errorf("member ids = %v", ids)
	}
	if len(s.Departments()) != 1 {
		t.Errorf("departments left = %d, want 1", len(s.Departments()))
	}

	if _, err := s.RemoveDepartment("Software"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("second remove: got %v, want ErrDepartmentNotFound", err)
	}
}

func TestAddEmployee(t *testing.T) {
	s := NewStoreWith(testDepartments())

	added, err := s.AddEmployee(Employee{Name: "Dan Ortiz", Email: "dan@example.com", Role: "PM"}, "Software")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" {
		t.Error("expected a generated ID")
	}
	if _, dept, ok := s.FindEmployee(added.ID); !ok || dept != "Software" {
		t.Errorf("added employee lookup: ok=%v dept=%q", ok, dept)
	}

	// Unknown department is created on the fly.
	if _, err := s.AddEmployee(Employee{Name: "Eve Kim"}, "Legal"); err != nil {
		t.Fatalf("add to new department: %v", err)
	}
	found := false
	for _, d := range s.Departments() {
		if d.Name == "Legal" && len(d.Members) == 1 {
			found = true
		}
	}
	if !found {
		t.Error("department Legal was not created")
	}
}

func TestRemoveEmployee(t *testing.T) {
	s := NewStoreWith(testDepartments())

	if err := s.RemoveEmployee("bob-2"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, _, ok := s.FindEmployee("bob-2"); ok {
		t.Error("bob-2 still present after removal")
	}
	if err := s.RemoveEmployee("bob-2"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("second remove: got %v, want ErrEmployeeNotFound", err)
	}
}

func TestEditEmployeeInPlace(t *testing.T) {
	s := NewStoreWith(testDepartments())

	updated := Employee{ID: "alice-1", Name: "Alice Ray-Lopez", Email: "alice@example.com", Role: "Staff Engineer"}
	if err := s.EditEmployee(updated, "Software", "Software"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	// In-place edits keep member order.
	got := s.Departments()[0].Members
	if got[0].Name != "Alice Ray-Lopez" || got[1].ID != "bob-2" {
		t.Errorf("members after edit = %+v", got)
	}
}

func TestEditEmployeeMovesDepartments(t *testing.T) {
	s := NewStoreWith(testDepartments())

	updated := Employee{ID: "alice-1", Name: "Alice Ray", Email: "alice@example.com", Role: "Design Engineer"}
	if err := s.EditEmployee(updated, "Design", "Software"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	_, dept, ok := s.FindEmployee("alice-1")
	if !ok || dept != "Design" {
		t.Errorf("after move: ok=%v dept=%q, want Design", ok, dept)
	}

	// Moving to a department that does not exist fails.
	err := s.EditEmployee(updated, "Nowhere", "Design")
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("move to missing department: got %v, want ErrDepartmentNotFound", err)
	}
}
