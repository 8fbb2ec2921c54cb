package directory

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store holds the in-memory department and employee directory.
// All reads return copies; mutations never expose partial state.
type Store struct {
	mu          sync.RWMutex
	departments []Department
}

// NewStore creates an empty directory store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith creates a store pre-populated with the given departments.
func NewStoreWith(departments []Department) *Store {
	s := &Store{departments: make([]Department, 0, len(departments))}
	for _, d := range departments {
		s.departments = append(s.departments, d.clone())
	}
	return s
}

// Departments returns a deep copy of every department in insertion order.
func (s *Store) Departments() []Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Department, 0, len(s.departments))
	for _, d := range s.departments {
		out = append(out, d.clone())
	}
	return out
}

// Employees returns every employee across all departments, flattened in
// department order.
func (s *Store) Employees() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Employee
	for _, d := range s.departments {
		out = append(out, d.Members...)
	}
	return out
}

// FindEmployee looks up an employee by ID and reports the department that
// holds them.
func (s *Store) FindEmployee(id string) (Employee, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.departments {
		for _, m := range d.Members {
			if m.ID == id {
				return m, d.Name, true
			}
		}
	}
	return Employee{}, "", false
}

// AddDepartment appends a new empty department. Names are unique
// case-insensitively; a collision returns ErrDuplicateDepartment.
func (s *Store) AddDepartment(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.departments {
		if strings.EqualFold(d.Name, name) {
			return fmt.Errorf("%w: %q", ErrDuplicateDepartment, d.Name)
		}
	}
	s.departments = append(s.departments, Department{Name: name, Members: []Employee{}})
	return nil
}

// RemoveDepartment deletes a department and returns the IDs of its former
// members so the caller can cascade ticket cleanup.
func (s *Store) RemoveDepartment(name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.departments {
		if d.Name != name {
			continue
		}
		ids := make([]string, 0, len(d.Members))
		for _, m := range d.Members {
			ids = append(ids, m.ID)
		}
		s.departments = append(s.departments[:i], s.departments[i+1:]...)
		return ids, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrDepartmentNotFound, name)
}

// AddEmployee generates an ID for the employee and appends them to the named
// department, creating the department if it does not exist yet.
func (s *Store) AddEmployee(e Employee, departmentName string) (Employee, error) {
	departmentName = strings.TrimSpace(departmentName)
	if strings.TrimSpace(e.Name) == "" || departmentName == "" {
		return Employee{}, ErrEmptyName
	}
	e.ID = NewID(e.Name, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.departments {
		if d.Name == departmentName {
			s.departments[i].Members = append(s.departments[i].Members, e)
			return e, nil
		}
	}
	s.departments = append(s.departments, Department{Name: departmentName, Members: []Employee{e}})
	return e, nil
}

// RemoveEmployee deletes the employee from their department. The caller is
// responsible for cascading ticket cleanup.
func (s *Store) RemoveEmployee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for di, d := range s.departments {
		for mi, m := range d.Members {
			if m.ID == id {
				s.departments[di].Members = append(d.Members[:mi], d.Members[mi+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %q", ErrEmployeeNotFound, id)
}

// EditEmployee replaces an employee record, moving it between departments
// when newDepartment differs from originalDepartment. Within a department the
// record is replaced in place, preserving member order.
func (s *Store) EditEmployee(updated Employee, newDepartment, originalDepartment string) error {
	if strings.TrimSpace(updated.Name) == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if newDepartment == originalDepartment {
		for di, d := range s.departments {
			if d.Name != newDepartment {
				continue
			}
			for mi, m := range d.Members {
				if m.ID == updated.ID {
					s.departments[di].Members[mi] = updated
					return nil
				}
			}
		}
		return fmt.Errorf("%w: %q", ErrEmployeeNotFound, updated.ID)
	}

	// Locate the target department first so a bad move leaves the store
	// untouched.
	target := -1
	for di, d := range s.departments {
		if d.Name == newDepartment {
			target = di
			break
		}
	}
	if target == -1 {
		return fmt.Errorf("%w: %q", ErrDepartmentNotFound, newDepartment)
	}

	removed := false
	for di, d := range s.departments {
		if d.Name != originalDepartment {
			continue
		}
		for mi, m := range d.Members {
			if m.ID == updated.ID {
				s.departments[di].Members = append(d.Members[:mi], d.Members[mi+1:]...)
				removed = true
				break
			}
		}
	}
	if !removed {
		return fmt.Errorf("%w: %q", ErrEmployeeNotFound, updated.ID)
	}
	s.departments[target].Members = append(s.departments[target].Members, updated)
	return nil
}
