package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/web/templates"
)

// Directory renders the employee directory page.
func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	data := templates.DirectoryData{
		Theme:       h.theme(),
		Departments: h.board.Directory().Departments(),
		Error:       r.URL.Query().Get("error"),
	}
	if err := templates.DirectoryPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// AddDepartment creates an empty department.
func (h *Handler) AddDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.board.AddDepartment(r.FormValue("name")); err != nil {
		redirectWithError(w, r, "/directory", err.Error())
		return
	}
	http.Redirect(w, r, "/directory", http.StatusSeeOther)
}

// RemoveDepartment deletes a department after a confirmation round-trip.
// Deleting a department also deletes its members' tickets, so the first
// POST renders a confirmation page whose form posts back with
// confirmed=true in the action URL.
func (h *Handler) RemoveDepartment(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("department")
	if name == "" {
		redirectWithError(w, r, "/directory", "no department given")
		return
	}

	if r.FormValue("confirmed") != "true" {
		members := 0
		for _, d := range h.board.Directory().Departments() {
			if d.Name == name {
				members = len(d.Members)
			}
		}
		data := templates.ConfirmData{
			Theme:   h.theme(),
			Title:   "Remove department",
			Message: fmt.Sprintf("Remove %s and its %d member(s)? All of their tickets will be deleted.", name, members),
			Action:  "/departments/remove?department=" + url.QueryEscape(name) + "&confirmed=true",
		}
		if err := templates.ConfirmPage(w, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.board.RemoveDepartment(name); err != nil {
		redirectWithError(w, r, "/directory", err.Error())
		return
	}
	http.Redirect(w, r, "/directory", http.StatusSeeOther)
}

// AddEmployee creates an employee in a department, creating the
// department on the fly when it does not exist yet.
func (h *Handler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	e := directory.Employee{
		Name:  strings.TrimSpace(r.FormValue("name")),
		Email: strings.TrimSpace(r.FormValue("email")),
		Role:  strings.TrimSpace(r.FormValue("role")),
	}
	if _, err := h.board.AddEmployee(e, r.FormValue("department")); err != nil {
		redirectWithError(w, r, "/directory", err.Error())
		return
	}
	http.Redirect(w, r, "/directory", http.StatusSeeOther)
}

// RemoveEmployee deletes an employee after a confirmation round-trip,
// mirroring RemoveDepartment.
func (h *Handler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	if id == "" {
		redirectWithError(w, r, "/directory", "no employee given")
		return
	}

	if r.FormValue("confirmed") != "true" {
		name := id
		if emp, _, ok := h.board.Directory().FindEmployee(id); ok {
			name = emp.Name
		}
		data := templates.ConfirmData{
			Theme:   h.theme(),
			Title:   "Remove employee",
			Message: fmt.Sprintf("Remove %s? All of their tickets will be deleted.", name),
			Action:  "/employees/remove?id=" + url.QueryEscape(id) + "&confirmed=true",
		}
		if err := templates.ConfirmPage(w, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.board.RemoveEmployee(id); err != nil {
		redirectWithError(w, r, "/directory", err.Error())
		return
	}
	http.Redirect(w, r, "/directory", http.StatusSeeOther)
}

// EditEmployee renders the edit form for an employee.
func (h *Handler) EditEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	emp, deptName, ok := h.board.Directory().FindEmployee(id)
	if !ok {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}
	data := templates.EditEmployeeData{
		Theme:              h.theme(),
		Employee:           emp,
		OriginalDepartment: deptName,
		Departments:        h.board.Directory().Departments(),
		Error:              r.URL.Query().Get("error"),
	}
	if err := templates.EditEmployeePage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateEmployee applies the edit form. Assigned tickets pick up the new
// name, email and role.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	updated := directory.Employee{
		ID:    id,
		Name:  strings.TrimSpace(r.FormValue("name")),
		Email: strings.TrimSpace(r.FormValue("email")),
		Role:  strings.TrimSpace(r.FormValue("role")),
	}
	newDept := r.FormValue("department")
	origDept := r.FormValue("original_department")

	if err := h.board.EditEmployee(updated, newDept, origDept); err != nil {
		redirectWithError(w, r, "/employees/"+id+"/edit", err.Error())
		return
	}
	http.Redirect(w, r, "/directory", http.StatusSeeOther)
}
