package handler

import (
	"net/http"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/boozedog/smoovboard/internal/web/templates"
)

// Board renders the main board page.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	data := h.buildBoardData(r.URL.Query().Get("error"))
	if err := templates.BoardPage(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SelectDepartment sets the department filter, resetting the view.
func (h *Handler) SelectDepartment(w http.ResponseWriter, r *http.Request) {
	h.board.SelectDepartment(r.FormValue("department"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SetView switches between Scrum Master and a single employee's board.
func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	h.board.SetView(r.FormValue("view"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) buildBoardData(errMsg string) templates.BoardData {
	departments := h.board.Directory().Departments()
	allTickets := h.board.Tickets().List()
	selected := h.board.SelectedDepartment()
	view := h.board.CurrentView()

	proj := board.Project(departments, allTickets, selected)

	data := templates.BoardData{
		Theme:              h.theme(),
		Departments:        departments,
		SelectedDepartment: selected,
		CurrentView:        view,
		ViewEmployees:      proj.Employees,
		ShowAnalyze:        view == board.ViewScrumMaster && selected == board.AllTeams,
		Description:        h.lastDescription(),
		Suggestions:        h.pipeline.Pending(),
		Error:              errMsg,
		Empty:              len(proj.Tickets) == 0,
	}

	if view == board.ViewScrumMaster {
		data.Groups = board.GroupByAssignee(proj.Tickets)
		data.Progress = board.Progress(proj.Tickets)
		data.ShowProgress = true
		data.Activity = board.ActivityFeed(proj.Tickets)
	} else {
		// Viewing as one employee: only their tickets, no progress bar or
		// activity feed.
		if emp, _, ok := h.board.Directory().FindEmployee(view); ok {
			data.OwnEmployee = emp
		}
		ownTickets := filterByAssignee(proj.Tickets, view)
		data.OwnColumns = board.SplitByStatus(ownTickets)
		data.Empty = len(ownTickets) == 0
	}
	return data
}

func filterByAssignee(tickets []ticket.Ticket, assigneeID string) []ticket.Ticket {
	var out []ticket.Ticket
	for _, t := range tickets {
		if t.AssignedTo.ID == assigneeID {
			out = append(out, t)
		}
	}
	return out
}
