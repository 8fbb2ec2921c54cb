package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/suggest"
	"github.com/boozedog/smoovboard/internal/ticket"
)

// Client calls the smoovboard server's JSON API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given address or URL.
func NewClient(addr string) *Client {
	baseURL := strings.TrimRight(addr, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{baseURL: baseURL, client: &http.Client{}}
}

// Board returns the full session state.
func (c *Client) Board(ctx context.Context) (BoardSnapshot, error) {
	var snapshot BoardSnapshot
	err := c.get(ctx, "/api/board", &snapshot)
	return snapshot, err
}

// Analyze submits a project description for AI suggestion.
func (c *Client) Analyze(ctx context.Context, description string) (AnalyzeResponse, error) {
	var response AnalyzeResponse
	err := c.post(ctx, "/api/analyze", AnalyzeRequest{Description: description}, &response)
	return response, err
}

// Suggestions lists the pending suggestion pool.
func (c *Client) Suggestions(ctx context.Context) ([]suggest.SuggestedTask, error) {
	var response SuggestionsResponse
	if err := c.get(ctx, "/api/suggestions", &response); err != nil {
		return nil, err
	}
	return response.Tasks, nil
}

// AcceptSuggestion promotes a pending suggestion onto the board.
func (c *Client) AcceptSuggestion(ctx context.Context, id string) (ticket.Ticket, error) {
	var response TicketResponse
	err := c.post(ctx, "/api/suggestions/accept", SuggestionRef{ID: id}, &response)
	return response.Ticket, err
}

// DiscardSuggestion drops a pending suggestion.
func (c *Client) DiscardSuggestion(ctx context.Context, id string) error {
	return c.post(ctx, "/api/suggestions/discard", SuggestionRef{ID: id}, &emptyResponse{})
}

// CreateTicket creates a manual ticket.
func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (ticket.Ticket, error) {
	var response TicketResponse
	err := c.post(ctx, "/api/tickets", req, &response)
	return response.Ticket, err
}

// Tickets lists every ticket on the board.
func (c *Client) Tickets(ctx context.Context) ([]ticket.Ticket, error) {
	var response TicketsResponse
	if err := c.get(ctx, "/api/tickets", &response); err != nil {
		return nil, err
	}
	return response.Tickets, nil
}

// Ticket returns one ticket by ID.
func (c *Client) Ticket(ctx context.Context, id string) (ticket.Ticket, error) {
	var response TicketResponse
	err := c.get(ctx, "/api/tickets/"+id, &response)
	return response.Ticket, err
}

// SetStatus moves a ticket between columns with its mandatory comment.
func (c *Client) SetStatus(ctx context.Context, id string, to ticket.Status, comment string) (ticket.Ticket, error) {
	var response TicketResponse
	err := c.post(ctx, "/api/tickets/"+id+"/status", StatusRequest{To: to, Comment: comment}, &response)
	return response.Ticket, err
}

// SetDueDate sets a ticket's due date.
func (c *Client) SetDueDate(ctx context.Context, id, dueDate string) (ticket.Ticket, error) {
	var response TicketResponse
	err := c.post(ctx, "/api/tickets/"+id+"/due", DueDateRequest{DueDate: dueDate}, &response)
	return response.Ticket, err
}

// Reassign moves a ticket to another employee.
func (c *Client) Reassign(ctx context.Context, id, assigneeID string) (ticket.Ticket, error) {
	var response TicketResponse
	err := c.post(ctx, "/api/tickets/"+id+"/assignee", ReassignRequest{AssigneeID: assigneeID}, &response)
	return response.Ticket, err
}

// RemoveTicket deletes a ticket.
func (c *Client) RemoveTicket(ctx context.Context, id string) error {
	return c.post(ctx, "/api/tickets/"+id+"/remove", emptyResponse{}, &emptyResponse{})
}

// Directory lists the departments with their members.
func (c *Client) Directory(ctx context.Context) ([]directory.Department, error) {
	var response DirectoryResponse
	if err := c.get(ctx, "/api/directory", &response); err != nil {
		return nil, err
	}
	return response.Departments, nil
}

// AddDepartment creates an empty department.
func (c *Client) AddDepartment(ctx context.Context, name string) error {
	return c.post(ctx, "/api/departments", DepartmentRequest{Name: name}, &emptyResponse{})
}

// RemoveDepartment deletes a department, its members and their tickets.
func (c *Client) RemoveDepartment(ctx context.Context, name string) error {
	return c.post(ctx, "/api/departments/remove", DepartmentRequest{Name: name}, &emptyResponse{})
}

// AddEmployee creates an employee in a department.
func (c *Client) AddEmployee(ctx context.Context, req EmployeeRequest) (directory.Employee, error) {
	var response EmployeeResponse
	err := c.post(ctx, "/api/employees", req, &response)
	return response.Employee, err
}

// RemoveEmployee deletes an employee and their tickets.
func (c *Client) RemoveEmployee(ctx context.Context, id string) error {
	return c.post(ctx, "/api/employees/"+id+"/remove", emptyResponse{}, &emptyResponse{})
}

// EditEmployee updates an employee, optionally moving them to another
// department.
func (c *Client) EditEmployee(ctx context.Context, id string, req EmployeeRequest) (directory.Employee, error) {
	var response EmployeeResponse
	err := c.post(ctx, "/api/employees/"+id+"/edit", req, &response)
	return response.Employee, err
}

// SelectDepartment sets the department filter.
func (c *Client) SelectDepartment(ctx context.Context, department string) error {
	return c.post(ctx, "/api/select", SelectRequest{Department: department}, &emptyResponse{})
}

// SetView switches between the Scrum Master view and an employee view.
func (c *Client) SetView(ctx context.Context, view string) error {
	return c.post(ctx, "/api/view", ViewRequest{View: view}, &emptyResponse{})
}

// Activity returns the chronological comment feed.
func (c *Client) Activity(ctx context.Context) ([]board.ActivityEntry, error) {
	var response ActivityResponse
	if err := c.get(ctx, "/api/activity", &response); err != nil {
		return nil, err
	}
	return response.Entries, nil
}

// Theme returns the persisted theme flag.
func (c *Client) Theme(ctx context.Context) (string, error) {
	var response ThemeResponse
	err := c.get(ctx, "/api/theme", &response)
	return response.Theme, err
}

// SetTheme persists the theme flag.
func (c *Client) SetTheme(ctx context.Context, value string) error {
	return c.post(ctx, "/api/theme", ThemeRequest{Theme: value}, &emptyResponse{})
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, path string, payload any, dest any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return readErrorResponse(resp)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func readErrorResponse(resp *http.Response) error {
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if message, ok := payload["error"]; ok {
			return fmt.Errorf("server error: %s", message)
		}
	}
	return fmt.Errorf("server error: %s", resp.Status)
}
