package templates

const pageTemplate = `
{{define "head"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>smoovboard</title>
  <style>
    :root { color-scheme: light dark; }
    body { margin: 0; font-family: -apple-system, "Segoe UI", sans-serif; background: #f6f7f9; color: #1f2430; }
    body.dark { background: #14161c; color: #e6e8ee; }
    header { display: flex; align-items: center; gap: 16px; padding: 12px 24px; border-bottom: 1px solid #d5d9e0; background: #ffffff; }
    body.dark header { background: #1b1e27; border-color: #2a2e3a; }
    header h1 { margin: 0; font-size: 18px; }
    header nav { display: flex; gap: 12px; margin-left: auto; }
    header a, header button { color: inherit; }
    main { max-width: 1100px; margin: 0 auto; padding: 20px 24px 40px; }
    .tabs { display: flex; flex-wrap: wrap; gap: 8px; margin: 16px 0; }
    .tabs button { padding: 6px 14px; border-radius: 999px; border: 1px solid #c7ccd6; background: transparent; cursor: pointer; color: inherit; }
    .tabs button.active { background: #2456d6; border-color: #2456d6; color: #fff; }
    .card { background: #ffffff; border: 1px solid #d5d9e0; border-radius: 10px; padding: 14px; margin-bottom: 10px; }
    body.dark .card { background: #1b1e27; border-color: #2a2e3a; }
    .columns { display: grid; grid-template-columns: repeat(3, 1fr); gap: 14px; }
    .column h3 { margin: 4px 0 10px; font-size: 14px; text-transform: uppercase; letter-spacing: 0.04em; color: #5a6172; }
    body.dark .column h3 { color: #9aa2b5; }
    .group { margin-bottom: 28px; }
    .group > h2 { font-size: 16px; margin-bottom: 2px; }
    .group .role { color: #5a6172; font-size: 13px; margin-top: 0; }
    .error { background: #fbeaea; border: 1px solid #e5a0a0; color: #a12c2c; padding: 10px 14px; border-radius: 8px; margin: 12px 0; }
    .progress { background: #e3e6ec; border-radius: 999px; height: 10px; overflow: hidden; margin: 6px 0 2px; }
    .progress span { display: block; height: 100%; background: #2fa463; }
    .meta { color: #5a6172; font-size: 12px; }
    .feed { max-height: 260px; overflow-y: auto; }
    .feed li { margin-bottom: 8px; }
    textarea, input, select { font: inherit; padding: 6px 8px; border-radius: 6px; border: 1px solid #c7ccd6; background: inherit; color: inherit; }
    textarea { width: 100%; box-sizing: border-box; }
    button.primary { background: #2456d6; color: #fff; border: none; padding: 8px 16px; border-radius: 6px; cursor: pointer; }
    button.danger { background: #c23b3b; color: #fff; border: none; padding: 6px 12px; border-radius: 6px; cursor: pointer; }
    button.ghost { background: transparent; border: 1px solid #c7ccd6; padding: 4px 10px; border-radius: 6px; cursor: pointer; color: inherit; }
    .actions { display: flex; flex-wrap: wrap; gap: 6px; margin-top: 8px; }
    .empty { text-align: center; color: #5a6172; padding: 40px 0; }
    form.inline { display: inline; }
  </style>
</head>
<body class="{{.Theme}}">
<header>
  <h1><a href="/" style="text-decoration:none;color:inherit">smoovboard</a></h1>
  <nav>
    <a href="/">Board</a>
    <a href="/activity">Activity</a>
    <a href="/directory">Directory</a>
    <a href="/new">New ticket</a>
    <form class="inline" method="post" action="/theme"><button class="ghost" type="submit">{{if eq .Theme "dark"}}Light{{else}}Dark{{end}} mode</button></form>
  </nav>
</header>
<main>
{{end}}

{{define "foot"}}
</main>
<script>
  const source = new EventSource("/events");
  source.addEventListener("refresh", () => location.reload());
</script>
</body>
</html>
{{end}}

{{define "ticket-card"}}
<div class="card">
  <strong><a href="/ticket/{{.ID}}">{{.Title}}</a></strong>
  <p class="meta">{{.Priority}} &middot; {{.StoryPoints}} pts &middot; due {{.DueDate}} &middot; {{.AssignedTo.Name}}</p>
  <div class="actions">
    {{with prev .Status}}
    <a href="/ticket/{{$.ID}}/comment?to={{.}}"><button class="ghost" type="button">&larr; {{.}}</button></a>
    {{end}}
    {{with next .Status}}
    <a href="/ticket/{{$.ID}}/comment?to={{.}}"><button class="ghost" type="button">{{.}} &rarr;</button></a>
    {{end}}
    <form class="inline" method="post" action="/ticket/{{.ID}}/delete"><button class="danger" type="submit">Remove</button></form>
  </div>
</div>
{{end}}

{{define "columns"}}
<div class="columns">
  <div class="column"><h3>To Do</h3>{{range .Todo}}{{template "ticket-card" .}}{{end}}</div>
  <div class="column"><h3>In Progress</h3>{{range .InProgress}}{{template "ticket-card" .}}{{end}}</div>
  <div class="column"><h3>Done</h3>{{range .Done}}{{template "ticket-card" .}}{{end}}</div>
</div>
{{end}}

{{define "board-page"}}{{template "head" .}}
<div class="tabs">
  <form class="inline" method="post" action="/select"><button name="department" value="All Teams" class="{{if eq .SelectedDepartment "All Teams"}}active{{end}}">All Teams</button></form>
  {{range .Departments}}
  <form class="inline" method="post" action="/select"><button name="department" value="{{.Name}}" class="{{if eq .Name $.SelectedDepartment}}active{{end}}">{{.Name}}</button></form>
  {{end}}
</div>

{{if .Error}}<div class="error" role="alert"><strong>Error:</strong> {{.Error}}</div>{{end}}

{{if .ShowAnalyze}}
<div class="card">
  <form method="post" action="/analyze" enctype="multipart/form-data">
    <label for="description"><strong>Project description</strong></label>
    <textarea id="description" name="description" rows="5" placeholder="Describe the project to break down into tickets...">{{.Description}}</textarea>
    <div class="actions">
      <input type="file" name="document" accept=".txt,.md,.markdown,.text">
      <button class="primary" type="submit">Analyze</button>
    </div>
  </form>
</div>
{{end}}

{{if .Suggestions}}
<h2>Suggested tasks</h2>
{{range .Suggestions}}
<div class="card">
  <strong>{{.Title}}</strong>
  <p>{{.Description}}</p>
  <p class="meta">{{.SuggestedDepartment}} &middot; {{.SuggestedAssigneeID}} &middot; {{.Priority}} &middot; {{.StoryPoints}} pts &middot; due {{.SuggestedDueDate}}</p>
  <div class="actions">
    <form class="inline" method="post" action="/suggestions/accept"><input type="hidden" name="id" value="{{.ID}}"><button class="primary" type="submit">Add to board</button></form>
    <form class="inline" method="post" action="/suggestions/discard"><input type="hidden" name="id" value="{{.ID}}"><button class="ghost" type="submit">Discard</button></form>
  </div>
</div>
{{end}}
{{end}}

<div class="tabs">
  <form class="inline" method="post" action="/view"><button name="view" value="Scrum Master" class="{{if eq .CurrentView "Scrum Master"}}active{{end}}">Scrum Master</button></form>
  {{range .ViewEmployees}}
  <form class="inline" method="post" action="/view"><button name="view" value="{{.ID}}" class="{{if eq .ID $.CurrentView}}active{{end}}">{{.Name}}</button></form>
  {{end}}
</div>

{{if .ShowProgress}}
<div class="card">
  <strong>Progress</strong> <span class="meta">{{.Progress}}% done</span>
  <div class="progress"><span style="width: {{.Progress}}%"></span></div>
</div>
{{if .Activity}}
<div class="card">
  <strong>Activity</strong>
  <ul class="feed">
    {{range .Activity}}
    <li><strong>{{.Comment.Author}}</strong> moved <a href="/ticket/{{.TicketID}}">{{.TicketTitle}}</a> from {{.Comment.FromStatus}} to {{.Comment.ToStatus}}: &ldquo;{{.Comment.Text}}&rdquo; <span class="meta">{{relativeTime .Comment.Timestamp}}</span></li>
    {{end}}
  </ul>
</div>
{{end}}
{{end}}

{{if .Empty}}
<div class="empty">No tickets yet. Analyze a project description or add a ticket manually.</div>
{{else if eq .CurrentView "Scrum Master"}}
{{range .Groups}}
<div class="group">
  <h2>{{.Assignee.Name}}</h2>
  <p class="role">{{.Assignee.Role}}</p>
  {{template "columns" .Columns}}
</div>
{{end}}
{{else}}
<div class="group">
  <h2>{{.OwnEmployee.Name}}</h2>
  <p class="role">{{.OwnEmployee.Role}}</p>
  {{template "columns" .OwnColumns}}
</div>
{{end}}
{{template "foot" .}}{{end}}

{{define "ticket-page"}}{{template "head" .}}
{{if .Error}}<div class="error" role="alert"><strong>Error:</strong> {{.Error}}</div>{{end}}
<div class="card">
  <h2>{{.Ticket.Title}}</h2>
  <p class="meta">{{.Ticket.ID}} &middot; {{.Ticket.Status}} &middot; {{.Ticket.Priority}} &middot; {{.Ticket.StoryPoints}} pts &middot; {{.Ticket.SuggestedDepartment}}</p>
  <div>{{markdown .Ticket.Description}}</div>
  <p class="meta">Assigned to {{.Ticket.AssignedTo.Name}} &lt;{{.Ticket.AssignedTo.Email}}&gt;</p>
  <div class="actions">
    {{with prev .Ticket.Status}}<a href="/ticket/{{$.Ticket.ID}}/comment?to={{.}}"><button class="ghost" type="button">&larr; {{.}}</button></a>{{end}}
    {{with next .Ticket.Status}}<a href="/ticket/{{$.Ticket.ID}}/comment?to={{.}}"><button class="ghost" type="button">{{.}} &rarr;</button></a>{{end}}
    <a href="{{composeLink .Ticket}}"><button class="ghost" type="button">Email</button></a>
    <form class="inline" method="post" action="/ticket/{{.Ticket.ID}}/delete"><button class="danger" type="submit">Remove</button></form>
  </div>
</div>
<div class="card">
  <form method="post" action="/ticket/{{.Ticket.ID}}/due">
    <label>Due date <input type="date" name="due" value="{{.Ticket.DueDate}}"></label>
    <button class="ghost" type="submit">Update</button>
  </form>
</div>
<div class="card">
  <form method="post" action="/ticket/{{.Ticket.ID}}/reassign">
    <label>Reassign to
      <select name="assignee">
        {{range .Employees}}
        <option value="{{.ID}}" {{if eq .ID $.Ticket.AssignedTo.ID}}selected{{end}}>{{.Name}} ({{.Role}})</option>
        {{end}}
      </select>
    </label>
    <button class="ghost" type="submit">Reassign</button>
  </form>
</div>
<div class="card">
  <strong>Comments</strong>
  {{if .Ticket.Comments}}
  <ul class="feed">
    {{range .Ticket.Comments}}
    <li><strong>{{.Author}}</strong> ({{.FromStatus}} &rarr; {{.ToStatus}}): {{.Text}} <span class="meta">{{formatTime .Timestamp}}</span></li>
    {{end}}
  </ul>
  {{else}}
  <p class="meta">No comments yet.</p>
  {{end}}
</div>
{{template "foot" .}}{{end}}

{{define "comment-page"}}{{template "head" .}}
{{if .Error}}<div class="error" role="alert"><strong>Error:</strong> {{.Error}}</div>{{end}}
<div class="card">
  <h2>Move &ldquo;{{.Ticket.Title}}&rdquo; to {{.To}}</h2>
  <p class="meta">{{.From}} &rarr; {{.To}} — a comment is required.</p>
  <form method="post" action="/ticket/{{.Ticket.ID}}/status">
    <input type="hidden" name="from" value="{{.From}}">
    <input type="hidden" name="to" value="{{.To}}">
    <textarea name="comment" rows="3" placeholder="Why is this ticket moving?" required></textarea>
    <div class="actions">
      <button class="primary" type="submit">Confirm</button>
      <a href="/"><button class="ghost" type="button">Cancel</button></a>
    </div>
  </form>
</div>
{{template "foot" .}}{{end}}

{{define "directory-page"}}{{template "head" .}}
{{if .Error}}<div class="error" role="alert"><strong>Error:</strong> {{.Error}}</div>{{end}}
<h2>Employee directory</h2>
{{range .Departments}}
<div class="card">
  <strong>{{.Name}}</strong>
  <form class="inline" method="post" action="/departments/remove">
    <input type="hidden" name="department" value="{{.Name}}">
    <button class="danger" type="submit">Remove department</button>
  </form>
  <ul>
    {{range .Members}}
    <li>{{.Name}} &lt;{{.Email}}&gt; — {{.Role}}
      <a href="/employees/{{.ID}}/edit">edit</a>
      <form class="inline" method="post" action="/employees/remove">
        <input type="hidden" name="id" value="{{.ID}}">
        <button class="ghost" type="submit">remove</button>
      </form>
    </li>
    {{end}}
  </ul>
</div>
{{end}}
<div class="card">
  <strong>Add department</strong>
  <form method="post" action="/departments">
    <input name="name" placeholder="Department name" required>
    <button class="primary" type="submit">Add</button>
  </form>
</div>
<div class="card">
  <strong>Add employee</strong>
  <form method="post" action="/employees">
    <input name="name" placeholder="Full name" required>
    <input name="email" type="email" placeholder="Email" required>
    <input name="role" placeholder="Role / specialty" required>
    <input name="department" placeholder="Department" required>
    <button class="primary" type="submit">Add</button>
  </form>
</div>
{{template "foot" .}}{{end}}

{{define "edit-employee-page"}}{{template "head" .}}
{{if .Error}}<div class="error" role="alert"><strong>Error:</strong> {{.Error}}</div>{{end}}
<div class="card">
  <h2>Edit {{.Employee.Name}}</h2>
  <form method="post" action="/employees/{{.Employee.ID}}/edit">
    <input type="hidden" name="original_department" value="{{.OriginalDepartment}}">
    <p><label>Name <input name="name" value="{{.Employee.Name}}" required></label></p>
    <p><label>Email <input name="email" type="email" value="{{.Employee.Email}}" required></label></p>
    <p><label>Role <input name="role" value="{{.Employee.Role}}" required></label></p>
    <p><label>Department
      <select name="department">
        {{range .Departments}}
        <option value="{{.Name}}" {{if eq .Name $.OriginalDepartment}}selected{{end}}>{{.Name}}</option>
        {{end}}
      </select>
    </label></p>
    <div class="actions">
      <button class="primary" type="submit">Save</button>
      <a href="/directory"><button class="ghost" type="button">Cancel</button></a>
    </div>
  </form>
</div>
{{template "foot" .}}{{end}}

{{define "confirm-page"}}{{template "head" .}}
<div class="card">
  <h2>{{.Title}}</h2>
  <p>{{.Message}}</p>
  <form method="post" action="{{.Action}}">
    <input type="hidden" name="confirmed" value="true">
    <div class="actions">
      <button class="danger" type="submit">Confirm</button>
      <a href="/directory"><button class="ghost" type="button">Cancel</button></a>
    </div>
  </form>
</div>
{{template "foot" .}}{{end}}

{{define "activity-page"}}{{template "head" .}}
<h2>Activity</h2>
{{if .Entries}}
<div class="card">
  <ul class="feed">
    {{range .Entries}}
    <li><strong>{{.Comment.Author}}</strong> moved <a href="/ticket/{{.TicketID}}">{{.TicketTitle}}</a> from {{.Comment.FromStatus}} to {{.Comment.ToStatus}}: &ldquo;{{.Comment.Text}}&rdquo; <span class="meta">{{relativeTime .Comment.Timestamp}}</span></li>
    {{end}}
  </ul>
</div>
{{else}}
<div class="empty">No activity yet. Comments appear here when tickets change status.</div>
{{end}}
{{template "foot" .}}{{end}}

{{define "new-ticket-page"}}{{template "head" .}}
{{if .Error}}<div class="error" role="alert"><strong>Error:</strong> {{.Error}}</div>{{end}}
<div class="card">
  <h2>New ticket</h2>
  <form method="post" action="/new">
    <p><label>Title <input name="title" required></label></p>
    <p><label>Description</label><textarea name="description" rows="4"></textarea></p>
    <p><label>Assignee
      <select name="assignee">
        {{range .Employees}}
        <option value="{{.ID}}" {{if eq .ID $.AssigneeID}}selected{{end}}>{{.Name}} ({{.Role}})</option>
        {{end}}
      </select>
    </label></p>
    <p><label>Due date <input type="date" name="due" required></label></p>
    <p><label>Priority
      <select name="priority">
        <option>Low</option>
        <option selected>Medium</option>
        <option>High</option>
      </select>
    </label></p>
    <p><label>Story points <input type="number" name="points" min="1" value="3"></label></p>
    <div class="actions">
      <button class="primary" type="submit">Create</button>
      <a href="/"><button class="ghost" type="button">Cancel</button></a>
    </div>
  </form>
</div>
{{template "foot" .}}{{end}}
`
