package cli

const authResultTemplate = `
✓ {{.Title}}
Name:  {{.User.Name}}
Email: {{.User.Email}}
ID:    {{.User.ID}}

Your session has been saved.
`

const profileTemplate = `=== Profile ===

Name:       {{.Name}}
Email:      {{.Email}}
ID:         {{.ID}}
Registered: {{formatTime .CreatedAt}}
`

const recordTemplate = `=== Record {{.ID}} ===

Key:     {{.Key}}
Created: {{formatTime .CreatedAt}}
Updated: {{formatTime .UpdatedAt}}

Value:
---
{{.Value}}
---
`

const recordListTemplate = `=== Records ===

Found {{len .}} record(s):

{{range .}}[{{.ID}}] {{.Key}}
    Value:   {{truncate .Value 60}}
    Updated: {{formatTime .UpdatedAt}}
{{end}}`
