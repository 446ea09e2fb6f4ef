package site

import "html/template"

type indexData struct {
	Title   string
	Width   int
	Height  int
	Entries []indexEntry
}

type indexEntry struct {
	Label string
	Href  string
}

// indexTemplate is the exported window. Sidebar links load pages into the
// content frame; it needs no server.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; background: #e8e4dc; font-family: Arial, sans-serif; }
    .window { width: {{.Width}}px; height: {{.Height}}px; margin: 24px auto; display: flex; flex-direction: column; background: #fff; box-shadow: 0 4px 24px rgba(0,0,0,0.2); border-radius: 6px; overflow: hidden; }
    .titlebar { padding: 8px 12px; background: #f2efe9; border-bottom: 1px solid #ddd; font-size: 14px; color: #333; text-align: center; }
    .main { flex: 1; display: flex; min-height: 0; }
    .sidebar { flex: 0.2; padding: 10px; display: flex; flex-direction: column; border-right: 1px solid #eee; }
    .sidebar a { display: block; margin: 5px 0; padding: 6px 8px; border: 1px solid #ccc; border-radius: 4px; background: #fafafa; color: #333; text-decoration: none; }
    .content { flex: 0.8; padding: 10px; display: flex; }
    .content iframe { flex: 1; border: 0; }
  </style>
</head>
<body>
  <div class="window">
    <div class="titlebar">{{.Title}}</div>
    <div class="main">
      <nav class="sidebar">
        {{- range .Entries}}
        <a href="{{.Href}}" target="content">{{.Label}}</a>
        {{- end}}
      </nav>
      <main class="content">
        <iframe name="content" title="Document"></iframe>
      </main>
    </div>
  </div>
</body>
</html>
`

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))
