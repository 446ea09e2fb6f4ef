package window

import "html/template"

// windowData holds the data passed to the window template.
type windowData struct {
	Title   string
	Width   int
	Height  int
	Entries []windowEntry
}

type windowEntry struct {
	ID     string
	Label  string
	Active bool
}

// placeholderHTML fills the content frame before the first activation.
const placeholderHTML = `<html>
<body style="font-family: Arial, sans-serif; color: #777; padding: 20px;">
<p>Select a page from the sidebar.</p>
</body>
</html>
`

const windowTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; background: #e8e4dc; font-family: Arial, sans-serif; }
    .window { width: {{.Width}}px; height: {{.Height}}px; margin: 24px auto; display: flex; flex-direction: column; background: #fff; box-shadow: 0 4px 24px rgba(0,0,0,0.2); border-radius: 6px; overflow: hidden; }
    .titlebar { padding: 8px 12px; background: #f2efe9; border-bottom: 1px solid #ddd; font-size: 14px; color: #333; text-align: center; }
    .main { flex: 1; display: flex; flex-direction: row; min-height: 0; }
    .sidebar { flex: 0.2; padding: 10px; display: flex; flex-direction: column; border-right: 1px solid #eee; overflow-y: auto; }
    .sidebar form { margin: 0; }
    .sidebar button { width: 100%; margin: 5px 0; padding: 6px 8px; border: 1px solid #ccc; border-radius: 4px; background: #fafafa; cursor: pointer; text-align: left; }
    .sidebar button.active { background: #2f5d8a; border-color: #2f5d8a; color: #fff; }
    .content { flex: 0.8; padding: 10px; display: flex; min-width: 0; }
    .content iframe { flex: 1; border: 0; }
  </style>
</head>
<body>
  <div class="window">
    <div class="titlebar">{{.Title}}</div>
    <div class="main">
      <nav class="sidebar">
        {{- range .Entries}}
        <form method="post" action="/entries/{{.ID}}">
          <button type="submit" data-id="{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Label}}</button>
        </form>
        {{- end}}
      </nav>
      <main class="content">
        <iframe id="content" src="/content" title="Document"></iframe>
      </main>
    </div>
  </div>
  <script>
  (function () {
    var frame = document.getElementById('content');
    var live = false;

    function mark(id) {
      document.querySelectorAll('.sidebar button').forEach(function (b) {
        b.classList.toggle('active', b.dataset.id === id);
      });
    }

    function reload(view) {
      frame.src = '/content' + (view ? '?view=' + encodeURIComponent(view) : '');
    }

    document.querySelectorAll('.sidebar form').forEach(function (form) {
      form.addEventListener('submit', function (e) {
        e.preventDefault();
        fetch(form.action, { method: 'POST', headers: { 'Accept': 'application/json' } })
          .then(function (r) { return r.json(); })
          .then(function (st) {
            if (!live) { mark(st.doc); reload(st.view); }
          });
      });
    });

    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/ws');
    ws.onopen = function () { live = true; };
    ws.onclose = function () { live = false; };
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'refresh') {
        mark(msg.doc);
        reload(msg.view);
      } else if (msg.type === 'hello' && msg.doc) {
        mark(msg.doc);
      }
    };
  })();
  </script>
</body>
</html>
`

var windowTmpl = template.Must(template.New("window").Parse(windowTemplate))
