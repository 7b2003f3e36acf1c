package web

import (
	"html/template"

	"inventory_viewer/internal/view"
)

const tmplIndex = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Inventory Viewer</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:sans-serif;background:#f6f8fa;color:#24292f;font-size:14px;line-height:1.5}
nav{background:#24292f;color:#fff;padding:8px 16px;display:flex;gap:12px;align-items:center;flex-wrap:wrap}
nav .brand{font-weight:700;margin-right:8px}
nav a{color:#c9d1d9;text-decoration:none;padding:2px 8px;border-radius:4px}
nav a:hover{background:#444c56}
nav a.active{background:#1f6feb;color:#fff}
main{padding:16px;max-width:1100px;margin:0 auto}
.filters{display:flex;gap:8px;flex-wrap:wrap;align-items:center;margin-bottom:12px;background:#fff;padding:8px 12px;border-radius:6px;border:1px solid #d0d7de}
.filters label{font-size:12px;color:#57606a}
.filters select,.filters input{border:1px solid #d0d7de;border-radius:4px;padding:4px 6px;font-size:13px}
.filters button{background:#1f6feb;border:none;color:#fff;padding:5px 12px;border-radius:4px;cursor:pointer}
table{width:100%;border-collapse:collapse;background:#fff;border:1px solid #d0d7de}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #d0d7de;background:#f6f8fa;font-size:12px}
td{padding:5px 10px;border-bottom:1px solid #eaeef2}
.error{background:#ffebe9;border:1px solid #ff818266;color:#cf222e;padding:10px 12px;border-radius:6px;margin-bottom:12px}
.toolbar{display:flex;gap:12px;align-items:center;margin:12px 0}
.submit{margin-top:16px;background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:10px 12px}
.submit input[type=text]{width:60%;border:1px solid #d0d7de;border-radius:4px;padding:4px 6px}
.dim{color:#57606a;font-size:12px}
</style>
</head>
<body>
<nav>
<span class="brand">Inventory</span>
{{range .Areas}}<a href="/?area={{.}}&type={{$.Kind}}" {{if eq . $.Area}}class="active"{{end}}>{{.}}</a>{{end}}
<span class="dim">|</span>
{{range .Kinds}}<a href="/?area={{$.Area}}&type={{.}}" {{if eq . $.Kind}}class="active"{{end}}>{{.}}</a>{{end}}
</nav>
<main>
{{if .LoadError}}
<div class="error">Failed to load data: {{.LoadError}}</div>
{{else if not .HasGrid}}
<div class="error">No data available.</div>
{{else}}
<form class="filters" method="get" action="/">
<input type="hidden" name="area" value="{{.Area}}">
<input type="hidden" name="type" value="{{.Kind}}">
{{if .Model.Facets.Types}}
<label>Type</label>
<select name="ftype">{{range .Model.Facets.Types}}<option value="{{.}}" {{if eq . $.Model.State.Type}}selected{{end}}>{{.}}</option>{{end}}</select>
{{end}}
{{if .Model.Facets.Areas}}
<label>Area</label>
<select name="farea">{{range .Model.Facets.Areas}}<option value="{{.}}" {{if eq . $.Model.State.Area}}selected{{end}}>{{.}}</option>{{end}}</select>
{{end}}
{{if .Model.Facets.Cabinets}}
<label>Cabinet</label>
<select name="fcabinet">{{range .Model.Facets.Cabinets}}<option value="{{.}}" {{if eq . $.Model.State.Cabinet}}selected{{end}}>{{.}}</option>{{end}}</select>
{{end}}
<label>Search</label>
<input type="text" name="q" value="{{.Model.State.Search}}">
<button type="submit">Apply</button>
</form>
<div class="toolbar">
<a href="/export">Download xlsx</a>
<span class="dim">{{len .Model.BodyRows}} rows</span>
</div>
<table>
{{range .Model.HeaderRows}}{{$row := .}}<tr>
{{range $.RenderCols}}<th>{{cell $row .}}</th>{{end}}
</tr>{{end}}
{{range .Model.BodyRows}}{{$row := .}}<tr>
{{range $.RenderCols}}<td>{{cell $row .}}</td>{{end}}
</tr>{{end}}
</table>
{{end}}
{{if .CanSubmit}}
<form class="submit" method="post" action="/submit">
<input type="hidden" name="area" value="{{.Area}}">
<input type="hidden" name="type" value="{{.Kind}}">
<label>New entry (comma-separated cells)</label>
<input type="text" name="values" placeholder="Valve, V-103, 2">
<button type="submit">Add</button>
</form>
{{end}}
</main>
</body>
</html>`

var indexTmpl = template.Must(template.New("index").
	Funcs(template.FuncMap{"cell": view.Cell}).
	Parse(tmplIndex))
