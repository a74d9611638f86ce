// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"encoding/json"
	"html/template"
	"io"
)

// figurePage is the page WriteHTML emits. The figure JSON is inlined,
// so the page needs no server beyond the plotly.js CDN.
const figurePage = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
html, body, #figure {
  height: 100%;
  margin: 0;
}
    </style>
    <script src="https://cdn.plot.ly/plotly-2.27.0.min.js" charset="utf-8"></script>
  </head>
  <body>
    <div id="figure"></div>
    <script>
var figure = {{.Figure}};
Plotly.newPlot("figure", figure.data, figure.layout, {responsive: true});
    </script>
  </body>
</html>
`

var figureTemplate = template.Must(template.New("figure").Parse(figurePage))

// WriteHTML writes the figure to w as a self-contained HTML page that
// renders it with plotly.js.
func (f *Figure) WriteHTML(w io.Writer) error {
	fj, err := json.Marshal(f)
	if err != nil {
		return err
	}
	title := f.Layout.Title
	if title == "" {
		title = "Figure"
	}
	return figureTemplate.Execute(w, struct {
		Title  string
		Figure template.JS
	}{title, template.JS(fj)})
}
