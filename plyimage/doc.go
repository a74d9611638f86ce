// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plyimage renders ply figures to static images.
//
// ply figures are built for an interactive renderer, but reports and
// documentation often need a plain image of the same figure. SVG and
// PNG take a *ply.Figure and draw its traces and layout, reproducing
// the interactive rendering as closely as a static image can:
// separator rows become gaps, the default trace colors match, and
// fixed axis ranges and computed ticks carry over. Hover text, drag
// modes, and other interactive features have no static form and are
// ignored.
package plyimage
