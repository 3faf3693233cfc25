// Package render rasterizes DOT documents with the embedded Graphviz
// engine. It accepts the text form produced by [dot.RootGraph] and returns
// SVG or PNG bytes; the "dot" format passes the text through untouched so
// every pipeline output goes through one code path.
//
// [dot.RootGraph]: github.com/matzehuels/dotkit/pkg/dot.RootGraph
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Format is an output format accepted by [Render].
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat maps a user-supplied format name to a [Format].
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDOT, FormatSVG, FormatPNG:
		return Format(s), nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported output format %q (want dot, svg, or png)", s)
	}
}

// Render converts DOT source to the requested format. For [FormatDOT] the
// source is returned as-is; SVG and PNG go through Graphviz layout.
func Render(ctx context.Context, src string, format Format) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(src), nil
	case FormatSVG:
		return SVG(ctx, src)
	case FormatPNG:
		return PNG(ctx, src)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported output format %q", format)
	}
}

// SVG lays out the DOT source and returns SVG bytes with a normalized
// viewBox so the image scales cleanly when embedded.
func SVG(ctx context.Context, src string) ([]byte, error) {
	out, err := run(ctx, src, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// PNG lays out the DOT source and returns PNG bytes.
func PNG(ctx context.Context, src string) ([]byte, error) {
	return run(ctx, src, graphviz.PNG)
}

func run(ctx context.Context, src string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg element so the viewBox starts at
// the origin and the width/height match it in pixels.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
