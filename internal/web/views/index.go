package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/planmetric/roomplan-engine/internal/protocol"
)

// Label sizing relative to the plan extent, mirroring the fixed text
// height and line gap used by drawing annotations.
const (
	labelScale = 0.08
	lineGap    = 0.9
)

// IndexPage renders the plan viewer: the document shell around the
// header and the SVG plan.
func IndexPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			"<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>%s</title>"+
				"<link rel=\"stylesheet\" href=\"/static/app.css\"></head><body>",
			templ.EscapeString(s.PlanName)); err != nil {
			return err
		}
		if err := pageHeader(s).Render(ctx, w); err != nil {
			return err
		}
		if err := planSVG(s).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			"<script src=\"/static/app.js\"></script></body></html>")
		return err
	})
}

// pageHeader renders the plan name and the build summary line.
func pageHeader(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<h1>%s</h1><p class=\"meta\">build %s &middot; %d walls &middot; %d rooms</p>",
			templ.EscapeString(s.PlanName), templ.EscapeString(s.BuildID),
			s.SegmentCount, len(s.Rooms))
		return err
	})
}

// planSVG renders wall segments, room polygons, and per-room labels.
func planSVG(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		minX, minY, maxX, maxY := planBounds(s)
		width := maxX - minX
		height := maxY - minY
		if width <= 0 {
			width = 1
		}
		if height <= 0 {
			height = 1
		}
		margin := 0.1 * max(width, height)
		textHeight := labelScale * max(width, height)

		// Flip the Y axis: plan coordinates grow upward, SVG grows downward.
		if _, err := fmt.Fprintf(w,
			"<svg id=\"plan\" viewBox=\"%g %g %g %g\"><g transform=\"scale(1,-1)\">",
			minX-margin, -(maxY + margin), width+2*margin, height+2*margin); err != nil {
			return err
		}

		for _, room := range s.Rooms {
			if err := roomPolygon(room).Render(ctx, w); err != nil {
				return err
			}
		}
		for _, wall := range s.Walls {
			if _, err := fmt.Fprintf(w,
				"<line class=\"wall\" x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"/>",
				wall.X1, wall.Y1, wall.X2, wall.Y2); err != nil {
				return err
			}
		}
		for _, room := range s.Rooms {
			if err := roomLabel(room, textHeight).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</g></svg>")
		return err
	})
}

func roomPolygon(room protocol.RoomLite) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<polygon class=\"room\" points=\""); err != nil {
			return err
		}
		for _, p := range room.Polygon {
			if _, err := fmt.Fprintf(w, "%g,%g ", p.X, p.Y); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "\"/>")
		return err
	})
}

// roomLabel writes the room number at the centroid and the area as a
// second line below it.
func roomLabel(room protocol.RoomLite, textHeight float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			"<text class=\"room-id\" x=\"%g\" y=\"%g\" font-size=\"%g\" text-anchor=\"middle\" transform=\"scale(1,-1)\">%d</text>",
			room.Center.X, -room.Center.Y, textHeight, room.Number); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			"<text class=\"room-area\" x=\"%g\" y=\"%g\" font-size=\"%g\" text-anchor=\"middle\" transform=\"scale(1,-1)\">%.2f m²</text>",
			room.Center.X, -(room.Center.Y-lineGap*textHeight), textHeight*0.5, room.Area)
		return err
	})
}

func planBounds(s protocol.Snapshot) (minX, minY, maxX, maxY float64) {
	first := true
	expand := func(x, y float64) {
		if first {
			minX, minY, maxX, maxY = x, y, x, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, wall := range s.Walls {
		expand(wall.X1, wall.Y1)
		expand(wall.X2, wall.Y2)
	}
	if first {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}
