package pdfanchor

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// drawAnnotation renders the annotation onto a toggleable layer of the
// current PDF page. rect is in PDF space (bottom-left origin), while fpdf
// draws top-down, so the vertical coordinate is converted back here.
func drawAnnotation(pdf *fpdf.Fpdf, rect Rect, pageHeight float64, config AnnotationConfig, pageNum int) {
	formattedLayerName := config.LayerName
	if pageNum > 0 {
		formattedLayerName = fmt.Sprintf("%s (Page %d)", config.LayerName, pageNum)
	}

	layer := pdf.AddLayer(formattedLayerName, true)
	pdf.BeginLayer(layer)

	style := config.Style
	top := pageHeight - rect.Y - rect.Height

	br, bg, bb := style.BorderColor.Bytes()
	fr, fg, fb := style.FillColor.Bytes()
	pdf.SetDrawColor(br, bg, bb)
	pdf.SetFillColor(fr, fg, fb)
	pdf.SetLineWidth(style.BorderWidth)

	switch config.Type {
	case Highlight:
		pdf.SetAlpha(style.Opacity, "Normal")
		pdf.Rect(rect.X, top, rect.Width, rect.Height, "F")
	case Underline:
		pdf.SetAlpha(style.Opacity, "Normal")
		pdf.Line(rect.X, top+rect.Height, rect.X+rect.Width, top+rect.Height)
	case Strikethrough:
		pdf.SetAlpha(style.Opacity, "Normal")
		pdf.Line(rect.X, top+rect.Height/2, rect.X+rect.Width, top+rect.Height/2)
	default:
		// Translucent fill, then a solid border on top
		pdf.SetAlpha(style.Opacity, "Normal")
		pdf.Rect(rect.X, top, rect.Width, rect.Height, "F")
		if style.BorderWidth > 0 {
			pdf.SetAlpha(1.0, "Normal")
			pdf.Rect(rect.X, top, rect.Width, rect.Height, "D")
		}
	}

	if config.Debug {
		pdf.SetAlpha(1.0, "Normal")
		pdf.SetDrawColor(255, 0, 0)
		pdf.SetLineWidth(0.5)
		pdf.Rect(rect.X, top, rect.Width, rect.Height, "D")
	}

	pdf.SetAlpha(1.0, "Normal")
	pdf.EndLayer()
}
