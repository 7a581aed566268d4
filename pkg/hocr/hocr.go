// Package hocr implements parsing of hOCR data, an HTML-based standard
// format for representing OCR results, into a position-indexed word corpus.
//
// This package provides:
//
// - An object model for the hOCR hierarchy: Document → Pages → Paragraphs → Lines → Words
// - A tolerant structural parser built on an HTML tree walker (no regex scanning)
// - Utilities for working with bounding boxes and positional data
// - A flattened "marked text" rendering of a page that interleaves structural
//   break markers with word text, used by string-oriented matching paths
//
// Words are the unit every downstream alignment index relies on: they are
// emitted strictly in markup encounter order (paragraphs, then lines within
// each paragraph, then words within each line), and words with malformed or
// degenerate bounding boxes are silently skipped rather than failing the
// whole document.
//
// Key Types:
//
// - Document: Top-level structure representing an entire hOCR document
// - Page: Represents a single page with class 'ocr_page'
// - Paragraph: Represents a paragraph with class 'ocr_par'
// - Line: Represents a line of text with class 'ocr_line'
// - Word: Represents a single word with class 'ocrx_word'
// - BoundingBox: Represents a rectangle with coordinates for positioning elements
//
// Main Functions:
//
// - ParseDocument: Parses hOCR data from HTML into the object model
// - Page.Words: Flattens a page into its ordered word corpus
// - Page.MarkedText: Renders a page as marker-annotated text
package hocr
