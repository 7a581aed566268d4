package hocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// ParseDocument converts raw hOCR data into a structured Document.
func ParseDocument(data []byte) (Document, error) {
	var result Document
	result.Metadata = make(map[string]string)

	// Figure out the character encoding
	content := string(data)
	encoding := "utf-8"
	if strings.Contains(content, "charset=") {
		metaStart := strings.Index(content, "charset=") + len("charset=")
		if metaStart > -1 && len(content) > metaStart {
			encSnippet := content[metaStart:min(len(content), metaStart+20)]
			fields := strings.FieldsFunc(encSnippet, func(r rune) bool {
				return r == '"' || r == ';' || r == '\'' || r == '>'
			})
			if len(fields) > 0 {
				if enc := strings.ToLower(fields[0]); enc != "" {
					encoding = enc
				}
			}
		}
	}

	// Convert to UTF-8 if needed
	var decoded []byte
	var err error
	if encoding != "utf-8" {
		decoder := charmap.ISO8859_1.NewDecoder()
		decoded, err = decoder.Bytes(data)
		if err != nil {
			return result, fmt.Errorf("failed to decode %s: %w", encoding, err)
		}
	} else {
		decoded = data
	}

	doc, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return result, err
	}

	// Extract document metadata from the head section
	extractDocumentMeta(&result, doc)

	// Find and process all ocr_page elements
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if strings.Contains(getAttrVal(n, "class"), "ocr_page") {
				result.Pages = append(result.Pages, processPage(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	// Documents without an explicit ocr_page wrapper still carry usable
	// paragraph markup, so fall back to treating the whole body as one page.
	if len(result.Pages) == 0 {
		page := Page{PageNumber: 1}
		page.Paragraphs = collectParagraphs(doc)
		if len(page.Paragraphs) == 0 {
			return result, fmt.Errorf("no ocr_page or ocr_par elements found in hOCR data")
		}
		result.Pages = append(result.Pages, page)
	}
	return result, nil
}

// ParseTitle breaks down an hOCR title attribute into its components
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	parts := strings.Split(title, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		items := strings.Fields(part)
		if len(items) > 0 {
			key := items[0]
			values := items[1:]
			result[key] = values
		}
	}

	return result
}

// ParseBoundingBoxFromTitle extracts a bounding box from a title string
// Returns a structured BoundingBox object or nil if extraction fails
func ParseBoundingBoxFromTitle(title string) *BoundingBox {
	props := ParseTitle(title)
	if bbox, ok := props["bbox"]; ok && len(bbox) >= 4 {
		coords := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(bbox[i], 64)
			if err != nil {
				return nil
			}
			coords[i] = v
		}
		result := NewBoundingBox(coords[0], coords[1], coords[2], coords[3])
		return &result
	}
	return nil
}

// extractDocumentMeta extracts document-level metadata from the head section
func extractDocumentMeta(result *Document, doc *html.Node) {
	var findHead func(*html.Node) *html.Node
	findHead = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "head" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := findHead(c); found != nil {
				return found
			}
		}
		return nil
	}

	// Check for lang attribute on the html tag
	var findHTMLLang func(*html.Node)
	findHTMLLang = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "html" {
			for _, a := range n.Attr {
				if a.Key == "lang" || a.Key == "xml:lang" {
					result.Language = a.Val
					return
				}
			}
		}
		// Only check direct children of the document node
		if n.Parent == nil {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				findHTMLLang(c)
			}
		}
	}
	findHTMLLang(doc)

	head := findHead(doc)
	if head == nil {
		return
	}

	// Extract title, language, description, etc.
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "title":
				if c.FirstChild != nil {
					result.Title = c.FirstChild.Data
				}
			case "meta":
				name := ""
				content := ""
				for _, attr := range c.Attr {
					if attr.Key == "name" {
						name = attr.Val
					} else if attr.Key == "content" {
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					if name == "ocr-system" || name == "ocr-capabilities" ||
						name == "ocr-number-of-pages" || name == "ocr-langs" {
						result.Metadata[name] = content
					} else if name == "description" {
						result.Description = content
					} else if name == "dc.language" {
						result.Language = content
					}
				}
			}
		}
	}
}

// processPage extracts page attributes and its paragraphs
func processPage(n *html.Node) Page {
	var page Page

	// Extract page attributes
	for _, attr := range n.Attr {
		if attr.Key == "id" {
			page.ID = attr.Val
		} else if attr.Key == "lang" {
			page.Lang = attr.Val
		} else if attr.Key == "title" {
			page.Title = attr.Val

			if bbox := ParseBoundingBoxFromTitle(attr.Val); bbox != nil {
				page.BBox = *bbox
			}

			// Extract other properties from title
			props := ParseTitle(attr.Val)
			if image, ok := props["image"]; ok && len(image) > 0 {
				page.ImageName = image[0]
			}
			if ppageno, ok := props["ppageno"]; ok && len(ppageno) > 0 {
				page.PageNumber, _ = strconv.Atoi(ppageno[0])
			}
		}
	}

	page.Paragraphs = collectParagraphs(n)
	return page
}

// collectParagraphs gathers all ocr_par elements beneath a node in document
// order, descending through any intermediate containers (ocr_carea and the
// like) without treating them as structural.
func collectParagraphs(n *html.Node) []Paragraph {
	var paragraphs []Paragraph

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if strings.Contains(getAttrVal(node, "class"), "ocr_par") {
				paragraphs = append(paragraphs, processParagraph(node))
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return paragraphs
}

// processParagraph extracts paragraph information and its children (lines, words)
func processParagraph(n *html.Node) Paragraph {
	var paragraph Paragraph

	// Extract paragraph attributes
	for _, attr := range n.Attr {
		if attr.Key == "id" {
			paragraph.ID = attr.Val
		} else if attr.Key == "lang" {
			paragraph.Lang = attr.Val
		} else if attr.Key == "title" {
			if bbox := ParseBoundingBoxFromTitle(attr.Val); bbox != nil {
				paragraph.BBox = *bbox
			}
		}
	}

	// Find lines and words in this paragraph
	var lineNodes []*html.Node
	var wordNodes []*html.Node

	var collectNodes func(*html.Node)
	collectNodes = func(node *html.Node) {
		if node.Type == html.ElementNode {
			class := getAttrVal(node, "class")
			if strings.Contains(class, "ocr_line") {
				lineNodes = append(lineNodes, node)
				return
			} else if strings.Contains(class, "ocrx_word") {
				wordNodes = append(wordNodes, node)
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collectNodes(c)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectNodes(c)
	}

	// Process lines
	for _, lineNode := range lineNodes {
		paragraph.Lines = append(paragraph.Lines, processLine(lineNode))
	}

	// Process any words directly under the paragraph (no line parent)
	for _, wordNode := range wordNodes {
		if word, ok := processWord(wordNode); ok {
			paragraph.Words = append(paragraph.Words, word)
		}
	}

	return paragraph
}

// processLine extracts line information and its words
func processLine(n *html.Node) Line {
	var line Line

	// Extract line attributes
	for _, attr := range n.Attr {
		if attr.Key == "id" {
			line.ID = attr.Val
		} else if attr.Key == "title" {
			if bbox := ParseBoundingBoxFromTitle(attr.Val); bbox != nil {
				line.BBox = *bbox
			}
		}
	}

	// Process all word elements in this line
	var extractWords func(*html.Node)
	extractWords = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if strings.Contains(getAttrVal(node, "class"), "ocrx_word") {
				if word, ok := processWord(node); ok {
					line.Words = append(line.Words, word)
				}
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			extractWords(c)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractWords(c)
	}

	return line
}

// processWord extracts a word element's text and properties. A word is
// accepted only when its cleaned text is non-empty and its bounding box is
// well-formed; anything else is dropped so one noisy OCR element cannot
// poison the corpus.
func processWord(n *html.Node) (Word, bool) {
	var word Word

	// Extract word attributes
	for _, attr := range n.Attr {
		if attr.Key == "id" {
			word.ID = attr.Val
		} else if attr.Key == "title" {
			if bbox := ParseBoundingBoxFromTitle(attr.Val); bbox != nil {
				word.BBox = *bbox
			}

			props := ParseTitle(attr.Val)
			if conf, ok := props["x_wconf"]; ok && len(conf) > 0 {
				word.Confidence, _ = strconv.ParseFloat(conf[0], 64)
			}
		}
	}

	// Get the actual text content, stripping any nested inline markup
	if n.FirstChild != nil {
		word.Text = extractTextContent(n)
	}
	word.Normalized = normalizeWord(word.Text)

	if word.Text == "" || !word.BBox.Valid() {
		return Word{}, false
	}
	return word, true
}

// extractTextContent gets all text from a node and its children
func extractTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var text string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text += extractTextContent(c)
	}
	return strings.TrimSpace(text)
}

// Get the value of a specific attribute from a node
func getAttrVal(n *html.Node, attrName string) string {
	for _, attr := range n.Attr {
		if attr.Key == attrName {
			return attr.Val
		}
	}
	return ""
}
