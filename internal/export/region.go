package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// activeContent lists elements that can run code or pull in other documents when printed.
const activeContent = "script, noscript, iframe, frame, frameset, object, embed, applet, base, form, " +
	"meta[http-equiv], link:not([rel=stylesheet])"

// ExtractRegion returns a standalone page holding only the element with id regionID.
// The document head is kept so the region prints with its styles. Scripts, embedded
// documents, event handler attributes and javascript: URLs are removed from the page.
func ExtractRegion(html []byte, regionID string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	region := doc.Find(fmt.Sprintf("[id=%q]", regionID)).First()
	if region.Length() == 0 {
		return nil, fmt.Errorf("%w: #%s", ErrRegionNotFound, regionID)
	}
	outer, err := goquery.OuterHtml(region)
	if err != nil {
		return nil, fmt.Errorf("serialize region: %w", err)
	}
	doc.Find("body").SetHtml(outer)
	sanitize(doc)

	page, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("serialize page: %w", err)
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(page)), "<!doctype") {
		page = "<!DOCTYPE html>\n" + page
	}
	return []byte(page), nil
}

func sanitize(doc *goquery.Document) {
	doc.Find(activeContent).Remove()
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		var drop []string
		for _, attr := range node.Attr {
			key := strings.ToLower(attr.Key)
			switch {
			case strings.HasPrefix(key, "on"):
				drop = append(drop, attr.Key)
			case key == "href" || key == "src" || key == "action" || key == "formaction":
				if strings.HasPrefix(strings.ToLower(strings.TrimSpace(attr.Val)), "javascript:") {
					drop = append(drop, attr.Key)
				}
			}
		}
		for _, key := range drop {
			s.RemoveAttr(key)
		}
	})
}
